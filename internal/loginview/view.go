// Package loginview implements the login screen: its form state machine,
// the submit step that resolves a role, and the HTML rendering.
package loginview

import (
	"embed"
	"html/template"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"posestudio/internal/auth"
	"posestudio/internal/i18n"
	"posestudio/internal/types"
)

//go:embed templates/login.html
var templateFS embed.FS

var loginTemplate = template.Must(template.New("login.html").Funcs(template.FuncMap{
	"t": func(p *message.Printer, key string) string { return p.Sprintf(key) },
}).ParseFS(templateFS, "templates/login.html"))

// Props is what the caller hands to the view.
type Props struct {
	// OnLogin receives the resolved role after a successful submit.
	OnLogin func(types.Role)
	// DarkMode and ToggleTheme belong to the caller; the view only reflects
	// and forwards them.
	DarkMode    bool
	ToggleTheme func()

	LoginPath string
	ThemePath string
}

type View struct {
	State State

	props   Props
	table   auth.Table
	lang    language.Tag
	printer *message.Printer
}

func New(table auth.Table, lang language.Tag, props Props) *View {
	if props.LoginPath == "" {
		props.LoginPath = "/login"
	}
	if props.ThemePath == "" {
		props.ThemePath = "/theme"
	}
	return &View{
		props:   props,
		table:   table,
		lang:    lang,
		printer: i18n.Printer(lang),
	}
}

func (v *View) SetUsername(value string) {
	v.State = v.State.Input(FieldUsername, value)
}

func (v *View) SetPassword(value string) {
	v.State = v.State.Input(FieldPassword, value)
}

// Submit checks the current input. On a match the caller's OnLogin is
// invoked with the role and the view becomes terminal; otherwise the
// localized mismatch message is set. A view that already succeeded ignores
// further submits.
func (v *View) Submit() (types.Role, bool) {
	if v.State.Phase == SubmittedSuccess {
		return "", false
	}
	role, err := v.table.Match(v.State.Username, v.State.Password)
	if err != nil {
		v.State = v.State.failed(i18n.MismatchMessage(v.lang))
		return "", false
	}
	v.State = v.State.succeeded()
	if v.props.OnLogin != nil {
		v.props.OnLogin(role)
	}
	return role, true
}

func (v *View) DarkMode() bool {
	return v.props.DarkMode
}

func (v *View) ToggleTheme() {
	if v.props.ToggleTheme != nil {
		v.props.ToggleTheme()
	}
}

type renderData struct {
	P         *message.Printer
	Lang      string
	State     State
	DarkMode  bool
	LoginPath string
	ThemePath string
}

// Render writes the login page. The password is never written back into
// the page.
func (v *View) Render(w io.Writer) error {
	return loginTemplate.Execute(w, renderData{
		P:         v.printer,
		Lang:      v.lang.String(),
		State:     v.State,
		DarkMode:  v.props.DarkMode,
		LoginPath: v.props.LoginPath,
		ThemePath: v.props.ThemePath,
	})
}
