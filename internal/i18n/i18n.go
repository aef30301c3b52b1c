// Package i18n holds the user-facing strings of the login view.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	Mismatch     = "login.mismatch"
	Title        = "login.title"
	Tagline      = "login.tagline"
	UsernameText = "login.username"
	PasswordText = "login.password"
	UsernameHint = "login.username.hint"
	PasswordHint = "login.password.hint"
	Submit       = "login.submit"
	Footer       = "login.footer"
	LightMode    = "theme.light"
	DarkMode     = "theme.dark"
	SignedInAs   = "studio.signedin"
	SignOut      = "studio.signout"
)

var supported = []language.Tag{language.Vietnamese, language.English}

var matcher = language.NewMatcher(supported)

var entries = map[string]map[language.Tag]string{
	Mismatch: {
		language.Vietnamese: "Tên đăng nhập hoặc mật khẩu không đúng",
		language.English:    "Invalid username or password.",
	},
	Title: {
		language.Vietnamese: "PoseArchitect.AI",
		language.English:    "PoseArchitect.AI",
	},
	Tagline: {
		language.Vietnamese: "Professional AI Concept Studio",
		language.English:    "Professional AI Concept Studio",
	},
	UsernameText: {
		language.Vietnamese: "Tên đăng nhập",
		language.English:    "Username",
	},
	PasswordText: {
		language.Vietnamese: "Mật khẩu",
		language.English:    "Password",
	},
	UsernameHint: {
		language.Vietnamese: "Nhập tên đăng nhập",
		language.English:    "Enter username",
	},
	PasswordHint: {
		language.Vietnamese: "Nhập mật khẩu",
		language.English:    "Enter password",
	},
	Submit: {
		language.Vietnamese: "Vào Studio",
		language.English:    "Access Studio",
	},
	Footer: {
		language.Vietnamese: "Chỉ dành cho nhân sự được cấp quyền.",
		language.English:    "Authorized personnel only.",
	},
	LightMode: {
		language.Vietnamese: "Chế độ sáng",
		language.English:    "Light Mode",
	},
	DarkMode: {
		language.Vietnamese: "Chế độ tối",
		language.English:    "Dark Mode",
	},
	SignedInAs: {
		language.Vietnamese: "Đã đăng nhập với vai trò %s",
		language.English:    "Signed in as %s",
	},
	SignOut: {
		language.Vietnamese: "Đăng xuất",
		language.English:    "Sign out",
	},
}

var cat = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.Vietnamese))
	for key, byTag := range entries {
		for tag, msg := range byTag {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Negotiate picks a supported language from an Accept-Language header,
// falling back to def when nothing matches.
func Negotiate(acceptLanguage string, def language.Tag) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return def
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return def
	}
	return supported[idx]
}

// ParseLocale parses a configured locale, returning Vietnamese for anything
// unsupported.
func ParseLocale(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Vietnamese
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Vietnamese
	}
	return supported[idx]
}

func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(cat))
}

// MismatchMessage is the single authentication error string for tag.
func MismatchMessage(tag language.Tag) string {
	return Printer(tag).Sprintf(Mismatch)
}
