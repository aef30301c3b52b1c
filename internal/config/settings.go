package config

import (
	"io"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
)

type SettingsType struct {
	m    map[string]SettingType
	keys []string
}

type SettingType struct {
	Description string
	Value       string
	Secret      bool
}

func NewSettingType(print bool) *SettingsType {
	s := &SettingsType{m: make(map[string]SettingType)}

	s.Set(LISTEN_ADDR, "Server listen address", ":8080")
	s.Set(TLS_ENABLED, "Serve HTTPS with a self-signed certificate", "false")
	s.Set(TLS_CERT, "TLS certificate path", "certs/server.crt")
	s.Set(TLS_KEY, "TLS private key path", "certs/server.key")
	s.Set(DEFAULT_LOCALE, "Locale used when Accept-Language does not match", "vi")
	s.Set(ADMIN_USERNAME, "Username granted the admin role", "admin")
	s.SetSecret(ADMIN_PASSWORD, "Password for the admin username", "admin")
	s.Set(USER_USERNAME, "Username granted the user role", "user")
	s.SetSecret(USER_PASSWORD, "Password for the user username", "user")

	if print {
		s.Print(os.Stdout)
	}
	return s
}

// Print writes the settings as a table. Secret values are masked.
func (s *SettingsType) Print(w io.Writer) {
	table := tablewriter.NewWriter(w)

	table.Header("KEY", "Description", "value")
	for _, key := range s.keys {
		setting := s.m[key]
		value := setting.Value
		if setting.Secret && value != "" {
			value = strings.Repeat("*", 8)
		}
		table.Append([]string{key, setting.Description, value})
	}
	table.Render()
}

func (s *SettingsType) Get(id string) string {
	return s.m[id].Value
}

func (s *SettingsType) Has(id string) bool {
	return len(s.m[id].Value) > 0
}

func (s *SettingsType) IsTrue(id string) bool {
	v := strings.ToLower(strings.TrimSpace(s.m[id].Value))
	return v == "1" || v == "true" || v == "yes"
}

// Set registers a setting. Unset and empty environment values both fall
// back to defaultValue.
func (s *SettingsType) Set(id string, description string, defaultValue string) {
	s.set(id, description, defaultValue, false)
}

func (s *SettingsType) SetSecret(id string, description string, defaultValue string) {
	s.set(id, description, defaultValue, true)
}

func (s *SettingsType) set(id, description, defaultValue string, secret bool) {
	if _, ok := s.m[id]; !ok {
		s.keys = append(s.keys, id)
	}
	value := defaultValue
	if v, ok := os.LookupEnv(id); ok && v != "" {
		value = v
	}
	s.m[id] = SettingType{Description: description, Value: value, Secret: secret}
}

const (
	LISTEN_ADDR    = "LISTEN_ADDR"
	TLS_ENABLED    = "TLS_ENABLED"
	TLS_CERT       = "TLS_CERT"
	TLS_KEY        = "TLS_KEY"
	DEFAULT_LOCALE = "DEFAULT_LOCALE"
	ADMIN_USERNAME = "ADMIN_USERNAME"
	ADMIN_PASSWORD = "ADMIN_PASSWORD"
	USER_USERNAME  = "USER_USERNAME"
	USER_PASSWORD  = "USER_PASSWORD"
	PRINT_SETTINGS = "PRINT_SETTINGS"
)
