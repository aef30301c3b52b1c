package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewSettingTypeDefaults(t *testing.T) {
	for _, key := range []string{ADMIN_USERNAME, ADMIN_PASSWORD, USER_USERNAME, USER_PASSWORD} {
		t.Setenv(key, "")
	}
	s := NewSettingType(false)

	cases := map[string]string{
		ADMIN_USERNAME: "admin",
		ADMIN_PASSWORD: "admin",
		USER_USERNAME:  "user",
		USER_PASSWORD:  "user",
		LISTEN_ADDR:    ":8080",
		DEFAULT_LOCALE: "vi",
	}
	for key, want := range cases {
		if got := s.Get(key); got != want {
			t.Fatalf("expected %s=%q, got %q", key, want, got)
		}
	}
	if s.IsTrue(TLS_ENABLED) {
		t.Fatalf("expected TLS to be disabled by default")
	}
}

func TestNewSettingTypeFromEnv(t *testing.T) {
	t.Setenv(ADMIN_USERNAME, "Boss")
	t.Setenv(ADMIN_PASSWORD, "s3cret")
	t.Setenv(TLS_ENABLED, "YES")

	s := NewSettingType(false)
	if got := s.Get(ADMIN_USERNAME); got != "Boss" {
		t.Fatalf("expected env username, got %q", got)
	}
	if got := s.Get(ADMIN_PASSWORD); got != "s3cret" {
		t.Fatalf("expected env password, got %q", got)
	}
	if !s.IsTrue(TLS_ENABLED) {
		t.Fatalf("expected TLS_ENABLED to be true")
	}
	if !s.Has(USER_USERNAME) {
		t.Fatalf("expected default user username to be present")
	}
}

func TestPrintMasksSecrets(t *testing.T) {
	t.Setenv(ADMIN_PASSWORD, "topsecret")
	s := NewSettingType(false)

	var buf bytes.Buffer
	s.Print(&buf)
	out := buf.String()
	if strings.Contains(out, "topsecret") {
		t.Fatalf("expected admin password to be masked:\n%s", out)
	}
	if !strings.Contains(out, ADMIN_USERNAME) {
		t.Fatalf("expected table to list %s:\n%s", ADMIN_USERNAME, out)
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing .env to be skipped: %v", err)
	}
}

func TestLoadEnvDoesNotOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "USER_USERNAME=fromfile\nUSER_PASSWORD=filepass\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(USER_USERNAME, "fromenv")
	t.Setenv(USER_PASSWORD, "")
	os.Unsetenv(USER_PASSWORD)

	if err := LoadEnv(path); err != nil {
		t.Fatalf("load env: %v", err)
	}
	if got := os.Getenv(USER_USERNAME); got != "fromenv" {
		t.Fatalf("expected existing variable to win, got %q", got)
	}
	if got := os.Getenv(USER_PASSWORD); got != "filepass" {
		t.Fatalf("expected variable from file, got %q", got)
	}
}
