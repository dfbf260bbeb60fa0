// cliparse/cliparse_test.go
package cliparse

import (
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("SHARE_BASE_URL", "https://lists.example")
	t.Setenv("SHARE_COMPRESSION", "false")
	t.Setenv("DEFAULT_LOCALE", "ru")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "postgres" || cfg.DatabaseURL != "postgres://test" {
		t.Errorf("unexpected database config: %s %s", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if cfg.ShareBaseURL != "https://lists.example" {
		t.Errorf("expected base URL from env, got %s", cfg.ShareBaseURL)
	}
	if cfg.Compression {
		t.Error("expected compression disabled by env")
	}
	if cfg.DefaultLocale != "ru" {
		t.Errorf("expected locale ru, got %s", cfg.DefaultLocale)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SHARE_COMPRESSION", "false")

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "--compression=true"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if !cfg.Compression {
		t.Error("CLI should override env: expected compression enabled")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATABASE_TYPE", "DATABASE_URL", "SHARE_BASE_URL", "SHARE_COMPRESSION", "DEFAULT_LOCALE"} {
		t.Setenv(key, "")
	}

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != "sqlite" || cfg.DatabaseURL != "basketry.db" {
		t.Errorf("unexpected default database: %s %s", cfg.DatabaseType, cfg.DatabaseURL)
	}
	if !cfg.Compression {
		t.Error("expected compression enabled by default")
	}
	if cfg.DefaultLocale != "en" {
		t.Errorf("expected default locale en, got %s", cfg.DefaultLocale)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"postgres without URL", map[string]string{"DATABASE_URL": ""}, []string{"-t", "postgres"}},
		{"unknown database type", nil, []string{"-t", "mysql"}},
		{"bad PORT env", map[string]string{"PORT": "abc"}, nil},
		{"bad SHARE_COMPRESSION env", map[string]string{"SHARE_COMPRESSION": "maybe"}, nil},
		{"unknown flag", nil, []string{"--nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}
