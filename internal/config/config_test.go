package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fullYAML = `
server:
  port: 9090

database:
  driver: mysql
  host: 10.0.0.5
  port: 3307
  user: trestle
  password: hunter2
  name: trestle_prod

auth:
  secret: supersecretkey
  token_ttl_minutes: 45

admin:
  email: admin@example.com
  password: changeme
  full_name: Site Admin
`

const minimalYAML = `
auth:
  secret: supersecretkey
`

func TestParse_FullConfig(t *testing.T) {
	cfg, err := Parse([]byte(fullYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Database.Driver != "mysql" {
		t.Errorf("Database.Driver = %q, want mysql", cfg.Database.Driver)
	}
	if cfg.Database.Host != "10.0.0.5" {
		t.Errorf("Database.Host = %q, want 10.0.0.5", cfg.Database.Host)
	}
	if cfg.Database.Port != 3307 {
		t.Errorf("Database.Port = %d, want 3307", cfg.Database.Port)
	}
	if cfg.Database.Name != "trestle_prod" {
		t.Errorf("Database.Name = %q, want trestle_prod", cfg.Database.Name)
	}
	if cfg.Auth.Secret != "supersecretkey" {
		t.Errorf("Auth.Secret = %q, want supersecretkey", cfg.Auth.Secret)
	}
	if cfg.Auth.TokenTTLMinutes != 45 {
		t.Errorf("Auth.TokenTTLMinutes = %d, want 45", cfg.Auth.TokenTTLMinutes)
	}
	if cfg.Admin == nil {
		t.Fatal("Admin = nil, want seeded admin config")
	}
	if cfg.Admin.Email != "admin@example.com" {
		t.Errorf("Admin.Email = %q, want admin@example.com", cfg.Admin.Email)
	}
}

func TestParse_MinimalDefaults(t *testing.T) {
	cfg, err := Parse([]byte(minimalYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want default 8080", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want default sqlite", cfg.Database.Driver)
	}
	if cfg.Database.Path != "trestle.db" {
		t.Errorf("Database.Path = %q, want default trestle.db", cfg.Database.Path)
	}
	if cfg.Auth.TokenTTLMinutes != 30 {
		t.Errorf("Auth.TokenTTLMinutes = %d, want default 30", cfg.Auth.TokenTTLMinutes)
	}
	if cfg.Admin != nil {
		t.Errorf("Admin = %+v, want nil", cfg.Admin)
	}
}

func TestParse_MysqlDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
database:
  driver: mysql
  name: trestle
auth:
  secret: s
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Host != "127.0.0.1" {
		t.Errorf("Database.Host = %q, want default 127.0.0.1", cfg.Database.Host)
	}
	if cfg.Database.Port != 3306 {
		t.Errorf("Database.Port = %d, want default 3306", cfg.Database.Port)
	}
	if cfg.Database.User != "root" {
		t.Errorf("Database.User = %q, want default root", cfg.Database.User)
	}
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantSub string
	}{
		{"missing secret", `server: {port: 1}`, "auth.secret is required"},
		{"bad driver", "database: {driver: postgres}\nauth: {secret: s}", "not one of sqlite, mysql"},
		{"mysql without name", "database: {driver: mysql}\nauth: {secret: s}", "database.name is required"},
		{"admin without password", "auth: {secret: s}\nadmin: {email: a@b.c}", "admin.password is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not contain %q", err, tt.wantSub)
			}
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("::not yaml::"))
	if err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(minimalYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	if cfg.Auth.Secret != "supersecretkey" {
		t.Errorf("Auth.Secret = %q, want supersecretkey", cfg.Auth.Secret)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}
