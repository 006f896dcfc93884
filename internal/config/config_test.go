package config

import (
	"strings"
	"testing"
)

func TestDatabaseConfigDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "url takes priority",
			cfg: DatabaseConfig{
				URL:  "postgres://u:p@db:5432/x?sslmode=require",
				Host: "ignored",
			},
			want: "postgres://u:p@db:5432/x?sslmode=require",
		},
		{
			name: "constructed from fields",
			cfg: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				User:     "sealgate",
				Password: "pw",
				Database: "sealgate",
				SSLMode:  "disable",
			},
			want: "postgres://sealgate:pw@localhost:5432/sealgate?sslmode=disable",
		},
		{
			name: "sslmode defaults to disable",
			cfg: DatabaseConfig{
				Host:     "h",
				Port:     1,
				User:     "u",
				Password: "p",
				Database: "d",
			},
			want: "postgres://u:p@h:1/d?sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.DSN(); got != tt.want {
				t.Errorf("DSN() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateRejectsShortSigningSecret(t *testing.T) {
	cfg := &Config{
		Security: SecurityConfig{SigningSecret: "short"},
		Storage:  StorageConfig{Bucket: "signing"},
	}
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "signing_secret") {
		t.Errorf("Validate() = %v, want signing_secret error", err)
	}
}

func TestEnsureSecretsGenerates(t *testing.T) {
	cfg := &Config{Storage: StorageConfig{Bucket: "signing"}}
	if err := cfg.ensureSecrets(); err != nil {
		t.Fatalf("ensureSecrets() error: %v", err)
	}
	if len(cfg.Security.SigningSecret) != 64 {
		t.Errorf("signing secret length = %d, want 64 hex chars", len(cfg.Security.SigningSecret))
	}
	if len(cfg.Security.AdminAccessToken) != 48 {
		t.Errorf("admin token length = %d, want 48 hex chars", len(cfg.Security.AdminAccessToken))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() after ensureSecrets: %v", err)
	}
}

func TestGenerateSecureRandomHexUnique(t *testing.T) {
	a, err := GenerateSecureRandomHex(16)
	if err != nil {
		t.Fatalf("GenerateSecureRandomHex error: %v", err)
	}
	b, _ := GenerateSecureRandomHex(16)
	if a == b {
		t.Error("two generated tokens should differ")
	}
	if len(a) != 32 {
		t.Errorf("token length = %d, want 32", len(a))
	}
}
