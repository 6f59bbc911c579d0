package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnvSkipsMissingFiles(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
}

func TestLoadDotEnvDoesNotOverrideExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "EMPOWER_TEST_DOTENV_NEW=from-file\nEMPOWER_TEST_DOTENV_SET=from-file\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("EMPOWER_TEST_DOTENV_SET", "from-env")
	t.Setenv("EMPOWER_TEST_DOTENV_NEW", "")
	os.Unsetenv("EMPOWER_TEST_DOTENV_NEW")

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}
	if got := os.Getenv("EMPOWER_TEST_DOTENV_NEW"); got != "from-file" {
		t.Fatalf("EMPOWER_TEST_DOTENV_NEW = %q, want from-file", got)
	}
	if got := os.Getenv("EMPOWER_TEST_DOTENV_SET"); got != "from-env" {
		t.Fatalf("EMPOWER_TEST_DOTENV_SET = %q, want from-env", got)
	}
}
