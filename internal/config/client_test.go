package config

import (
	"os"
	"path/filepath"
	"testing"
)

// withHome points the user home dir at a temp dir for the test.
func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeClientConfig(t *testing.T, home, content string) {
	t.Helper()
	dir := filepath.Join(home, ".config", "addonhub")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestLoadClientConfig_Valid(t *testing.T) {
	home := withHome(t)
	writeClientConfig(t, home, "server: http://192.168.1.40:8732\ntoken: secret\n")

	cfg, err := LoadClientConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server != "http://192.168.1.40:8732" {
		t.Errorf("Server = %q", cfg.Server)
	}
	if cfg.Token != "secret" {
		t.Errorf("Token = %q", cfg.Token)
	}
}

func TestLoadClientConfig_EnvTokenOverrides(t *testing.T) {
	home := withHome(t)
	writeClientConfig(t, home, "server: http://host:8732\ntoken: from-file\n")
	t.Setenv("ADDONHUB_TOKEN", "from-env")

	cfg, err := LoadClientConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Token != "from-env" {
		t.Errorf("Token = %q, want %q", cfg.Token, "from-env")
	}
}

func TestLoadClientConfig_MissingServer(t *testing.T) {
	home := withHome(t)
	writeClientConfig(t, home, "token: secret\n")
	if _, err := LoadClientConfig(); err == nil {
		t.Error("expected an error for a missing server")
	}
}

func TestLoadClientConfig_MissingFile(t *testing.T) {
	withHome(t)
	if _, err := LoadClientConfig(); err == nil {
		t.Error("expected an error when no config exists")
	}
}

func TestSaveClientConfig_RoundTrip(t *testing.T) {
	withHome(t)
	want := &ClientConfig{Server: "http://host:8732", Token: "tok"}
	if err := SaveClientConfig(want); err != nil {
		t.Fatal(err)
	}

	got, err := LoadClientConfig()
	if err != nil {
		t.Fatal(err)
	}
	if got.Server != want.Server || got.Token != want.Token {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
