package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pocket.json")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeSettings(t, `{"consumer_key": "1234-abcd", "access_token": "5678-efgh", "default_command": "get"}`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.ConsumerKey != "1234-abcd" {
		t.Errorf("ConsumerKey = %q", s.ConsumerKey)
	}
	if s.AccessToken != "5678-efgh" {
		t.Errorf("AccessToken = %q", s.AccessToken)
	}
	if s.DefaultCommand != "get" {
		t.Errorf("DefaultCommand = %q", s.DefaultCommand)
	}
	if s.BaseURL != "" {
		t.Errorf("BaseURL = %q, want empty", s.BaseURL)
	}
	if s.Path != path {
		t.Errorf("Path = %q, want %q", s.Path, path)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeSettings(t, `{"consumer_key": "file-key", "access_token": "file-token"}`)
	t.Setenv("POCKET_ACCESS_TOKEN", "env-token")
	t.Setenv("POCKET_BASE_URL", "http://127.0.0.1:9999")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.AccessToken != "env-token" {
		t.Errorf("AccessToken = %q, want env-token", s.AccessToken)
	}
	if s.ConsumerKey != "file-key" {
		t.Errorf("ConsumerKey = %q, want file-key", s.ConsumerKey)
	}
	if s.BaseURL != "http://127.0.0.1:9999" {
		t.Errorf("BaseURL = %q", s.BaseURL)
	}
}

func TestLoad_EnvOverrideDefaultCommand(t *testing.T) {
	path := writeSettings(t, `{"consumer_key": "k", "access_token": "t"}`)
	t.Setenv("POCKET_DEFAULT_COMMAND", "get")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.DefaultCommand != "get" {
		t.Errorf("DefaultCommand = %q, want get", s.DefaultCommand)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		mention string
	}{
		{"missing consumer_key", `{"access_token": "x"}`, "consumer_key"},
		{"missing access_token", `{"consumer_key": "x"}`, "access_token"},
		{"empty consumer_key", `{"consumer_key": "", "access_token": "x"}`, "/consumer_key"},
		{"not an object", `["consumer_key", "access_token"]`, "object"},
		{"wrong type", `{"consumer_key": 12, "access_token": "x"}`, "/consumer_key"},
		{"bad default command", `{"consumer_key": "x", "access_token": "y", "default_command": "delete"}`, "/default_command"},
		{"bad base url", `{"consumer_key": "x", "access_token": "y", "base_url": "ftp://host"}`, "/base_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSettings(t, tt.content)

			_, err := Load(path)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Load error = %v, want *ValidationError", err)
			}
			if len(verr.Issues) == 0 {
				t.Fatal("expected at least one issue")
			}
			if !strings.Contains(err.Error(), tt.mention) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.mention)
			}
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	path := writeSettings(t, `{"consumer_key": `)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Errorf("malformed JSON should not be a validation error: %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLocate_Explicit(t *testing.T) {
	path := writeSettings(t, `{}`)

	got, err := Locate(path)
	if err != nil {
		t.Fatalf("Locate failed: %v", err)
	}
	if got != path {
		t.Errorf("Locate = %q, want %q", got, path)
	}

	_, err = Locate(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Locate(missing) error = %v, want ErrNotFound", err)
	}
}

func TestLocate_Candidates(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	if _, err := Locate(""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Locate with no files = %v, want ErrNotFound", err)
	}

	userPath := filepath.Join(home, ".config", "pocket", "config.json")
	os.MkdirAll(filepath.Dir(userPath), 0755)
	os.WriteFile(userPath, []byte(`{}`), 0600)

	got, err := Locate("")
	if err != nil || got != userPath {
		t.Fatalf("Locate = %q, %v; want %q", got, err, userPath)
	}

	// ./pocket.json wins over the user file.
	os.WriteFile(localFileName, []byte(`{}`), 0600)
	got, err = Locate("")
	if err != nil || filepath.Base(got) != localFileName {
		t.Fatalf("Locate = %q, %v; want ./%s", got, err, localFileName)
	}
}

func TestSetAndGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	if err := Set(path, KeyConsumerKey, "ck"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := Set(path, KeyAccessToken, "at"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := Get(path, KeyConsumerKey)
	if err != nil || got != "ck" {
		t.Fatalf("Get(consumer_key) = %q, %v", got, err)
	}

	// The written file is a complete, loadable settings file.
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load after Set failed: %v", err)
	}
	if s.ConsumerKey != "ck" || s.AccessToken != "at" {
		t.Errorf("loaded %+v", s)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0600 {
		t.Errorf("permissions = %v, want 0600", info.Mode().Perm())
	}
}

func TestSet_UnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := Set(path, "favourite_colour", "blue"); err == nil {
		t.Fatal("expected error for unknown key")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("settings file should not be created for an unknown key")
	}
}
