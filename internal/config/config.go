package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/marekjm/pocket/internal/branding"
	"github.com/spf13/viper"
)

const (
	localFileName = "pocket.json"
	fileName      = "config"
	fileType      = "json"
)

// Permissions for files written by Set. The settings hold credentials.
const (
	dirPerm  os.FileMode = 0700
	filePerm os.FileMode = 0600
)

// Settings keys.
const (
	KeyConsumerKey    = "consumer_key"
	KeyAccessToken    = "access_token"
	KeyBaseURL        = "base_url"
	KeyDefaultCommand = "default_command"
)

// Keys lists every key the settings file may carry.
var Keys = []string{KeyConsumerKey, KeyAccessToken, KeyBaseURL, KeyDefaultCommand}

// ErrNotFound is returned when no settings file exists at any candidate path.
var ErrNotFound = errors.New("pocket settings not found")

// Settings is the loaded, validated configuration. It is not modified after
// Load returns.
type Settings struct {
	ConsumerKey    string
	AccessToken    string
	BaseURL        string
	DefaultCommand string
	// Path is the file the settings were read from.
	Path string
}

// Dir returns the user settings directory (~/.config/pocket).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.ConfigDir())
	}
	return filepath.Join(home, branding.ConfigDir())
}

// Candidates returns the settings paths in lookup order: ./pocket.json, then
// ~/.config/pocket/config.json.
func Candidates() []string {
	local, err := filepath.Abs(localFileName)
	if err != nil {
		local = localFileName
	}
	return []string{local, filepath.Join(Dir(), fileName+"."+fileType)}
}

// Locate returns explicit when it is non-empty, otherwise the first candidate
// that exists as a regular file.
func Locate(explicit string) (string, error) {
	if explicit != "" {
		info, err := os.Stat(explicit)
		if err != nil || info.IsDir() {
			return "", fmt.Errorf("%w: %s", ErrNotFound, explicit)
		}
		return explicit, nil
	}
	for _, path := range Candidates() {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", ErrNotFound
}

// Load reads and validates the settings file at path. Environment variables
// such as POCKET_ACCESS_TOKEN override the corresponding file keys.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading pocket settings: %w", err)
	}

	issues, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load pocket settings: %w", err)
	}
	if len(issues) > 0 {
		return nil, &ValidationError{Path: path, Issues: issues}
	}

	v := newViper(path)
	for _, key := range Keys {
		if err := v.BindEnv(key, branding.EnvVar(key)); err != nil {
			return nil, fmt.Errorf("binding %s: %w", branding.EnvVar(key), err)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to load pocket settings: %w", err)
	}

	return &Settings{
		ConsumerKey:    v.GetString(KeyConsumerKey),
		AccessToken:    v.GetString(KeyAccessToken),
		BaseURL:        v.GetString(KeyBaseURL),
		DefaultCommand: v.GetString(KeyDefaultCommand),
		Path:           path,
	}, nil
}

// Get returns a single key from the settings file at path without
// validating the rest of the file. Returns empty string if not set.
func Get(path, key string) (string, error) {
	v := newViper(path)
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("reading settings file %s: %w", path, err)
	}
	return v.GetString(key), nil
}

// Set writes a key-value pair to the settings file at path, creating the
// file and its directory when needed.
func Set(path, key, value string) error {
	if !isKnownKey(key) {
		return fmt.Errorf("unknown settings key %q", key)
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	v := newViper(path)
	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading settings file %s: %w", path, err)
		}
	}
	v.Set(key, value)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	if err := chmod(path, filePerm); err != nil {
		return fmt.Errorf("restricting settings file permissions: %w", err)
	}
	return nil
}

// DefaultPath returns the path `config set` writes to when no settings file
// exists yet.
func DefaultPath() string {
	return Candidates()[1]
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	return v
}

// chmod is a no-op on Windows, which has no Unix permission bits.
func chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

func isKnownKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}
