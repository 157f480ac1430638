package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	if got := CLIName(); got != "pocket" {
		t.Errorf("CLIName() = %q, want %q", got, "pocket")
	}
	if got := APIURL(); got != "https://getpocket.com" {
		t.Errorf("APIURL() = %q, want %q", got, "https://getpocket.com")
	}
}

func TestEnvVar(t *testing.T) {
	cases := map[string]string{
		"consumer_key": "POCKET_CONSUMER_KEY",
		"access_token": "POCKET_ACCESS_TOKEN",
		"base_url":     "POCKET_BASE_URL",
	}
	for suffix, want := range cases {
		t.Run(suffix, func(t *testing.T) {
			if got := EnvVar(suffix); got != want {
				t.Errorf("EnvVar(%q) = %q, want %q", suffix, got, want)
			}
		})
	}
}
