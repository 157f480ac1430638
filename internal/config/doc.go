// Package config loads the pocket settings file (./pocket.json or
// ~/.config/pocket/config.json). The file must be a JSON object carrying a
// non-empty consumer_key and access_token; it is checked against an embedded
// JSON schema before Viper reads it, and POCKET_* environment variables
// override individual keys.
package config
