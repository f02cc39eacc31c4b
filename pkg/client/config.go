package client

import (
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultBaseURL is the production sender API endpoint.
	DefaultBaseURL = "https://sender.api.kuverta.com"

	// DefaultStorageName keys the authentication state in the token store.
	DefaultStorageName = "kuverta_auth"

	defaultUserAgent = "kuverta-go/1.0"
)

// Config carries the credentials and endpoint settings for a Client.
// ClientID and ClientSecret are required; the rest default sensibly.
type Config struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
	StorageName  string
	UserAgent    string
}

// valid reports whether the client-credentials pair is complete enough to
// authenticate. Called before any network activity.
func (c Config) valid() error {
	var missing []string
	if c.ClientID == "" {
		missing = append(missing, "client id")
	}
	if c.ClientSecret == "" {
		missing = append(missing, "client secret")
	}
	if c.BaseURL == "" {
		missing = append(missing, "base url")
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.StorageName == "" {
		c.StorageName = DefaultStorageName
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	return c
}

// ConfigFromEnv builds a Config from KUVERTA_* environment variables:
// KUVERTA_CLIENT_ID, KUVERTA_CLIENT_SECRET, KUVERTA_BASE_URL and
// KUVERTA_STORAGE_NAME.
func ConfigFromEnv() Config {
	v := viper.New()
	v.SetEnvPrefix("KUVERTA")
	v.AutomaticEnv()
	v.SetDefault("BASE_URL", DefaultBaseURL)
	v.SetDefault("STORAGE_NAME", DefaultStorageName)

	return Config{
		ClientID:     v.GetString("CLIENT_ID"),
		ClientSecret: v.GetString("CLIENT_SECRET"),
		BaseURL:      v.GetString("BASE_URL"),
		StorageName:  v.GetString("STORAGE_NAME"),
	}
}
