package veracode

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-ini/ini"
)

const (
	envKeyID     = "VERACODE_API_KEY_ID"
	envKeySecret = "VERACODE_API_KEY_SECRET"
)

// Credentials hold the API key pair used for request signing. The raw secret
// never leaves this package.
type Credentials struct {
	APIKeyID     string
	APIKeySecret string
}

// LoadCredentials resolves the key pair: environment variables first, then
// the [default] section of ~/.veracode/credentials.
func LoadCredentials() (Credentials, error) {
	id := os.Getenv(envKeyID)
	secret := os.Getenv(envKeySecret)
	if id != "" && secret != "" {
		return Credentials{APIKeyID: id, APIKeySecret: secret}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Credentials{}, fmt.Errorf("resolving home directory: %w", err)
	}
	return loadCredentialsFile(filepath.Join(home, ".veracode", "credentials"))
}

func loadCredentialsFile(path string) (Credentials, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("reading %s: %w", path, err)
	}

	sec := cfg.Section("default")
	creds := Credentials{
		APIKeyID:     sec.Key("veracode_api_key_id").String(),
		APIKeySecret: sec.Key("veracode_api_key_secret").String(),
	}
	if creds.APIKeyID == "" || creds.APIKeySecret == "" {
		return Credentials{}, fmt.Errorf("%s: missing veracode_api_key_id or veracode_api_key_secret in [default]", path)
	}
	return creds, nil
}
