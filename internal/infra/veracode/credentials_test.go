package veracode

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCredentialsFromEnv(t *testing.T) {
	t.Setenv(envKeyID, "env-id")
	t.Setenv(envKeySecret, "env-secret")

	creds, err := LoadCredentials()
	require.NoError(t, err)
	assert.Equal(t, "env-id", creds.APIKeyID)
	assert.Equal(t, "env-secret", creds.APIKeySecret)
}

func TestLoadCredentialsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")
	content := "[default]\nveracode_api_key_id = file-id\nveracode_api_key_secret = file-secret\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	creds, err := loadCredentialsFile(path)
	require.NoError(t, err)
	assert.Equal(t, "file-id", creds.APIKeyID)
	assert.Equal(t, "file-secret", creds.APIKeySecret)
}

func TestLoadCredentialsFileIncomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials")
	require.NoError(t, os.WriteFile(path, []byte("[default]\nveracode_api_key_id = only-id\n"), 0o600))

	_, err := loadCredentialsFile(path)
	assert.Error(t, err)
}

func TestLoadCredentialsFileMissing(t *testing.T) {
	_, err := loadCredentialsFile(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}
