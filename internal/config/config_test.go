package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmazoveracode/veracode-target-urls/internal/infra/report"
	"github.com/jmazoveracode/veracode-target-urls/internal/infra/veracode"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, veracode.DefaultBaseURL, cfg.API.BaseURL)
	assert.Equal(t, report.DefaultFile, cfg.Output.File)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.False(t, cfg.HistoryEnabled())
	assert.False(t, cfg.MinioEnabled())
	assert.False(t, cfg.AIEnabled())
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
api:
  baseURL: https://api.example.test
output:
  file: report.json
database:
  driver: postgres
  host: db.local
  port: 5432
  user: extractor
  password: secret
  name: targets
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.test", cfg.API.BaseURL)
	assert.Equal(t, "report.json", cfg.Output.File)
	assert.True(t, cfg.HistoryEnabled())
	assert.Equal(t,
		"host=db.local port=5432 user=extractor password=secret dbname=targets sslmode=disable",
		cfg.PostgresDSN(),
	)
}

func TestMySQLDSN(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Driver = "mysql"
	cfg.Database.Host = "db.local"
	cfg.Database.Port = 3306
	cfg.Database.User = "extractor"
	cfg.Database.Password = "secret"
	cfg.Database.Name = "targets"

	assert.Equal(t,
		"extractor:secret@tcp(db.local:3306)/targets?parseTime=true&charset=utf8mb4&loc=UTC",
		cfg.MySQLDSN(),
	)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
