package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
database:
  dsn: "file:test.db"
spoonacular:
  api_key: "test-key"
  page_size: 5
  search_count: 25
auth:
  bcrypt_cost: 12
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Listen)
	assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "file:test.db", cfg.Database.DSN)
	assert.Equal(t, "test-key", cfg.Spoonacular.APIKey)
	assert.Equal(t, 5, cfg.Spoonacular.PageSize)
	assert.Equal(t, 25, cfg.Spoonacular.SearchCount)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
spoonacular:
  api_key: "test-key"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Listen)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, "https://api.spoonacular.com", cfg.Spoonacular.Endpoint)
	assert.Equal(t, 10*time.Second, cfg.Spoonacular.Timeout)
	assert.Equal(t, 20, cfg.Spoonacular.SearchCount)
	assert.Equal(t, 4, cfg.Spoonacular.PageSize)
	assert.Equal(t, 2, cfg.Spoonacular.TeaserCount)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, 6, cfg.Auth.MinPassword)
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("TEST_API_KEY", "key-from-env")

	path := writeConfig(t, `
spoonacular:
  api_key: "${TEST_API_KEY}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "key-from-env", cfg.Spoonacular.APIKey)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "missing api key",
			content: `server: {listen: ":8080"}`,
			errMsg:  "spoonacular.api_key is required",
		},
		{
			name: "page size above search count",
			content: `
spoonacular:
  api_key: "k"
  page_size: 50
  search_count: 10
`,
			errMsg: "search_count must be at least page_size",
		},
		{
			name: "bad bcrypt cost",
			content: `
spoonacular:
  api_key: "k"
auth:
  bcrypt_cost: 99
`,
			errMsg: "bcrypt_cost must be between 4 and 31",
		},
		{
			name: "short session ttl",
			content: `
spoonacular:
  api_key: "k"
auth:
  session_ttl: 5s
`,
			errMsg: "session_ttl must be at least 1 minute",
		},
		{
			name:    "invalid yaml",
			content: "spoonacular: [broken",
			errMsg:  "parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/no/such/config.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestConfig_Getters(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9191"
spoonacular:
  api_key: "test-key"
  page_size: 7
  search_count: 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	listen, timeout := cfg.GetServerConfig()
	assert.Equal(t, ":9191", listen)
	assert.Equal(t, 30*time.Second, timeout)

	assert.Equal(t, 7, cfg.GetPageSize())
	assert.Equal(t, "test-key", cfg.GetSpoonacularConfig().APIKey)
	assert.Equal(t, 10, cfg.GetAuthConfig().BcryptCost)
}
