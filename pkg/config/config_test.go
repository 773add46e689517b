package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir replicates t.Chdir, which requires Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"JWT_SECRET=from-dotenv\nJUDGE0_API_KEY=dotenv-key\n"), 0o600))

	chdir(t, dir)
	// godotenv writes into the process environment; clean up after
	t.Cleanup(func() {
		os.Unsetenv("JWT_SECRET")
		os.Unsetenv("JUDGE0_API_KEY")
	})

	cfg := Load()
	assert.Equal(t, "from-dotenv", cfg.JWTSecret)
	assert.Equal(t, "dotenv-key", cfg.Judge0APIKey)
}

func TestLoadEnvironmentWinsOverDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("JWT_SECRET=from-dotenv\n"), 0o600))

	chdir(t, dir)
	t.Setenv("JWT_SECRET", "from-environ")

	cfg := Load()
	assert.Equal(t, "from-environ", cfg.JWTSecret)
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir()) // no .env here
	t.Setenv("PORT", "")
	t.Setenv("MONGO_DB", "")

	cfg := Load()
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "careernest", cfg.MongoDB)
	assert.NotEmpty(t, cfg.Judge0Hosts)
}
