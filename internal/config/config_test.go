package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0644))
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	uploads := filepath.Join(t.TempDir(), "uploads")
	dir := writeConfig(t, `
database:
  driver: sqlite
storage:
  local_path: `+uploads+`
jwt:
  secret: dev-secret
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, DefaultQuizConfig(), cfg.Quiz)
	assert.Equal(t, 10*time.Second, cfg.Quiz.LockTTL())
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpireTime)

	// 本地存储目录会被自动创建
	info, err := os.Stat(uploads)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	dir := writeConfig(t, `
database:
  driver: sqlite
storage:
  local_path: `+t.TempDir()+`
quiz:
  max_attempts: 3
`)
	t.Setenv("QUIZ_PROGRESS_FORMULA", "average")
	t.Setenv("LEARNHUB_QUIZ_MAX_ATTEMPTS", "5")
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, ProgressFormulaAverage, cfg.Quiz.ProgressFormula)
	assert.Equal(t, 5, cfg.Quiz.MaxAttempts)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Mode: "debug"},
			Database: DatabaseConfig{Driver: "mysql"},
			Quiz:     DefaultQuizConfig(),
		}
	}
	require.NoError(t, valid().Validate())

	cases := map[string]func(c *Config){
		"short release secret": func(c *Config) { c.Server.Mode = "release"; c.JWT.Secret = "short" },
		"unknown mode":         func(c *Config) { c.Server.Mode = "staging" },
		"unknown driver":       func(c *Config) { c.Database.Driver = "oracle" },
		"unknown formula":      func(c *Config) { c.Quiz.ProgressFormula = "weighted" },
		"zero attempts":        func(c *Config) { c.Quiz.MaxAttempts = 0 },
		"min score range":      func(c *Config) { c.Quiz.DefaultMinScore = 101 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
