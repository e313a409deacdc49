package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup at a temp dir and clears provider keys.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_DATA_HOME", dir)
	t.Setenv("XDG_STATE_HOME", dir)
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, filepath.Join(dir, "zerohall", "zerohall.log"), cfg.Log.File)
	assert.Equal(t, "127.0.0.1:8080", cfg.Serve.Addr)
	assert.Equal(t, 32, cfg.Reflection.CacheSize)
	assert.False(t, cfg.LLMEnabled)

	p, err := cfg.ResolveDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "zerohall", "zerohall.db"), p)
}

func TestLoad_Env(t *testing.T) {
	isolate(t)
	t.Setenv("ZEROHALL_LOG_LEVEL", "debug")
	t.Setenv("ZEROHALL_LLM_PROVIDER", "mock")
	t.Setenv("ZEROHALL_SERVE_ADDR", ":9999")
	t.Setenv("ZEROHALL_LLM_ANTHROPIC_API_KEY", "sk-test")

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":9999", cfg.Serve.Addr)
	assert.True(t, cfg.LLMEnabled)
	assert.Equal(t, "mock", cfg.LLM.Provider)
	assert.Equal(t, "sk-test", cfg.LLM.Anthropic.APIKey)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	body := "log:\n  format: json\nreflection:\n  cache_size: 4\nserve:\n  allowed_origins:\n    - https://a.example\n    - https://b.example\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zerohall.yaml"), []byte(body), 0o644))

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 4, cfg.Reflection.CacheSize)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Serve.AllowedOrigins)
}

func TestLoad_DiscoversProvider(t *testing.T) {
	isolate(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")

	cfg, err := Load(New())
	require.NoError(t, err)
	assert.True(t, cfg.LLMEnabled)
	assert.Equal(t, "openai", cfg.LLM.Provider)
}

func TestBindFlags(t *testing.T) {
	dir := isolate(t)
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("db", "", "")
	flags.String("log-level", "", "")
	require.NoError(t, flags.Parse([]string{"--db", filepath.Join(dir, "x.db"), "--log-level", "warn"}))

	v := New()
	require.NoError(t, BindFlags(v, flags))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "x.db"), cfg.DB)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_BadFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zerohall.yaml"), []byte("log: [unclosed"), 0o644))

	_, err := Load(New())
	assert.Error(t, err)
}
