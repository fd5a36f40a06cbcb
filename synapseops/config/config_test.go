package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg := LoadConfig()

	assert.Equal(t, ":8000", cfg.Addr)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.Equal(t, ResolverRules, cfg.Resolver)
	assert.Equal(t, "en_US", cfg.LexLocaleID)
	assert.Equal(t, "synapseops-transcripts", cfg.MinIOBucket)
}

func TestLoadConfigEnvOverridesDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("ADDR", ":9100")
	t.Setenv("STORE", StorePostgres)
	t.Setenv("RESOLVER", ResolverLex)
	t.Setenv("LEX_BOT_ID", "VJE6YGSH17")

	cfg := LoadConfig()

	assert.Equal(t, ":9100", cfg.Addr)
	assert.Equal(t, StorePostgres, cfg.Store)
	assert.Equal(t, ResolverLex, cfg.Resolver)
	assert.Equal(t, "VJE6YGSH17", cfg.LexBotID)
}

func TestLoadConfigFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("addr: \":9200\"\nresolver: lex\nlex_bot_id: file-bot\nminio_bucket: file-bucket\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	t.Setenv("CONFIG_FILE", path)
	// Env still wins over the file.
	t.Setenv("LEX_BOT_ID", "env-bot")

	cfg := LoadConfig()

	assert.Equal(t, ":9200", cfg.Addr)
	assert.Equal(t, ResolverLex, cfg.Resolver)
	assert.Equal(t, "env-bot", cfg.LexBotID)
	assert.Equal(t, "file-bucket", cfg.MinIOBucket)
	// Untouched keys keep their defaults.
	assert.Equal(t, StoreMemory, cfg.Store)
}
