package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  serviceName: ashcosmetic
  log:
    level: info
http:
  port: 9000
storage:
  driver: memory
session:
  ttl: 30m
mongo:
  uri: mongodb://localhost:27017
  database: test
`

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(content), 0o600))

	return dir
}

func TestLoadWithEnv_ReadsYAMLFromSearchPath(t *testing.T) {
	dir := writeTestConfig(t, testConfigYAML)
	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, "ashcosmetic", cfg.Env.ServiceName)
	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	require.NotNil(t, cfg.Mongo)
	assert.Equal(t, "test", cfg.Mongo.Database)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := writeTestConfig(t, testConfigYAML)
	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("MONGO_DATABASE", "from_env")
	t.Setenv("HTTP_PORT", "9100")

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, "from_env", cfg.Mongo.Database)
	assert.Equal(t, 9100, cfg.HTTP.Port)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StorageDriverMongo, cfg.Storage.Driver)
	assert.Equal(t, SessionStoreStorage, cfg.Session.Store)
	assert.Equal(t, time.Hour, cfg.Session.TTL)
	assert.Equal(t, "session_id", cfg.Session.CookieName)
}

func TestApplyDefaults_NormalisesDriverNames(t *testing.T) {
	cfg := &Config{}
	cfg.Storage.Driver = " Postgres "
	cfg.Session.Store = "REDIS"
	applyDefaults(cfg)

	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, SessionStoreRedis, cfg.Session.Store)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "memory needs nothing",
			mutate: func(c *Config) { c.Storage.Driver = StorageDriverMemory },
		},
		{
			name:    "mongo without uri",
			mutate:  func(c *Config) { c.Storage.Driver = StorageDriverMongo },
			wantErr: "mongo.uri is required",
		},
		{
			name: "mongo with uri",
			mutate: func(c *Config) {
				c.Storage.Driver = StorageDriverMongo
				c.Mongo = &MongoConfig{URI: "mongodb://localhost:27017"}
			},
		},
		{
			name:    "postgres without section",
			mutate:  func(c *Config) { c.Storage.Driver = StorageDriverPostgres },
			wantErr: "postgres section is required",
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Storage.Driver = "sqlite" },
			wantErr: "unknown storage driver",
		},
		{
			name: "redis without addr",
			mutate: func(c *Config) {
				c.Storage.Driver = StorageDriverMemory
				c.Session.Store = SessionStoreRedis
			},
			wantErr: "redis.addr is required",
		},
		{
			name: "unknown session store",
			mutate: func(c *Config) {
				c.Storage.Driver = StorageDriverMemory
				c.Session.Store = "cookie"
			},
			wantErr: "unknown session store",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			applyDefaults(cfg)
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5432")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := buildReplicasFromEnv()

	require.Len(t, replicas, 1, "incomplete replica 1 stops the scan")
	assert.Equal(t, "replica-0", replicas[0].Host)
	assert.Equal(t, "reader", replicas[0].UserName)
}
