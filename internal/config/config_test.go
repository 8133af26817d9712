package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mautops/medic-gin/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults 测试默认配置
func TestLoad_Defaults(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "medic", cfg.Database.DBName)
	assert.Equal(t, "./media", cfg.Storage.MediaRoot)
	assert.Equal(t, "/media", cfg.Storage.MediaURL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

// TestLoad_FromFile 测试从配置文件加载
func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9090
database:
  dbname: medic_test
storage:
  media_root: /data/media
  media_url: /files
log:
  level: warn
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "medic_test", cfg.Database.DBName)
	assert.Equal(t, "/data/media", cfg.Storage.MediaRoot)
	assert.Equal(t, "/files", cfg.Storage.MediaURL)
	assert.Equal(t, "warn", cfg.Log.Level)
	// 未覆盖的字段保留默认值
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

// TestLoad_FileNotFound 测试指定配置文件不存在时报错
func TestLoad_FileNotFound(t *testing.T) {
	_, err := config.Load("/no/such/config.yaml")
	assert.Error(t, err)
}

// TestLoad_EnvOverride 测试环境变量覆盖
func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "18080")
	t.Setenv("APP_DATABASE_DBNAME", "medic_env")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 18080, cfg.Server.Port)
	assert.Equal(t, "medic_env", cfg.Database.DBName)
}

// TestIsProduction 测试环境判断
func TestIsProduction(t *testing.T) {
	assert.False(t, config.IsProduction(nil))
	assert.False(t, config.IsProduction(&config.Config{Env: "development"}))
	assert.True(t, config.IsProduction(&config.Config{Env: "production"}))
}
