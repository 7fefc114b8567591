package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, SourceFile, cfg.Model.Source)
	assert.Equal(t, "models/heart_disease_predictor.json", cfg.Model.Path)
	assert.Equal(t, 10*time.Second, cfg.Model.RemoteTimeout)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("MODEL_SOURCE", SourceRemote)
	t.Setenv("MODEL_REMOTE_TIMEOUT", "250ms")
	t.Setenv("REGISTRY_DB_HOST", "db.internal")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, SourceRemote, cfg.Model.Source)
	assert.Equal(t, 250*time.Millisecond, cfg.Model.RemoteTimeout)
	assert.Equal(t, "postgres://postgres:@db.internal:5432/model_registry?sslmode=disable", cfg.Registry.DSN())
}

func TestLoad_DotEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("KUBERNETES_CONFIGMAP_KEY=artifact.json\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("KUBERNETES_CONFIGMAP_KEY") })

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "artifact.json", cfg.Kubernetes.Key)
}

func TestLoad_UnknownSource(t *testing.T) {
	t.Setenv("MODEL_SOURCE", "s3")

	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}

func TestLoad_InvalidRemoteTimeout(t *testing.T) {
	for _, value := range []string{"soon", "0s", "-5s"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("MODEL_REMOTE_TIMEOUT", value)

			_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
			assert.ErrorContains(t, err, "MODEL_REMOTE_TIMEOUT")
		})
	}
}

func TestInitLogger(t *testing.T) {
	t.Cleanup(func() { InitLogger(LoggerConfig{Level: "info", Format: "json"}) })

	InitLogger(LoggerConfig{Level: "debug", Format: "text"})
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	InitLogger(LoggerConfig{Level: "nonsense", Format: "json", File: filepath.Join(t.TempDir(), "service.log")})
	assert.Equal(t, log.InfoLevel, log.GetLevel())
	log.Info("rotated")
}
