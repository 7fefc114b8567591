package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Model sources.
const (
	SourceFile      = "file"
	SourceRegistry  = "registry"
	SourceConfigMap = "configmap"
	SourceRemote    = "remote"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Model      ModelConfig
	Registry   RegistryConfig
	Kubernetes KubernetesConfig
	Metrics    MetricsConfig
}

type ServerConfig struct {
	Host string
	Port int
}

type LoggerConfig struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type ModelConfig struct {
	Source        string
	Path          string
	RemoteURL     string
	RemoteName    string
	RemoteTimeout time.Duration
}

// RegistryConfig points at the model registry database. Only read access is
// needed: the artifact URI of one registered model version.
type RegistryConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	ProjectID    string
	ModelName    string
	ModelVersion string
}

func (c RegistryConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

type KubernetesConfig struct {
	InCluster      bool
	KubeConfigPath string
	Namespace      string
	ConfigMap      string
	Key            string
}

type MetricsConfig struct {
	Enabled bool
}

// Load reads configuration from the environment. Values in .env files are
// applied first and never override variables that are already set.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("LOGGER_FILE", "")
	v.SetDefault("LOGGER_MAX_SIZE_MB", 100)
	v.SetDefault("LOGGER_MAX_BACKUPS", 3)
	v.SetDefault("LOGGER_MAX_AGE_DAYS", 28)
	v.SetDefault("MODEL_SOURCE", SourceFile)
	v.SetDefault("MODEL_PATH", "models/heart_disease_predictor.json")
	v.SetDefault("MODEL_REMOTE_URL", "http://localhost:8085")
	v.SetDefault("MODEL_REMOTE_NAME", "heart-disease-predictor")
	v.SetDefault("MODEL_REMOTE_TIMEOUT", "10s")
	v.SetDefault("REGISTRY_DB_HOST", "localhost")
	v.SetDefault("REGISTRY_DB_PORT", 5432)
	v.SetDefault("REGISTRY_DB_USER", "postgres")
	v.SetDefault("REGISTRY_DB_PASSWORD", "")
	v.SetDefault("REGISTRY_DB_NAME", "model_registry")
	v.SetDefault("REGISTRY_DB_SSLMODE", "disable")
	v.SetDefault("REGISTRY_PROJECT_ID", "")
	v.SetDefault("REGISTRY_MODEL_NAME", "heart-disease-predictor")
	v.SetDefault("REGISTRY_MODEL_VERSION", "")
	v.SetDefault("KUBERNETES_IN_CLUSTER", false)
	v.SetDefault("KUBERNETES_KUBECONFIG", "")
	v.SetDefault("KUBERNETES_NAMESPACE", "model-serving")
	v.SetDefault("KUBERNETES_CONFIGMAP", "heart-disease-predictor")
	v.SetDefault("KUBERNETES_CONFIGMAP_KEY", "model.json")
	v.SetDefault("METRICS_ENABLED", true)

	// Env
	v.AutomaticEnv()

	timeout := v.GetDuration("MODEL_REMOTE_TIMEOUT")
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid MODEL_REMOTE_TIMEOUT %q: want a positive duration such as 10s", v.GetString("MODEL_REMOTE_TIMEOUT"))
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("SERVER_HOST"),
			Port: v.GetInt("SERVER_PORT"),
		},
		Logger: LoggerConfig{
			Level:      v.GetString("LOGGER_LEVEL"),
			Format:     v.GetString("LOGGER_FORMAT"),
			File:       v.GetString("LOGGER_FILE"),
			MaxSizeMB:  v.GetInt("LOGGER_MAX_SIZE_MB"),
			MaxBackups: v.GetInt("LOGGER_MAX_BACKUPS"),
			MaxAgeDays: v.GetInt("LOGGER_MAX_AGE_DAYS"),
		},
		Model: ModelConfig{
			Source:        v.GetString("MODEL_SOURCE"),
			Path:          v.GetString("MODEL_PATH"),
			RemoteURL:     v.GetString("MODEL_REMOTE_URL"),
			RemoteName:    v.GetString("MODEL_REMOTE_NAME"),
			RemoteTimeout: timeout,
		},
		Registry: RegistryConfig{
			Host:         v.GetString("REGISTRY_DB_HOST"),
			Port:         v.GetInt("REGISTRY_DB_PORT"),
			User:         v.GetString("REGISTRY_DB_USER"),
			Password:     v.GetString("REGISTRY_DB_PASSWORD"),
			Name:         v.GetString("REGISTRY_DB_NAME"),
			SSLMode:      v.GetString("REGISTRY_DB_SSLMODE"),
			ProjectID:    v.GetString("REGISTRY_PROJECT_ID"),
			ModelName:    v.GetString("REGISTRY_MODEL_NAME"),
			ModelVersion: v.GetString("REGISTRY_MODEL_VERSION"),
		},
		Kubernetes: KubernetesConfig{
			InCluster:      v.GetBool("KUBERNETES_IN_CLUSTER"),
			KubeConfigPath: v.GetString("KUBERNETES_KUBECONFIG"),
			Namespace:      v.GetString("KUBERNETES_NAMESPACE"),
			ConfigMap:      v.GetString("KUBERNETES_CONFIGMAP"),
			Key:            v.GetString("KUBERNETES_CONFIGMAP_KEY"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
	}

	switch cfg.Model.Source {
	case SourceFile, SourceRegistry, SourceConfigMap, SourceRemote:
	default:
		return nil, fmt.Errorf("unknown MODEL_SOURCE %q", cfg.Model.Source)
	}

	return cfg, nil
}
