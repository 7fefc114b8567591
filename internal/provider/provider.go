// Package provider builds the model provider selected by configuration.
package provider

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"heart-risk-service/internal/adapters/secondary/filesystem"
	"heart-risk-service/internal/adapters/secondary/kserve"
	"heart-risk-service/internal/adapters/secondary/kubernetes"
	"heart-risk-service/internal/adapters/secondary/postgres"
	"heart-risk-service/internal/config"
	"heart-risk-service/internal/core/domain"
	ports "heart-risk-service/internal/core/ports/output"
	"heart-risk-service/internal/metrics"
	"heart-risk-service/internal/model"
)

// Open loads the model once. Any failure is a configuration error: callers
// must not fall back to a default model.
func Open(ctx context.Context, cfg *config.Config) (ports.Classifier, domain.ModelInfo, error) {
	clf, info, err := open(ctx, cfg)
	if err != nil {
		return nil, domain.ModelInfo{}, fmt.Errorf("%w: %w", domain.ErrModelUnavailable, err)
	}
	metrics.SetModelInfo(info.Name, info.Version, info.Kind, info.Source)
	return clf, info, nil
}

func open(ctx context.Context, cfg *config.Config) (ports.Classifier, domain.ModelInfo, error) {
	switch cfg.Model.Source {
	case config.SourceFile:
		return model.Load(ctx, filesystem.NewArtifactSource(afero.NewOsFs(), cfg.Model.Path))

	case config.SourceRegistry:
		return openRegistry(ctx, &cfg.Registry)

	case config.SourceConfigMap:
		client, err := kubernetes.NewClient(&cfg.Kubernetes)
		if err != nil {
			return nil, domain.ModelInfo{}, err
		}
		src := kubernetes.NewConfigMapArtifactSource(client, cfg.Kubernetes.Namespace, cfg.Kubernetes.ConfigMap, cfg.Kubernetes.Key)
		return model.Load(ctx, src)

	case config.SourceRemote:
		client := kserve.NewClient(cfg.Model.RemoteURL, cfg.Model.RemoteName, cfg.Model.RemoteTimeout)
		if err := client.Ready(ctx); err != nil {
			return nil, domain.ModelInfo{}, err
		}
		log.WithField("endpoint", client.Describe()).Info("remote model endpoint ready")
		return client, domain.ModelInfo{
			Name:     cfg.Model.RemoteName,
			Kind:     "remote",
			Source:   client.Describe(),
			Features: domain.FeatureNames(),
		}, nil

	default:
		return nil, domain.ModelInfo{}, fmt.Errorf("%w: %q", domain.ErrUnsupportedModelSource, cfg.Model.Source)
	}
}

// openRegistry holds a pool only for the one lookup; the loaded model does
// not depend on the database afterwards.
func openRegistry(ctx context.Context, cfg *config.RegistryConfig) (ports.Classifier, domain.ModelInfo, error) {
	var projectID *uuid.UUID
	if cfg.ProjectID != "" {
		id, err := uuid.Parse(cfg.ProjectID)
		if err != nil {
			return nil, domain.ModelInfo{}, fmt.Errorf("parse REGISTRY_PROJECT_ID: %w", err)
		}
		projectID = &id
	}

	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return nil, domain.ModelInfo{}, fmt.Errorf("create registry pool: %w", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		return nil, domain.ModelInfo{}, fmt.Errorf("ping registry: %w", err)
	}

	src := postgres.NewRegistryArtifactSource(pool, afero.NewOsFs(), projectID, cfg.ModelName, cfg.ModelVersion)
	return model.Load(ctx, src)
}
