package postgres

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"heart-risk-service/internal/adapters/secondary/filesystem"
	"heart-risk-service/internal/core/domain"
	ports "heart-risk-service/internal/core/ports/output"
)

// Querier is the read side of *pgxpool.Pool used by the registry lookup.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// RegistryArtifactSource resolves a registered model version to its
// artifact URI in the model registry database and reads that artifact.
type RegistryArtifactSource struct {
	db        Querier
	fs        afero.Fs
	projectID *uuid.UUID
	model     string
	version   string
}

var _ ports.ArtifactSource = (*RegistryArtifactSource)(nil)

// NewRegistryArtifactSource looks up model/version. An empty version
// selects the default version, falling back to the newest live one.
func NewRegistryArtifactSource(db Querier, fsys afero.Fs, projectID *uuid.UUID, model, version string) *RegistryArtifactSource {
	return &RegistryArtifactSource{db: db, fs: fsys, projectID: projectID, model: model, version: version}
}

func (s *RegistryArtifactSource) Describe() string {
	version := s.version
	if version == "" {
		version = "default"
	}
	return fmt.Sprintf("registry://%s/%s", s.model, version)
}

// ResolveURI returns the artifact URI recorded for the configured version.
func (s *RegistryArtifactSource) ResolveURI(ctx context.Context) (string, error) {
	query := `
		SELECT mv.uri, mv.name
		FROM model_version mv
		JOIN registered_model rm ON rm.id = mv.registered_model_id
		WHERE rm.name = $1
		  AND ($2::uuid IS NULL OR rm.project_id = $2)
		  AND ($3::text = '' OR mv.name = $3)
		  AND mv.state = 'LIVE'
		ORDER BY mv.is_default DESC, mv.created_at DESC
		LIMIT 1
	`
	var uri, versionName string
	if err := s.db.QueryRow(ctx, query, s.model, s.projectID, s.version).Scan(&uri, &versionName); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, s.Describe())
		}
		return "", fmt.Errorf("resolve model version: %w", err)
	}

	log.WithFields(log.Fields{
		"model":   s.model,
		"version": versionName,
		"uri":     uri,
	}).Debug("resolved registry artifact")

	return uri, nil
}

func (s *RegistryArtifactSource) Fetch(ctx context.Context) ([]byte, error) {
	uri, err := s.ResolveURI(ctx)
	if err != nil {
		return nil, err
	}
	path, err := localPath(uri)
	if err != nil {
		return nil, err
	}
	return filesystem.NewArtifactSource(s.fs, path).Fetch(ctx)
}

func localPath(uri string) (string, error) {
	if uri == "" {
		return "", fmt.Errorf("%w: model version has no uri", domain.ErrArtifactNotFound)
	}
	if !strings.Contains(uri, "://") {
		return uri, nil
	}
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("%w: parse uri %q: %v", domain.ErrModelArtifact, uri, err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedModelSource, u.Scheme)
	}
	return u.Path, nil
}
