package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"

	"heart-risk-service/internal/core/domain"
	ports "heart-risk-service/internal/core/ports/output"
)

type artifactSource struct {
	fs   afero.Fs
	path string
}

// NewArtifactSource reads the model artifact at path.
func NewArtifactSource(fsys afero.Fs, path string) ports.ArtifactSource {
	return &artifactSource{fs: fsys, path: path}
}

func (s *artifactSource) Describe() string {
	return "file://" + s.path
}

func (s *artifactSource) Fetch(_ context.Context) ([]byte, error) {
	if s.path == "" {
		return nil, fmt.Errorf("%w: empty model path", domain.ErrArtifactNotFound)
	}
	payload, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrArtifactNotFound, s.path)
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return payload, nil
}
