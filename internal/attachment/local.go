package attachment

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStore writes attachments under a single uploads directory and
// references them by the public path they are served back from.
type LocalStore struct {
	root    string
	baseURL string
	limits  Limits
}

func NewLocalStore(root string, baseURL string, limits Limits) (*LocalStore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve uploads root: %w", err)
	}

	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads root: %w", err)
	}

	return &LocalStore{root: abs, baseURL: baseURL, limits: limits}, nil
}

// Root reports the directory the static file route serves from.
func (s *LocalStore) Root() string {
	return s.root
}

func (s *LocalStore) Save(_ context.Context, r io.Reader, filename string, declaredType string) (string, error) {
	data, err := s.limits.readChecked(r, declaredType)
	if err != nil {
		return "", err
	}

	name := uuid.NewString() + safeExtension(filename)
	if err := os.WriteFile(filepath.Join(s.root, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write attachment %q: %w", name, err)
	}

	return s.baseURL + "/" + name, nil
}
