package storage

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
)

// FileStore writes artifacts onto the local filesystem.
type FileStore struct {
	basePath string
}

// NewFileStore initializes a FileStore rooted at basePath.
func NewFileStore(basePath string) (*FileStore, error) {
	basePath = strings.TrimSpace(basePath)
	if basePath == "" {
		return nil, errors.New("storage: base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure base path: %w", err)
	}
	return &FileStore{basePath: basePath}, nil
}

// BasePath returns the configured root directory.
func (s *FileStore) BasePath() string {
	if s == nil {
		return ""
	}
	return s.basePath
}

// Path joins key onto the store root.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.basePath, filepath.FromSlash(key))
}

// Write persists the provided bytes at the given relative key and returns the
// canonicalized storage key. Keys are cleaned to prevent directory traversal.
func (s *FileStore) Write(ctx context.Context, key string, data []byte) (string, error) {
	if s == nil {
		return "", errors.New("storage: no store configured")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	cleanKey, err := sanitizeKey(key)
	if err != nil {
		return "", err
	}
	fullPath := s.Path(cleanKey)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return "", fmt.Errorf("storage: ensure directory: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write file: %w", err)
	}
	return cleanKey, nil
}

// WriteArtifact stores a under <name>.<ext>, choosing the extension from the
// artifact's variant and MIME type. An image known only by URL is stored as a
// .url file holding that URL.
func (s *FileStore) WriteArtifact(ctx context.Context, name string, a domain.Artifact) (string, error) {
	var (
		data []byte
		ext  string
	)
	switch v := a.(type) {
	case domain.GeneratedImage:
		if len(v.Data) == 0 {
			if v.URL == "" {
				return "", fmt.Errorf("storage: %w", domain.ErrEmptyArtifact)
			}
			data, ext = []byte(v.URL+"\n"), ".url"
			break
		}
		data, ext = v.Data, extensionFor(v.MIME, ".png")
	case domain.StructuredMockup:
		data, ext = []byte(v.Markup), extensionFor(v.MIME, ".svg")
	case domain.ConceptBrief:
		data, ext = []byte(v.Text), ".md"
	case domain.TextDescription:
		data, ext = []byte(v.Text), ".txt"
	default:
		return "", fmt.Errorf("storage: unsupported artifact %T", a)
	}
	return s.Write(ctx, name+ext, data)
}

func extensionFor(mimeType, fallback string) string {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case "image/svg+xml":
		return ".svg"
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	}
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		return exts[0]
	}
	return fallback
}

// sanitizeKey normalizes a key and prevents escaping the storage root.
func sanitizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", errors.New("storage: key is required")
	}
	key = strings.ReplaceAll(key, "\\", "/")
	key = strings.TrimPrefix(key, "./")
	key = strings.TrimLeft(key, "/")
	cleaned := filepath.Clean(key)
	cleaned = strings.ReplaceAll(cleaned, "\\", "/")
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", errors.New("storage: invalid key")
	}
	return cleaned, nil
}
