// Package store manages the on-disk blobs owned by the widget, currently
// only the uploaded logo images.
package store

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Logo is a handle to a stored logo image. The widget owns the handle and
// must pass it back to LogoStore.Remove when the logo is replaced or cleared.
type Logo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"-"`
}

// LogoStore manages logo image files under a logos directory. Each saved
// logo gets a uuid-based filename so consecutive uploads never collide.
type LogoStore struct {
	dir string
	log *slog.Logger
}

// 10 MB is plenty for a logo; larger uploads are cut off.
const maxLogoBytes = 10 << 20

// NewLogoStore creates a LogoStore rooted at dataDir/logos, creating the
// directory if needed.
func NewLogoStore(dataDir string, log *slog.Logger) (*LogoStore, error) {
	dir := filepath.Join(dataDir, "logos")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create logos dir: %w", err)
	}
	return &LogoStore{dir: dir, log: log}, nil
}

// Save reads an image from r and stores it under a fresh uuid-based
// filename. The content must sniff as an image; anything else is rejected.
func (s *LogoStore) Save(r io.Reader, name string) (*Logo, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxLogoBytes))
	if err != nil {
		return nil, fmt.Errorf("read logo: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty logo upload")
	}

	mimetype := http.DetectContentType(data)
	if !strings.HasPrefix(mimetype, "image/") {
		return nil, fmt.Errorf("unsupported logo content type %s", mimetype)
	}

	id := uuid.New().String()
	ext := filepath.Ext(name)
	if ext == "" {
		ext = ".png"
	}
	path := filepath.Join(s.dir, id+ext)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("write logo file: %w", err)
	}

	s.log.Debug("logo stored", "id", id, "name", name, "bytes", len(data))
	return &Logo{ID: id, Name: name, Path: path}, nil
}

// Remove releases a logo handle by deleting its file. A nil handle is a
// no-op; a missing file is not an error.
func (s *LogoStore) Remove(l *Logo) error {
	if l == nil {
		return nil
	}
	if err := os.Remove(l.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove logo file: %w", err)
	}
	s.log.Debug("logo released", "id", l.ID)
	return nil
}
