package widget

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ExportFilename returns the download filename for an export triggered now,
// embedding the current timestamp.
func ExportFilename() string {
	return fmt.Sprintf("qr-code-%d.png", time.Now().UnixMilli())
}

// Export renders the current configuration and writes it as a PNG into dir,
// creating the directory if needed. It returns the written file's path.
func (w *Widget) Export(dir string) (string, error) {
	data, err := w.Render()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(dir, ExportFilename())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}

	w.log.Info("exported qr code", "path", path, "bytes", len(data))
	return path, nil
}
