// SPDX-License-Identifier: MIT

// Package backup writes snapshots of the page copy as tar.gz archives laid
// out the way a content directory is, so an extracted archive can be fed
// back through `content import --dir`.
package backup

import (
	"archive/tar"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/thatcatcamp/lpsite/internal/content"
	"github.com/thatcatcamp/lpsite/internal/locale"
)

// ContentExporter handles content exports
type ContentExporter struct {
	BackupPath string // /var/lib/lpsite/backups/

	now func() time.Time
}

// NewContentExporter creates a new content exporter
func NewContentExporter(backupPath string) *ContentExporter {
	return &ContentExporter{
		BackupPath: backupPath,
		now:        time.Now,
	}
}

// CreateExport writes docs to {BackupPath}/content-exports and returns the
// archive file name, e.g. content-2026-10-19-143022.tar.gz
func (e *ContentExporter) CreateExport(docs *content.Documents) (string, error) {
	dir := filepath.Join(e.BackupPath, "content-exports")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	filename := fmt.Sprintf("content-%s.tar.gz", e.now().UTC().Format("2006-01-02-150405"))
	f, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}

	if err := WriteArchive(f, docs, e.now()); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close export file: %w", err)
	}

	return filename, nil
}

// WriteArchive writes docs as a gzipped tar holding pages/{locale}.json and
// legal/{locale}.json. Locales without documents get no file.
func WriteArchive(w io.Writer, docs *content.Documents, modTime time.Time) error {
	gz := gzip.NewWriter(w)
	tw := tar.NewWriter(gz)

	for _, l := range locale.All() {
		if pages := docs.Pages[l]; len(pages) > 0 {
			if err := writeJSON(tw, "pages/"+string(l)+".json", pages, modTime); err != nil {
				return err
			}
		}
		if legal := docs.Legal[l]; len(legal) > 0 {
			if err := writeJSON(tw, "legal/"+string(l)+".json", legal, modTime); err != nil {
				return err
			}
		}
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finish archive: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("failed to finish archive: %w", err)
	}
	return nil
}

func writeJSON(tw *tar.Writer, name string, v any, modTime time.Time) error {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	body = append(body, '\n')

	hdr := &tar.Header{
		Name:    name,
		Mode:    0644,
		Size:    int64(len(body)),
		ModTime: modTime,
	}
	if err := tw.WriteHeader(hdr); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if _, err := tw.Write(body); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
