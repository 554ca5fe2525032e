// SPDX-License-Identifier: MIT
package content

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/thatcatcamp/lpsite/internal/locale"
	"gopkg.in/yaml.v3"
)

//go:embed data
var embedded embed.FS

var extensions = []string{".json", ".yaml", ".yml"}

// FSSource reads pages/{locale}.{json,yaml} and legal/{locale}.{json,yaml}
// from a filesystem. Each file maps identifiers to copy.
type FSSource struct {
	FS fs.FS
}

// EmbeddedSource returns the content compiled into the binary
func EmbeddedSource() FSSource {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(fmt.Sprintf("embedded content: %v", err))
	}
	return FSSource{FS: sub}
}

// DirSource reads content from a directory on disk
func DirSource(dir string) FSSource {
	return FSSource{FS: os.DirFS(dir)}
}

// Load implements Source
func (s FSSource) Load() (*Documents, error) {
	docs := NewDocuments()
	for _, l := range locale.All() {
		var pages map[string]PageCopy
		found, err := s.decode(path.Join("pages", string(l)), &pages)
		if err != nil {
			return nil, err
		}
		if found {
			for id, p := range pages {
				docs.AddPage(l, id, p)
			}
		}

		var legal map[string]LegalPageCopy
		found, err = s.decode(path.Join("legal", string(l)), &legal)
		if err != nil {
			return nil, err
		}
		if found {
			for id, p := range legal {
				docs.AddLegal(l, id, p)
			}
		}
	}
	return docs, nil
}

// decode reads the first existing file for base with a known extension.
// A locale without a file is not an error; lookups for it fail closed.
func (s FSSource) decode(base string, out any) (bool, error) {
	for _, ext := range extensions {
		name := base + ext
		raw, err := fs.ReadFile(s.FS, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return false, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if ext == ".json" {
			err = json.Unmarshal(raw, out)
		} else {
			err = yaml.Unmarshal(raw, out)
		}
		if err != nil {
			return false, fmt.Errorf("failed to parse %s: %w", name, err)
		}
		return true, nil
	}
	return false, nil
}
