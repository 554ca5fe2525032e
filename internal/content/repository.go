// SPDX-License-Identifier: MIT
package content

import (
	"fmt"
	"sort"

	"github.com/thatcatcamp/lpsite/internal/locale"
	"go.uber.org/zap"
)

// Page identifiers the repository recognizes. Anything else is not found.
const (
	PageExample = "example-lp"
	PageAgency  = "agency-lp"

	LegalPrivacy   = "privacy"
	LegalImpressum = "impressum"
)

var (
	pageIDs  = []string{PageExample, PageAgency}
	legalIDs = []string{LegalPrivacy, LegalImpressum}
)

// Documents is the raw locale × id content produced by a Source
type Documents struct {
	Pages map[locale.Locale]map[string]PageCopy
	Legal map[locale.Locale]map[string]LegalPageCopy
}

// NewDocuments returns an empty, writable Documents value
func NewDocuments() *Documents {
	return &Documents{
		Pages: map[locale.Locale]map[string]PageCopy{},
		Legal: map[locale.Locale]map[string]LegalPageCopy{},
	}
}

// AddPage stores a landing page copy for l
func (d *Documents) AddPage(l locale.Locale, id string, p PageCopy) {
	if d.Pages[l] == nil {
		d.Pages[l] = map[string]PageCopy{}
	}
	d.Pages[l][id] = p
}

// AddLegal stores a legal page copy for l
func (d *Documents) AddLegal(l locale.Locale, id string, p LegalPageCopy) {
	if d.Legal[l] == nil {
		d.Legal[l] = map[string]LegalPageCopy{}
	}
	d.Legal[l][id] = p
}

// Source produces content once at process start
type Source interface {
	Load() (*Documents, error)
}

// Repository answers copy lookups from tables built at construction time.
// It is never written after NewRepository returns and is safe for concurrent use.
type Repository struct {
	pages map[locale.Locale]map[string]PageCopy
	legal map[locale.Locale]map[string]LegalPageCopy
}

// NewRepository loads src, drops unknown identifiers and validates mandatory sections.
func NewRepository(src Source, logger *zap.Logger) (*Repository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	docs, err := src.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}

	repo := &Repository{
		pages: map[locale.Locale]map[string]PageCopy{},
		legal: map[locale.Locale]map[string]LegalPageCopy{},
	}

	for l, byID := range docs.Pages {
		if !l.Valid() {
			logger.Warn("skipping content for unsupported locale", zap.String("locale", string(l)))
			continue
		}
		for id, page := range byID {
			if !IsPageID(id) {
				logger.Warn("skipping unknown page id", zap.String("locale", string(l)), zap.String("page", id))
				continue
			}
			if err := ValidatePage(page); err != nil {
				return nil, fmt.Errorf("content: locale %s page %s: %w", l, id, err)
			}
			if repo.pages[l] == nil {
				repo.pages[l] = map[string]PageCopy{}
			}
			repo.pages[l][id] = page
		}
	}

	for l, byID := range docs.Legal {
		if !l.Valid() {
			logger.Warn("skipping legal content for unsupported locale", zap.String("locale", string(l)))
			continue
		}
		for id, page := range byID {
			if !IsLegalPageID(id) {
				logger.Warn("skipping unknown legal page id", zap.String("locale", string(l)), zap.String("page", id))
				continue
			}
			if err := ValidateLegalPage(page); err != nil {
				return nil, fmt.Errorf("content: locale %s legal page %s: %w", l, id, err)
			}
			if repo.legal[l] == nil {
				repo.legal[l] = map[string]LegalPageCopy{}
			}
			repo.legal[l][id] = page
		}
	}

	return repo, nil
}

// LoadPageCopy returns the landing page copy for (l, pageID).
// ok is false for unrecognized identifiers and for content a locale lacks.
func (r *Repository) LoadPageCopy(l locale.Locale, pageID string) (PageCopy, bool) {
	if !IsPageID(pageID) {
		return PageCopy{}, false
	}
	page, ok := r.pages[l][pageID]
	return page, ok
}

// LoadLegalPageCopy returns the privacy or impressum copy for l
func (r *Repository) LoadLegalPageCopy(l locale.Locale, pageID string) (LegalPageCopy, bool) {
	if !IsLegalPageID(pageID) {
		return LegalPageCopy{}, false
	}
	page, ok := r.legal[l][pageID]
	return page, ok
}

// Availability reports which identifiers each locale provides, sorted by id
func (r *Repository) Availability() map[locale.Locale][]string {
	out := make(map[locale.Locale][]string, len(locale.All()))
	for _, l := range locale.All() {
		var ids []string
		for id := range r.pages[l] {
			ids = append(ids, id)
		}
		for id := range r.legal[l] {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		out[l] = ids
	}
	return out
}

// PageIDs returns the recognized landing page identifiers
func PageIDs() []string {
	return append([]string(nil), pageIDs...)
}

// LegalPageIDs returns the recognized legal page identifiers
func LegalPageIDs() []string {
	return append([]string(nil), legalIDs...)
}

// IsPageID reports whether id is a recognized landing page identifier
func IsPageID(id string) bool {
	for _, known := range pageIDs {
		if id == known {
			return true
		}
	}
	return false
}

// IsLegalPageID reports whether id is a recognized legal page identifier
func IsLegalPageID(id string) bool {
	for _, known := range legalIDs {
		if id == known {
			return true
		}
	}
	return false
}
