// SPDX-License-Identifier: MIT
package content

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/thatcatcamp/lpsite/internal/locale"
	"github.com/thatcatcamp/lpsite/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DBSource reads copy documents imported into the database
type DBSource struct {
	DB *gorm.DB
}

// Load implements Source
func (s DBSource) Load() (*Documents, error) {
	if s.DB == nil {
		return nil, fmt.Errorf("database is required")
	}

	var rows []models.CopyDocument
	if err := s.DB.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query copy documents: %w", err)
	}

	docs := NewDocuments()
	for _, row := range rows {
		l := locale.Locale(row.Locale)
		switch row.Kind {
		case models.KindPage:
			var p PageCopy
			if err := json.Unmarshal([]byte(row.Body), &p); err != nil {
				return nil, fmt.Errorf("failed to parse page %s/%s: %w", row.Locale, row.PageID, err)
			}
			docs.AddPage(l, row.PageID, p)
		case models.KindLegal:
			var p LegalPageCopy
			if err := json.Unmarshal([]byte(row.Body), &p); err != nil {
				return nil, fmt.Errorf("failed to parse legal page %s/%s: %w", row.Locale, row.PageID, err)
			}
			docs.AddLegal(l, row.PageID, p)
		default:
			return nil, fmt.Errorf("unknown copy document kind %q for %s/%s", row.Kind, row.Locale, row.PageID)
		}
	}
	return docs, nil
}

// Import writes docs into the database, replacing rows with the same key.
// It returns the number of documents written.
func Import(db *gorm.DB, docs *Documents) (int, error) {
	var rows []models.CopyDocument

	for _, l := range sortedLocales(docs.Pages) {
		for _, id := range sortedKeys(docs.Pages[l]) {
			body, err := json.Marshal(docs.Pages[l][id])
			if err != nil {
				return 0, fmt.Errorf("failed to encode page %s/%s: %w", l, id, err)
			}
			rows = append(rows, models.CopyDocument{Locale: string(l), Kind: models.KindPage, PageID: id, Body: string(body)})
		}
	}
	for _, l := range sortedLocales(docs.Legal) {
		for _, id := range sortedKeys(docs.Legal[l]) {
			body, err := json.Marshal(docs.Legal[l][id])
			if err != nil {
				return 0, fmt.Errorf("failed to encode legal page %s/%s: %w", l, id, err)
			}
			rows = append(rows, models.CopyDocument{Locale: string(l), Kind: models.KindLegal, PageID: id, Body: string(body)})
		}
	}

	if len(rows) == 0 {
		return 0, nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "locale"}, {Name: "kind"}, {Name: "page_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
		}).Create(&rows).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to import copy documents: %w", err)
	}
	return len(rows), nil
}

func sortedLocales[V any](m map[locale.Locale]V) []locale.Locale {
	out := make([]locale.Locale, 0, len(m))
	for l := range m {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
