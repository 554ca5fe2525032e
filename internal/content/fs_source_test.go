// SPDX-License-Identifier: MIT
package content

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/lpsite/internal/locale"
)

const yamlPages = `
example-lp:
  hero:
    title: Hallo
    subtitle: Untertitel
    primaryCtaLabel: Los
  socialProof:
    label: Kunden
  valueProps:
    heading: Warum
    items:
      - title: Schnell
        body: Eine Woche
        iconKey: delivery
  features:
    heading: Was
  finalCta:
    heading: Jetzt
    ctaLabel: Los
  faq:
    heading: Fragen
    items:
      - question: Wie?
        answer: So.
`

func TestFSSourceReadsYAMLAndJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"pages/de.yaml": {Data: []byte(yamlPages)},
		"legal/en.json": {Data: []byte(`{"privacy":{"title":"Privacy","content":{"sections":[{"paragraphs":["p"]}]}}}`)},
	}

	docs, err := FSSource{FS: fsys}.Load()
	require.NoError(t, err)

	page := docs.Pages[locale.German][PageExample]
	assert.Equal(t, "Hallo", page.Hero.Title)
	assert.Equal(t, "delivery", page.ValueProps.Items[0].IconKey)
	require.NotNil(t, page.FAQ)
	assert.Equal(t, "So.", page.FAQ.Items[0].Answer)
	assert.Nil(t, page.Pricing)

	assert.Empty(t, docs.Pages[locale.English])
	assert.Equal(t, "Privacy", docs.Legal[locale.English][LegalPrivacy].Title)
}

func TestFSSourceReportsParseErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"pages/en.json": {Data: []byte(`{"example-lp":`)},
	}

	_, err := FSSource{FS: fsys}.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pages/en.json")
}

func TestFSSourcePrefersJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"legal/de.json": {Data: []byte(`{"impressum":{"title":"Impressum"}}`)},
		"legal/de.yml":  {Data: []byte("impressum:\n  title: Ignored\n")},
	}

	docs, err := FSSource{FS: fsys}.Load()
	require.NoError(t, err)
	assert.Equal(t, "Impressum", docs.Legal[locale.German][LegalImpressum].Title)
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pages"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pages", "de.yml"), []byte(yamlPages), 0644))

	repo, err := NewRepository(DirSource(dir), nil)
	require.NoError(t, err)

	page, ok := repo.LoadPageCopy(locale.German, PageExample)
	require.True(t, ok)
	assert.Equal(t, "Warum", page.ValueProps.Heading)

	_, ok = repo.LoadPageCopy(locale.English, PageExample)
	assert.False(t, ok)
}
