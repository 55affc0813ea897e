package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManifestShape(t *testing.T) {
	m := Default()

	assert.Len(t, m.Bilka, 27)
	assert.Len(t, m.Rema, 27)
	assert.Len(t, m.Spar, 27)
	assert.Equal(t, 81, m.Len())
}

// Every identifier must appear once per store so prices can be grouped
// across retailers.
func TestDefaultManifestIdentifiersAlign(t *testing.T) {
	m := Default()

	bilka := map[string]bool{}
	for _, target := range m.Bilka {
		assert.False(t, bilka[target.Identifier], "duplicate identifier %q", target.Identifier)
		bilka[target.Identifier] = true
	}
	for _, target := range m.Rema {
		assert.True(t, bilka[target.Identifier], "Rema identifier %q missing from Bilka", target.Identifier)
	}
	for _, target := range m.Spar {
		assert.True(t, bilka[target.Identifier], "Spar identifier %q missing from Bilka", target.Identifier)
	}
}

func TestDefaultManifestURLsMatchStores(t *testing.T) {
	m := Default()

	for _, target := range m.Bilka {
		assert.Contains(t, target.URL, "bilkatogo.dk")
	}
	for _, target := range m.Rema {
		assert.Contains(t, target.URL, "rema1000.dk")
	}
	for _, target := range m.Spar {
		assert.Contains(t, target.URL, "spar.dk")
	}
}

func TestTargetsOrderedRetailerByRetailer(t *testing.T) {
	m := Default()
	targets := m.Targets()

	require.Len(t, targets, 81)
	assert.Contains(t, targets[0].URL, "bilkatogo.dk")
	assert.Contains(t, targets[27].URL, "rema1000.dk")
	assert.Contains(t, targets[54].URL, "spar.dk")
	assert.Equal(t, "Banan", targets[0].Identifier)
	assert.Equal(t, "Banan", targets[27].Identifier)
	assert.Equal(t, "Banan", targets[54].Identifier)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manifest.json")
	content := `{
		"bilka": [{"url": "https://www.bilkatogo.dk/produkt/bananer/18381/", "identifier": "Banan"}],
		"rema1000": [{"url": "https://shop.rema1000.dk/varer/304000", "identifier": "Banan"}],
		"spar": []
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, "Banan", m.Bilka[0].Identifier)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "parse"))
}
