package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	uu := map[string]struct {
		in string
		e  language.Tag
	}{
		"empty":    {in: "", e: language.English},
		"garbage":  {in: "!!", e: language.English},
		"es":       {in: "es", e: language.Spanish},
		"es-MX":    {in: "es-MX", e: language.Spanish},
		"accept":   {in: "fr-CH, es;q=0.9, en;q=0.8", e: language.Spanish},
		"en-GB":    {in: "en-GB", e: language.English},
		"fallback": {in: "ja", e: language.English},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, Match(u.in))
		})
	}
}

func TestLabels(t *testing.T) {
	en, err := Load("en")
	require.NoError(t, err)
	es, err := Load("es-ES")
	require.NoError(t, err)

	assert.Equal(t, language.Spanish, es.Tag())
	assert.Equal(t, "Asset", en.T("col.asset"))
	assert.Equal(t, "Activo", es.T("col.asset"))
	assert.Equal(t, "no.such.key", es.T("no.such.key"))
	assert.Equal(t, "Showing 1–10 of 1,234", en.Tf("pager.showing", 1, 10, 1234))
	assert.Equal(t, "Mostrando 1–10 de 23", es.Tf("pager.showing", 1, 10, 23))
}

func TestLocalesComplete(t *testing.T) {
	en, err := readTable(language.English)
	require.NoError(t, err)
	es, err := readTable(language.Spanish)
	require.NoError(t, err)

	for k := range en {
		assert.Contains(t, es, k)
	}
	assert.Len(t, es, len(en))
}

func TestOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.ini")
	require.NoError(t, os.WriteFile(path, []byte(`
col.asset = Tag

[es]
col.name = Denominación

[en]
col.name = Label
`), 0o600))

	es, err := Load("es")
	require.NoError(t, err)
	require.NoError(t, es.Override(path))

	assert.Equal(t, "Tag", es.T("col.asset"))
	assert.Equal(t, "Denominación", es.T("col.name"))
	assert.Equal(t, "Estado", es.T("col.status"))

	assert.Error(t, es.Override(filepath.Join(t.TempDir(), "missing.ini")))
}
