package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_English(t *testing.T) {
	c, err := New("en")
	require.NoError(t, err)

	assert.Equal(t, "en", c.Locale())
	assert.Equal(t, "Settings saved", c.T("common.settings.saved"))
	assert.Equal(t, "Failed to save settings", c.T("common.settings.failedToSave"))
	assert.Equal(t, "Settings page not found", c.T("pages.error.settingsNotFound"))
}

func TestCatalog_Fallbacks(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		key    string
		want   string
	}{
		{name: "translated", locale: "de", key: "common.settings.saved", want: "Einstellungen gespeichert"},
		{name: "region stripped", locale: "de-AT", key: "common.themes.dark", want: "Dunkel"},
		{name: "missing in locale uses english", locale: "de", key: "pages.settings.general.description", want: "Language, timezone and how messages are displayed."},
		{name: "unknown locale uses english", locale: "xx", key: "common.themes.light", want: "Light"},
		{name: "empty locale uses english", locale: "", key: "common.themes.system", want: "System"},
		{name: "unknown key returns key", locale: "en", key: "no.such.key", want: "no.such.key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := MustNew(tt.locale)
			assert.Equal(t, tt.want, c.T(tt.key))
		})
	}
}

func TestParse_FlattensNestedKeys(t *testing.T) {
	messages, err := Parse([]byte("a:\n  b:\n    c: hello\n  n: 3\n"))
	require.NoError(t, err)

	assert.Equal(t, "hello", messages["a.b.c"])
	assert.Equal(t, "3", messages["a.n"])
}

func TestLocales(t *testing.T) {
	assert.Equal(t, []string{"de", "en"}, Locales())
}
