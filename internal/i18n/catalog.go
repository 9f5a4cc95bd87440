// Package i18n holds the localized message catalog. Messages are addressed
// by dotted keys such as "common.settings.saved".
package i18n

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const DefaultLocale = "en"

//go:embed locales/*.yaml
var localeFS embed.FS

// Catalog resolves message keys for one locale, falling back to English and
// finally to the key itself.
type Catalog struct {
	locale   string
	messages map[string]string
	fallback map[string]string
}

var (
	loadOnce sync.Once
	loaded   map[string]map[string]string
	loadErr  error
)

func loadAll() (map[string]map[string]string, error) {
	loadOnce.Do(func() {
		loaded = make(map[string]map[string]string)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			loadErr = fmt.Errorf("failed to read locales: %w", err)
			return
		}

		for _, e := range entries {
			name := e.Name()
			data, err := localeFS.ReadFile(path.Join("locales", name))
			if err != nil {
				loadErr = fmt.Errorf("failed to read locale %s: %w", name, err)
				return
			}

			messages, err := Parse(data)
			if err != nil {
				loadErr = fmt.Errorf("failed to parse locale %s: %w", name, err)
				return
			}
			loaded[strings.TrimSuffix(name, path.Ext(name))] = messages
		}
	})
	return loaded, loadErr
}

// Parse flattens a nested YAML document into dotted keys.
func Parse(data []byte) (map[string]string, error) {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, err
	}

	out := make(map[string]string)
	flatten("", tree, out)
	return out, nil
}

func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// New returns the catalog for locale. Region suffixes ("de-AT", "de_AT") are
// stripped; unknown locales get the English catalog.
func New(locale string) (*Catalog, error) {
	all, err := loadAll()
	if err != nil {
		return nil, err
	}

	base := normalize(locale)
	messages, ok := all[base]
	if !ok {
		base = DefaultLocale
		messages = all[DefaultLocale]
	}

	return &Catalog{
		locale:   base,
		messages: messages,
		fallback: all[DefaultLocale],
	}, nil
}

// MustNew is New for the embedded catalogs, which are known to parse.
func MustNew(locale string) *Catalog {
	c, err := New(locale)
	if err != nil {
		panic(err)
	}
	return c
}

func normalize(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "-_."); i >= 0 {
		locale = locale[:i]
	}
	if locale == "" {
		return DefaultLocale
	}
	return locale
}

func (c *Catalog) Locale() string {
	return c.locale
}

// T looks up key; extra args are applied with fmt.Sprintf.
func (c *Catalog) T(key string, args ...any) string {
	msg, ok := c.messages[key]
	if !ok {
		msg, ok = c.fallback[key]
	}
	if !ok {
		return key
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// Locales lists the embedded locales.
func Locales() []string {
	all, err := loadAll()
	if err != nil {
		return []string{DefaultLocale}
	}
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
