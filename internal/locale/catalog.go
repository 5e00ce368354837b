// Package locale provides the string tables used to present the wizard.
//
// Tables are embedded YAML files keyed by message identifier. Lookups fall
// back to English and finally to the key itself, so a missing translation
// never breaks the flow.
package locale

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/labelwiz/pkg/domain"
	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used when no language is chosen.
const DefaultLanguage = "en"

//go:embed strings_*.yaml
var tables embed.FS

// Catalog resolves message keys for one language.
type Catalog struct {
	lang     string
	strings  map[string]string
	fallback map[string]string
}

// Languages returns the codes of the embedded tables, sorted.
func Languages() []string {
	entries, err := tables.ReadDir(".")
	if err != nil {
		return []string{DefaultLanguage}
	}
	var langs []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, "strings_") && strings.HasSuffix(name, ".yaml") {
			langs = append(langs, strings.TrimSuffix(strings.TrimPrefix(name, "strings_"), ".yaml"))
		}
	}
	sort.Strings(langs)
	return langs
}

// Supported reports whether lang has a string table.
func Supported(lang string) bool {
	for _, l := range Languages() {
		if l == lang {
			return true
		}
	}
	return false
}

// New loads the catalog for lang.
func New(lang string) (*Catalog, error) {
	if !Supported(lang) {
		return nil, fmt.Errorf("unsupported language %q", lang)
	}
	primary, err := loadTable(lang)
	if err != nil {
		return nil, err
	}
	c := &Catalog{lang: lang, strings: primary}
	if lang != DefaultLanguage {
		c.fallback, err = loadTable(DefaultLanguage)
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// MustNew is like New but panics; for the embedded default language only.
func MustNew(lang string) *Catalog {
	c, err := New(lang)
	if err != nil {
		panic(err)
	}
	return c
}

func loadTable(lang string) (map[string]string, error) {
	data, err := tables.ReadFile("strings_" + lang + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read string table %q: %w", lang, err)
	}
	out := make(map[string]string)
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse string table %q: %w", lang, err)
	}
	return out, nil
}

// Language returns the catalog's language code.
func (c *Catalog) Language() string { return c.lang }

// Get returns the text for key.
func (c *Catalog) Get(key string) string {
	if s, ok := c.strings[key]; ok {
		return s
	}
	if s, ok := c.fallback[key]; ok {
		return s
	}
	return key
}

// Format renders a message, applying its arguments.
func (c *Catalog) Format(msg domain.Message) string {
	text := c.Get(msg.Key)
	if len(msg.Args) == 0 {
		return text
	}
	return fmt.Sprintf(text, msg.Args...)
}

// Sprintf is shorthand for Format(domain.Msg(key, args...)).
func (c *Catalog) Sprintf(key string, args ...any) string {
	return c.Format(domain.Msg(key, args...))
}
