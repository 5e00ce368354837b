package locale_test

import (
	"os"
	"testing"

	"github.com/aretw0/labelwiz/internal/locale"
	"github.com/aretw0/labelwiz/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLanguages(t *testing.T) {
	assert.Equal(t, []string{"en", "zh"}, locale.Languages())
	assert.True(t, locale.Supported("zh"))
	assert.False(t, locale.Supported("fr"))
}

func TestCatalog_Format(t *testing.T) {
	c, err := locale.New("en")
	require.NoError(t, err)

	assert.Equal(t, "Record 3 of 10", c.Format(domain.Msg("record_num", 3, 10)))
	assert.Equal(t, "Yes", c.Get("yes"))
	assert.Equal(t, "no_such_key", c.Get("no_such_key"))
}

func TestCatalog_Chinese(t *testing.T) {
	c, err := locale.New("zh")
	require.NoError(t, err)

	assert.Equal(t, "zh", c.Language())
	assert.Equal(t, "第 2 条，共 5 条", c.Sprintf("record_num", 2, 5))
}

func TestNew_Unsupported(t *testing.T) {
	_, err := locale.New("xx")
	assert.Error(t, err)
}

// Every language must define the same keys as English.
func TestTables_SameKeys(t *testing.T) {
	load := func(lang string) map[string]string {
		data, err := os.ReadFile("strings_" + lang + ".yaml")
		require.NoError(t, err)
		out := map[string]string{}
		require.NoError(t, yaml.Unmarshal(data, &out))
		return out
	}

	en := load("en")
	for _, lang := range locale.Languages() {
		table := load(lang)
		for key := range en {
			assert.Contains(t, table, key, "language %s misses %s", lang, key)
		}
	}
}
