package translate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	tr := Identity()
	assert.Equal(t, "Create StartEvent", tr.Translate("Create StartEvent", nil))
	assert.Equal(t, "Create CallActivity", tr.Translate("Create {type}", map[string]string{"type": "CallActivity"}))
	assert.Equal(t, "Create {type}", tr.Translate("Create {type}", map[string]string{"other": "x"}))
}

func TestT(t *testing.T) {
	assert.Equal(t, "General", T(nil, "General"))
	assert.Equal(t, "General", T(Identity(), "General"))
}

func TestCatalog(t *testing.T) {
	doc := `
de:
  General: Allgemein
  "Create {type}": "{type} erstellen"
fr:
  General: Général
`
	c := NewCatalog()
	require.NoError(t, c.Load(strings.NewReader(doc)))
	assert.ElementsMatch(t, []string{"de", "fr"}, c.Locales())

	de := c.Translator("de")
	assert.Equal(t, "Allgemein", T(de, "General"))
	assert.Equal(t, "Name", T(de, "Name"))
	assert.Equal(t, "Task erstellen", de.Translate("Create {type}", map[string]string{"type": "Task"}))

	unknown := c.Translator("es")
	assert.Equal(t, "General", T(unknown, "General"))
}

func TestCatalogLoadInvalid(t *testing.T) {
	c := NewCatalog()
	assert.Error(t, c.Load(strings.NewReader("- not\n- a map\n")))
}

func TestCatalogZeroValue(t *testing.T) {
	var c Catalog
	assert.Equal(t, "General", c.Translator("de").Translate("General", nil))

	c.Add("de", map[string]string{"General": "Allgemein"})
	assert.Equal(t, "Allgemein", c.Translator("de").Translate("General", nil))
	assert.Equal(t, []string{"de"}, c.Locales())
}
