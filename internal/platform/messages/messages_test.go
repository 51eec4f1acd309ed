package messages_test

import (
	"testing"
	"testing/fstest"

	"github.com/SscSPs/md_util/internal/platform/messages"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestDefault_English(t *testing.T) {
	b := messages.Default("en-US")

	assert.Equal(t, language.English, b.Locale())
	assert.Equal(t,
		"Changed security Apple (AAPL) current price from $1.00000000 to $2.00000000.",
		b.Format("price.changed", "Apple", "AAPL", "$1.00000000", "$2.00000000"))
}

func TestDefault_German(t *testing.T) {
	b := messages.Default("de-DE")

	assert.Equal(t, "de", b.Locale().String())
	assert.Contains(t, b.Format("price.changed", "Apple", "AAPL", "1", "2"), "Wertpapier Apple (AAPL)")
}

func TestDefault_UnknownLocaleUsesBase(t *testing.T) {
	for _, locale := range []string{"ja-JP", "not a locale", ""} {
		b := messages.Default(locale)
		assert.Equal(t, language.English, b.Locale(), locale)
		assert.Equal(t, "Security A (B) price is 3.", b.Format("security.reconciled", "A", "B", 3))
	}
}

func TestBundle_MissingKeyReturnsKey(t *testing.T) {
	b := messages.Default("en")
	assert.Equal(t, "no.such.key", b.Message("no.such.key"))
}

func TestLoad_CustomFS(t *testing.T) {
	fsys := fstest.MapFS{
		"i18n/app.properties":    {Data: []byte("greeting=Hello {0}\n")},
		"i18n/app_fr.properties": {Data: []byte("greeting=Bonjour {0}\n")},
	}

	assert.Equal(t, "Bonjour Ada", messages.Load(fsys, "i18n/app", "fr-CA").Format("greeting", "Ada"))
	assert.Equal(t, "Hello Ada", messages.Load(fsys, "i18n/app", "de").Format("greeting", "Ada"))
}

func TestLoad_NoBundleFallsBack(t *testing.T) {
	b := messages.Load(fstest.MapFS{}, "i18n/missing", "en")

	assert.Equal(t, language.Und, b.Locale())
	assert.Equal(t, "price.changed", b.Message("price.changed"))
	assert.Equal(t, "price.changed", b.Format("price.changed", "x"))
}

func TestFallback_FormatsPlaceholdersInKey(t *testing.T) {
	assert.Equal(t, "a-b", messages.Fallback().Format("{0}-{1}", "a", "b"))
}
