package lang

import (
	"strings"
	"testing"
)

func TestTextResolve(t *testing.T) {
	t.Parallel()

	text := Text{"en": "wild berries", "vi": "quả mọng dại"}
	if got := text.Resolve("vi"); got != "quả mọng dại" {
		t.Errorf("vi = %q", got)
	}
	if got := text.Resolve("de"); got != "wild berries" {
		t.Errorf("unknown language should fall back to en, got %q", got)
	}

	onlyVi := Text{"vi": "chỉ tiếng Việt"}
	if got := onlyVi.Resolve("en"); got != "chỉ tiếng Việt" {
		t.Errorf("single-entry text should resolve to its only value, got %q", got)
	}
}

func TestCatalogTranslate_Replacements(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	got := c.Translate("en", "attackDamage", map[string]string{"damage": "7"})
	if !strings.Contains(got, "7") {
		t.Errorf("replacement not applied: %q", got)
	}
	if strings.Contains(got, "{damage}") {
		t.Errorf("marker left in: %q", got)
	}
}

func TestCatalogTranslate_LanguageFallback(t *testing.T) {
	t.Parallel()

	c := NewCatalog()

	vi := c.Translate("vi", "exploreFoundNothing", nil)
	en := c.Translate("en", "exploreFoundNothing", nil)
	if vi == en {
		t.Error("vi phrase should differ from en")
	}

	// Unknown languages read the English table.
	if got := c.Translate("de", "exploreFoundNothing", nil); got != en {
		t.Errorf("de = %q, want en fallback %q", got, en)
	}
}

func TestCatalogTranslate_MissingKeyReturnsKey(t *testing.T) {
	t.Parallel()

	c := NewCatalog()
	if got := c.Translate("en", "noSuchKey", nil); got != "noSuchKey" {
		t.Errorf("got %q, want the key itself", got)
	}
}

func TestCatalog_ViCoversEveryEnglishKey(t *testing.T) {
	t.Parallel()

	for key := range messagesEN {
		if _, ok := messagesVI[key]; !ok {
			t.Errorf("vi catalog missing %q", key)
		}
	}
}
