// Package lang provides the message catalogs and localized-name resolution
// the narrator routes all user-facing phrasing through. Two languages are
// supported: English ("en") and Vietnamese ("vi"). Missing keys fall back to
// English, then to the key itself so a narration path never returns nothing.
// See DESIGN.md Section 4.
package lang

import (
	"log/slog"
	"strings"
)

// Default is the reference language. Entity-presence conditions compare
// against names resolved in this language so eligibility is locale-independent.
const Default = "en"

// Text is a localized string value keyed by language code.
type Text map[string]string

// Resolve returns the value for the requested language, falling back to the
// reference language and then to any defined value.
func (t Text) Resolve(language string) string {
	if v, ok := t[language]; ok && v != "" {
		return v
	}
	if v, ok := t[Default]; ok && v != "" {
		return v
	}
	for _, v := range t {
		if v != "" {
			return v
		}
	}
	return ""
}

// Catalog is an immutable message catalog for one or more languages.
type Catalog struct {
	messages map[string]map[string]string // language → key → phrase
}

// NewCatalog returns the built-in catalog carrying the en and vi tables.
func NewCatalog() *Catalog {
	return &Catalog{messages: map[string]map[string]string{
		"en": messagesEN,
		"vi": messagesVI,
	}}
}

// Translate looks up key in the given language and substitutes {name}
// replacement markers. Unknown keys degrade to the English table, then to
// the key itself, with a logged warning — never an error.
func (c *Catalog) Translate(language, key string, repl map[string]string) string {
	phrase, ok := c.lookup(language, key)
	if !ok {
		slog.Warn("missing catalog key", "language", language, "key", key)
		phrase = key
	}
	for name, value := range repl {
		phrase = strings.ReplaceAll(phrase, "{"+name+"}", value)
	}
	return phrase
}

// Func returns a translate function bound to a language, matching the
// collaborator contract the narrative package expects.
func (c *Catalog) Func(language string) func(key string, repl map[string]string) string {
	return func(key string, repl map[string]string) string {
		return c.Translate(language, key, repl)
	}
}

func (c *Catalog) lookup(language, key string) (string, bool) {
	if table, ok := c.messages[language]; ok {
		if phrase, ok := table[key]; ok {
			return phrase, true
		}
	}
	if language != Default {
		if phrase, ok := c.messages[Default][key]; ok {
			return phrase, true
		}
	}
	return "", false
}
