// Package textid provides translatable identifiers for properties and
// settings.
//
// A TextId pairs a stable machine key, used for persistence and lookup, with a
// translation context. Translations are registered into a package-level bundle
// and resolved per language; a missing translation falls back to the machine
// key so untranslated identifiers stay usable.
package textid

import (
	"strings"

	"propkit/internal/utils"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// TextId is a machine key scoped by a translation context.
type TextId struct {
	Context string
	Key     string
}

// New returns a TextId with the given translation context and machine key.
func New(context, key string) TextId {
	return TextId{Context: context, Key: key}
}

// MessageID returns the bundle message ID: "context.key", or the bare key
// when the context is empty.
func (t TextId) MessageID() string {
	if t.Context == "" {
		return t.Key
	}
	return t.Context + "." + t.Key
}

// IsEmpty reports whether the TextId carries no key.
func (t TextId) IsEmpty() bool {
	return t.Key == ""
}

var (
	bundle      = i18n.NewBundle(language.English)
	defaultLang = language.English
)

// RegisterMessages adds translations for a language. Keys are message IDs as
// produced by TextId.MessageID.
func RegisterMessages(lang language.Tag, messages map[string]string) {
	for id, msg := range messages {
		bundle.AddMessages(lang, &i18n.Message{
			ID:    id,
			Other: msg,
		})
	}
}

// SetDefaultLanguage sets the language Tr falls back to when called without
// explicit languages.
func SetDefaultLanguage(tag language.Tag) {
	defaultLang = tag
}

// DefaultLanguage returns the current default language.
func DefaultLanguage() language.Tag {
	return defaultLang
}

// Tr localizes the TextId for the given languages, most preferred first. The
// default language is always consulted last. If no translation is registered,
// the machine key is returned unchanged.
func Tr(id TextId, langs ...string) string {
	if id.IsEmpty() {
		return ""
	}

	localizer := i18n.NewLocalizer(bundle, append(langs, defaultLang.String())...)
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID: id.MessageID(),
	})
	if err != nil {
		// No translation registered, fall back to the machine key
		return id.Key
	}

	return msg
}

// PlatformLanguage derives a language tag from the process environment,
// checking LC_ALL, LC_MESSAGES and LANG in that order. Values such as
// "en_US.UTF-8" are normalized before parsing. English is returned when
// nothing usable is set.
func PlatformLanguage() language.Tag {
	raw := utils.FirstEnv("", "LC_ALL", "LC_MESSAGES", "LANG")
	if raw == "" || raw == "C" || raw == "POSIX" {
		return language.English
	}

	// Strip charset and modifier suffixes ("en_US.UTF-8@euro" -> "en_US")
	if idx := strings.IndexAny(raw, ".@"); idx > 0 {
		raw = raw[:idx]
	}
	raw = strings.ReplaceAll(raw, "_", "-")

	tag, err := language.Parse(raw)
	if err != nil {
		return language.English
	}
	return tag
}
