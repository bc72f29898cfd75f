// Package i18n provides string translation for the UI. Lookup never fails:
// an unresolved key is returned verbatim so a missing message degrades to
// something greppable instead of an error.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// supported lists the bundled locales. The first entry is the fallback.
var supported = []language.Tag{
	language.AmericanEnglish,
	language.BrazilianPortuguese,
}

var matcher = language.NewMatcher(supported)

// Translator resolves message keys for one negotiated locale.
type Translator struct {
	tag      language.Tag
	messages map[string]string
	fallback map[string]string
}

// New negotiates the closest supported locale for the given BCP 47 tag and
// returns a translator for it. An unparseable or unknown tag falls back to
// English.
func New(locale string) *Translator {
	desired, err := language.Parse(locale)
	if err != nil {
		desired = supported[0]
	}
	tag, _, _ := matcher.Match(desired)

	base := tag.String()
	msgs, ok := bundles[base]
	if !ok {
		// Matcher can return a more specific tag than the bundle key;
		// walk up to the parent.
		for t := tag; t != language.Und; t = t.Parent() {
			if m, found := bundles[t.String()]; found {
				msgs, ok = m, true
				break
			}
		}
	}
	if !ok {
		msgs = bundles[supported[0].String()]
	}

	return &Translator{
		tag:      tag,
		messages: msgs,
		fallback: bundles[supported[0].String()],
	}
}

// Locale returns the negotiated locale tag.
func (t *Translator) Locale() string {
	return t.tag.String()
}

// T resolves a message key, falling back to English and then to the key
// itself. A nil translator is a wiring defect and panics immediately.
func (t *Translator) T(key string) string {
	if t == nil {
		panic("i18n: Translator used before construction")
	}
	if msg, ok := t.messages[key]; ok {
		return msg
	}
	if msg, ok := t.fallback[key]; ok {
		return msg
	}
	return key
}

// Tf resolves a key and formats it with the given arguments.
func (t *Translator) Tf(key string, args ...any) string {
	return fmt.Sprintf(t.T(key), args...)
}

// SupportedLocales returns the bundled locale tags in preference order.
func SupportedLocales() []string {
	out := make([]string, len(supported))
	for i, tag := range supported {
		out[i] = tag.String()
	}
	return out
}
