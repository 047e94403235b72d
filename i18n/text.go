// Package i18n resolves bilingual (English/Arabic) values stored in catalog
// documents down to a single requested language.
package i18n

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Language tags understood by the storefront.
const (
	EN = "en"
	AR = "ar"

	// DefaultLang is used when a request carries no usable language.
	DefaultLang = AR
)

// ErrEmptyText is returned when a required bilingual field has neither language populated.
var ErrEmptyText = errors.New("i18n: at least one of en/ar is required")

// Text is a value stored in both languages. It is stored and serialized as {"en": "...", "ar": "..."}.
type Text struct {
	EN string `bson:"en" json:"en"`
	AR string `bson:"ar" json:"ar"`
}

// NewText trims both members.
func NewText(en, ar string) Text {
	return Text{EN: strings.TrimSpace(en), AR: strings.TrimSpace(ar)}
}

// Empty reports whether neither language is populated.
func (t Text) Empty() bool {
	return strings.TrimSpace(t.EN) == "" && strings.TrimSpace(t.AR) == ""
}

// Validate is the write-time check. Optional fields (descriptions) may be fully empty.
func (t Text) Validate(required bool) error {
	if required && t.Empty() {
		return ErrEmptyText
	}
	return nil
}

// Resolve returns the requested language, falling back to English and then Arabic.
func (t Text) Resolve(lang string) string {
	return pick(lookupString(t, lang), t.EN, t.AR)
}

// Resolve flattens a bilingual value to lang. The fallback chain is fixed:
// requested language, then "en", then "ar", then "". Anything that is not
// bilingual is returned unchanged.
func Resolve(value any, lang string) any {
	if !IsBilingual(value) {
		return value
	}
	return pick(member(value, lang), member(value, EN), member(value, AR))
}

// IsBilingual reports whether value is a two-language pair: a Text, or an
// object exposing an "en" or "ar" key. Arrays, scalars and the store's
// identifier and date types are never bilingual.
func IsBilingual(value any) bool {
	switch v := value.(type) {
	case Text:
		return true
	case *Text:
		return v != nil
	case nil, primitive.ObjectID, *primitive.ObjectID, primitive.DateTime, time.Time, *time.Time:
		return false
	case map[string]any:
		return hasLangKey(func(k string) bool { _, ok := v[k]; return ok })
	case primitive.M:
		return hasLangKey(func(k string) bool { _, ok := v[k]; return ok })
	case primitive.D:
		return hasLangKey(func(k string) bool {
			for _, e := range v {
				if e.Key == k {
					return true
				}
			}
			return false
		})
	}
	return false
}

func hasLangKey(has func(string) bool) bool {
	return has(EN) || has(AR)
}

// member reads one language out of a bilingual value. Non-string members count as empty.
func member(value any, lang string) string {
	switch v := value.(type) {
	case Text:
		return lookupString(v, lang)
	case *Text:
		return lookupString(*v, lang)
	case map[string]any:
		s, _ := v[lang].(string)
		return s
	case primitive.M:
		s, _ := v[lang].(string)
		return s
	case primitive.D:
		for _, e := range v {
			if e.Key == lang {
				s, _ := e.Value.(string)
				return s
			}
		}
	}
	return ""
}

func lookupString(t Text, lang string) string {
	switch lang {
	case EN:
		return t.EN
	case AR:
		return t.AR
	}
	return ""
}

func pick(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// ParseLang extracts a supported language from a raw header or query value
// such as "en-US,en;q=0.9". ok is false when nothing supported is found.
func ParseLang(raw string) (lang string, ok bool) {
	for _, part := range strings.Split(raw, ",") {
		tag := strings.TrimSpace(part)
		if i := strings.IndexByte(tag, ';'); i >= 0 {
			tag = tag[:i]
		}
		if i := strings.IndexAny(tag, "-_"); i >= 0 {
			tag = tag[:i]
		}
		switch strings.ToLower(tag) {
		case EN:
			return EN, true
		case AR:
			return AR, true
		}
	}
	return "", false
}
