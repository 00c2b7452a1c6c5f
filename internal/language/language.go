// Package language resolves the language a page is rendered in from the
// request's explicit lang parameter and its Accept-Language header.
package language

import "golang.org/x/text/language"

// Language is one of the closed set of languages the site is published in.
type Language int

const (
	English Language = iota
	Spanish
	Portuguese
)

// Default is returned whenever negotiation yields nothing usable.
const Default = English

var all = []Language{English, Spanish, Portuguese}

var codes = map[Language]string{
	English:    "en",
	Spanish:    "es",
	Portuguese: "pt",
}

var tags = map[Language]language.Tag{
	English:    language.English,
	Spanish:    language.Spanish,
	Portuguese: language.Portuguese,
}

// Supported returns every supported language, default first.
func Supported() []Language {
	out := make([]Language, len(all))
	copy(out, all)
	return out
}

// Code returns the canonical short code ("en", "es", "pt").
func (l Language) Code() string {
	if code, ok := codes[l]; ok {
		return code
	}
	return codes[Default]
}

// Tag returns the BCP 47 tag for the language.
func (l Language) Tag() language.Tag {
	if tag, ok := tags[l]; ok {
		return tag
	}
	return tags[Default]
}

func (l Language) String() string {
	return l.Code()
}

// FromCode maps an exact short code onto a supported language.
// Matching is case-sensitive: "ES" is not a supported code.
func FromCode(code string) (Language, bool) {
	for _, l := range all {
		if codes[l] == code {
			return l, true
		}
	}
	return Default, false
}
