package language

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/language"
)

var (
	errHeaderNotText = errors.New("accept-language header is not valid UTF-8")
	errWeightRange   = errors.New("accept-language quality weight above 1")
)

// Preference is one weighted entry of an Accept-Language header.
type Preference struct {
	Tag     language.Tag
	Quality float32
}

// ParsePreferences splits a raw Accept-Language value into preferences ordered
// by descending quality. Entries with equal quality keep header order and
// entries with q=0 are dropped. A weight above 1 makes the header invalid.
func ParsePreferences(header string) ([]Preference, error) {
	if !utf8.ValidString(header) {
		return nil, errHeaderNotText
	}
	header = strings.TrimSpace(header)
	if header == "" {
		return nil, nil
	}

	tags, weights, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return nil, fmt.Errorf("parse accept-language %q: %w", header, err)
	}

	prefs := make([]Preference, 0, len(tags))
	for i, tag := range tags {
		if weights[i] > 1 {
			return nil, fmt.Errorf("parse accept-language %q: %w", header, errWeightRange)
		}
		prefs = append(prefs, Preference{Tag: tag, Quality: weights[i]})
	}
	return prefs, nil
}

// Resolve picks the response language. A supported lang query value wins
// outright; anything else falls through to Accept-Language negotiation and
// finally to Default. Resolve never fails.
func Resolve(queryLang, acceptLanguage string) Language {
	if lang, ok := FromCode(queryLang); ok {
		return lang
	}

	prefs, err := ParsePreferences(acceptLanguage)
	if err != nil {
		return Default
	}
	if matched := Intersect(prefs); len(matched) > 0 {
		return matched[0]
	}
	return Default
}

// Intersect returns the supported languages named by prefs, in preference
// order and without duplicates. Region and script subtags are ignored, so
// "es-MX" counts as Spanish; wildcards never match.
func Intersect(prefs []Preference) []Language {
	var (
		matched []Language
		seen    = make(map[Language]struct{}, len(all))
	)
	for _, pref := range prefs {
		// Matched on the primary subtag: "pt-BR" is Portuguese.
		lang, ok := FromCode(primaryCode(pref.Tag))
		if !ok {
			continue
		}
		if _, dup := seen[lang]; dup {
			continue
		}
		seen[lang] = struct{}{}
		matched = append(matched, lang)
	}
	return matched
}

func primaryCode(tag language.Tag) string {
	base, confidence := tag.Base()
	if confidence != language.Exact {
		return ""
	}
	return base.String()
}
