// SPDX-License-Identifier: MIT
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale is one of the two supported content languages.
type Locale string

const (
	English Locale = "en"
	German  Locale = "de"
)

// Default is the locale assumed when nothing better is known.
const Default = English

var (
	supportedTags = []language.Tag{language.English, language.German}
	matcher       = language.NewMatcher(supportedTags)
)

// All returns the supported locales in display order
func All() []Locale {
	return []Locale{English, German}
}

// Parse narrows a raw string to a supported locale
func Parse(raw string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(raw))) {
	case English:
		return English, true
	case German:
		return German, true
	}
	return "", false
}

// Valid reports whether l is one of the supported locales
func (l Locale) Valid() bool {
	_, ok := Parse(string(l))
	return ok
}

// Opposite returns the other supported locale. Unknown values count as English.
func Opposite(l Locale) Locale {
	if l == German {
		return English
	}
	return German
}

// HTMLLang returns the value for the html lang attribute
func (l Locale) HTMLLang() string {
	if l == German {
		return "de-DE"
	}
	return "en-US"
}

// DisplayName returns the English name of the language
func (l Locale) DisplayName() string {
	if l == German {
		return "German"
	}
	return "English"
}

func (l Locale) String() string {
	return string(l)
}

// Negotiate picks the best supported locale for an Accept-Language header.
func Negotiate(acceptLanguage string) Locale {
	if strings.TrimSpace(acceptLanguage) == "" {
		return Default
	}
	tag, _ := language.MatchStrings(matcher, acceptLanguage)
	base, _ := tag.Base()
	if l, ok := Parse(base.String()); ok {
		return l
	}
	return Default
}
