// Package i18n provides the user-facing strings in English and Polish.
package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Language selects the translation set for user-facing strings.
type Language int

const (
	English Language = iota
	Polish
)

func (l Language) String() string {
	if l == Polish {
		return "pl"
	}
	return "en"
}

// supported lists the languages with translations. English is first so
// it wins as the fallback.
var supported = []language.Tag{
	language.English,
	language.Polish,
}

var matcher = language.NewMatcher(supported)

// Detect picks the language from an explicit override when given,
// otherwise from the usual locale environment variables.
func Detect(override string) Language {
	if override != "" {
		if lang, ok := match(override); ok {
			return lang
		}
	}
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if lang, ok := match(os.Getenv(key)); ok {
			return lang
		}
	}
	return English
}

func match(locale string) (Language, bool) {
	locale = strings.TrimSpace(locale)
	if locale == "" || locale == "C" || locale == "POSIX" {
		return English, false
	}

	// Locale values look like "pl_PL.UTF-8"; BCP 47 wants "pl-PL".
	locale = strings.SplitN(locale, ".", 2)[0]
	locale = strings.ReplaceAll(locale, "_", "-")

	tag, err := language.Parse(locale)
	if err != nil {
		return English, false
	}

	_, idx, _ := matcher.Match(tag)
	if supported[idx] == language.Polish {
		return Polish, true
	}
	return English, true
}
