package wizard

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when the client leaves the language empty.
const DefaultLanguage = "en"

var (
	supportedLanguages = []language.Tag{language.English, language.French, language.Chinese}
	languageMatcher    = language.NewMatcher(supportedLanguages)
)

// MatchLanguage maps a BCP 47 tag to the supported language it best matches.
// ok is false when the tag does not parse or matches nothing supported.
func MatchLanguage(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultLanguage, true
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", false
	}
	_, idx, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return "", false
	}
	return supportedLanguages[idx].String(), true
}
