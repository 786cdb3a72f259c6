package intl

import (
	"golang.org/x/text/language"
)

type SupportedLanguage struct {
	Code        string
	VerboseName string
	Tag         language.Tag
}

// allSupportedLanguages is the master list of languages the console ships locales for.
var allSupportedLanguages = []SupportedLanguage{
	{
		Code:        "en",
		VerboseName: "English",
		Tag:         language.English,
	},
	{
		Code:        "zh",
		VerboseName: "中文",
		Tag:         language.Chinese,
	},
}

// GetSupportedLanguages returns the languages whose code is in whitelist.
// An empty whitelist returns every language.
func GetSupportedLanguages(whitelist []string) []SupportedLanguage {
	if len(whitelist) == 0 {
		return allSupportedLanguages
	}

	allowed := make(map[string]bool, len(whitelist))
	for _, code := range whitelist {
		allowed[code] = true
	}

	filtered := make([]SupportedLanguage, 0, len(whitelist))
	for _, lang := range allSupportedLanguages {
		if allowed[lang.Code] {
			filtered = append(filtered, lang)
		}
	}
	return filtered
}
