package constants

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validate is the shared validator instance; it caches struct metadata.
var Validate = validator.New(validator.WithRequiredStructEnabled())

// Translator renders validator errors in English. Localized messages go
// through the i18n bundle; this is the fallback text.
var Translator = newTranslator(Validate)

func newTranslator(v *validator.Validate) ut.Translator {
	locale := en.New()
	trans, _ := ut.New(locale, locale).GetTranslator(locale.Locale())
	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		panic(err)
	}
	return trans
}
