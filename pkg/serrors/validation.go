package serrors

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/iota-uz/go-i18n/v2/i18n"

	"github.com/jacksonlee411/safety-console/pkg/constants"
)

// ValidationErrors maps a field name to its validation error.
type ValidationErrors map[string]*BaseError

func NewFieldRequiredError(field, fieldLocaleKey string) *BaseError {
	return NewError(
		"FIELD_REQUIRED",
		fmt.Sprintf("%s is required", field),
		"ValidationErrors.required",
	).WithTemplateData(map[string]string{"Field": fieldLocaleKey})
}

// ProcessValidatorErrors converts validator errors into field errors. The
// fieldLocaleKey callback names the translation key of a field; the error
// carries it as template data so messages can embed the localized field name.
// The plain message is the English validator translation.
func ProcessValidatorErrors(errs validator.ValidationErrors, fieldLocaleKey func(field string) string) ValidationErrors {
	out := make(ValidationErrors, len(errs))
	for _, fe := range errs {
		field := fe.Field()
		key := fieldLocaleKey(field)
		if key == "" {
			key = field
		}
		out[field] = NewError(
			"VALIDATION_"+fe.Tag(),
			fe.Translate(constants.Translator),
			"ValidationErrors."+fe.Tag(),
		).WithTemplateData(map[string]string{
			"Field": key,
			"Param": fe.Param(),
		})
	}
	return out
}

// LocalizeValidationErrors renders every field error with l. The field name
// placeholder is itself translated before the message is rendered.
func LocalizeValidationErrors(errs ValidationErrors, l *i18n.Localizer) map[string]string {
	out := make(map[string]string, len(errs))
	for field, err := range errs {
		data := make(map[string]string, len(err.TemplateData))
		for k, v := range err.TemplateData {
			data[k] = v
		}
		if key := data["Field"]; key != "" && l != nil {
			if name, lErr := l.Localize(&i18n.LocalizeConfig{MessageID: key}); lErr == nil {
				data["Field"] = name
			}
		}
		out[field] = err.WithTemplateData(data).Localize(l)
	}
	return out
}
