package serrors

import (
	"github.com/iota-uz/go-i18n/v2/i18n"
)

// BaseError is an error with a stable machine code and a translation key.
type BaseError struct {
	Code         string            `json:"code"`
	Message      string            `json:"message"`
	LocaleKey    string            `json:"-"`
	TemplateData map[string]string `json:"-"`
}

func NewError(code, message, localeKey string) *BaseError {
	return &BaseError{
		Code:      code,
		Message:   message,
		LocaleKey: localeKey,
	}
}

func (e *BaseError) Error() string {
	return e.Message
}

// Is matches another *BaseError with the same code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	return ok && t.Code == e.Code
}

func (e *BaseError) WithTemplateData(data map[string]string) *BaseError {
	cp := *e
	cp.TemplateData = data
	return &cp
}

// Localize renders the error with l, falling back to Message when the key is
// missing from the bundle.
func (e *BaseError) Localize(l *i18n.Localizer) string {
	if e.LocaleKey == "" || l == nil {
		return e.Message
	}
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    e.LocaleKey,
		TemplateData: e.TemplateData,
	})
	if err != nil {
		return e.Message
	}
	return msg
}
