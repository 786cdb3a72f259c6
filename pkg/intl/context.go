package intl

import (
	"context"
	"errors"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/jacksonlee411/safety-console/pkg/constants"
)

var ErrNoLocalizer = errors.New("localizer not found")

func WithLocalizer(ctx context.Context, l *i18n.Localizer) context.Context {
	return context.WithValue(ctx, constants.LocalizerKey, l)
}

// UseLocalizer returns the localizer from the context.
// If the localizer is not found, the second return value will be false.
func UseLocalizer(ctx context.Context) (*i18n.Localizer, bool) {
	l, ok := ctx.Value(constants.LocalizerKey).(*i18n.Localizer)
	if !ok || l == nil {
		return nil, false
	}
	return l, true
}

func WithLocale(ctx context.Context, locale language.Tag) context.Context {
	return context.WithValue(ctx, constants.LocaleKey, locale)
}

// UseLocale returns the negotiated locale, or English when none was set.
func UseLocale(ctx context.Context) language.Tag {
	locale, ok := ctx.Value(constants.LocaleKey).(language.Tag)
	if !ok {
		return language.English
	}
	return locale
}

// MustT translates msgID with the localizer from ctx and panics without one.
func MustT(ctx context.Context, msgID string) string {
	l, ok := UseLocalizer(ctx)
	if !ok {
		panic(ErrNoLocalizer)
	}
	return l.MustLocalize(&i18n.LocalizeConfig{MessageID: msgID})
}

// T translates msgID, returning fallback when the message is missing.
func T(l *i18n.Localizer, msgID, fallback string) string {
	if l == nil {
		return fallback
	}
	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: msgID})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}
