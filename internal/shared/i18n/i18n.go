package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var (
	bundle        *i18n.Bundle
	once          sync.Once
	defaultLocale = "fr"
)

type ctxKey struct{}

// Init loads the embedded locale files. It is safe to call more than once;
// only the first call loads, later calls just change the default locale.
func Init(defLocale string) {
	if defLocale != "" {
		defaultLocale = defLocale
	}
	once.Do(load)
}

func load() {
	bundle = i18n.NewBundle(language.French)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		zap.L().Named("i18n").Error("read locales dir failed", zap.Error(err))
		return
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + e.Name())
		if err != nil {
			zap.L().Named("i18n").Error("read locale file failed", zap.String("file", e.Name()), zap.Error(err))
			continue
		}
		if _, err := bundle.ParseMessageFileBytes(data, e.Name()); err != nil {
			zap.L().Named("i18n").Error("parse locale file failed", zap.String("file", e.Name()), zap.Error(err))
		}
	}
}

// WithLocale returns a context carrying the given locale (e.g. "fr", "en-US").
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, ctxKey{}, locale)
}

// LocaleFromContext returns the locale stored in ctx or the default one.
func LocaleFromContext(ctx context.Context) string {
	if ctx != nil {
		if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
			return v
		}
	}
	return defaultLocale
}

// T translates messageID for the locale in ctx. The fallback is returned
// when the id is unknown.
func T(ctx context.Context, messageID, fallback string, templateData map[string]any) string {
	once.Do(load)
	if bundle == nil {
		return fallback
	}

	l := i18n.NewLocalizer(bundle, LocaleFromContext(ctx), defaultLocale)
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: templateData,
	})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}
