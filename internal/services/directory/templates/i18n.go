package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	directoryi18n "github.com/louisbranch/userdirectory/internal/services/directory/i18n"
)

// Localizer provides translated strings for components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

type localizerKey struct{}

type languageKey struct{}

// WithLanguage returns a context whose components render in tag, using the
// catalog printer for translated copy.
func WithLanguage(ctx context.Context, tag language.Tag) context.Context {
	ctx = context.WithValue(ctx, languageKey{}, tag)
	return WithLocalizer(ctx, directoryi18n.Printer(tag))
}

// LanguageFrom returns the context language, or the default language.
func LanguageFrom(ctx context.Context) language.Tag {
	if ctx != nil {
		if tag, ok := ctx.Value(languageKey{}).(language.Tag); ok {
			return tag
		}
	}
	return directoryi18n.Default()
}

// WithLocalizer returns a context whose components render with loc.
func WithLocalizer(ctx context.Context, loc Localizer) context.Context {
	if loc == nil {
		return ctx
	}
	return context.WithValue(ctx, localizerKey{}, loc)
}

// LocalizerFrom returns the context localizer, or the default language printer.
func LocalizerFrom(ctx context.Context) Localizer {
	if ctx != nil {
		if loc, ok := ctx.Value(localizerKey{}).(Localizer); ok && loc != nil {
			return loc
		}
	}
	return directoryi18n.DefaultPrinter()
}

// T renders a translated string resolved from the render context.
func T(key message.Reference, args ...any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Text(LocalizerFrom(ctx).Sprintf(key, args...)).Render(ctx, w)
	})
}
