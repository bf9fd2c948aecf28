package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Attr is one element attribute. Bool attributes render without a value.
type Attr struct {
	Name  string
	Value string
	Bool  bool
}

// A builds a valued attribute.
func A(name, value string) Attr {
	return Attr{Name: name, Value: value}
}

// Flag builds a boolean attribute such as hidden or disabled.
func Flag(name string) Attr {
	return Attr{Name: name, Bool: true}
}

// Class joins the non-empty class names into one class attribute.
func Class(names ...string) Attr {
	kept := make([]string, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			kept = append(kept, name)
		}
	}
	return A("class", strings.Join(kept, " "))
}

// Href builds an href attribute. Targets with schemes templ does not trust
// are replaced by templ's sanitization marker.
func Href(target string) Attr {
	return A("href", string(templ.URL(target)))
}

// HiddenIf returns the hidden flag when hide is true.
func HiddenIf(hide bool) []Attr {
	if hide {
		return []Attr{Flag("hidden")}
	}
	return nil
}

// El renders an element with escaped attributes around its children.
func El(tag string, attrs []Attr, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := openTag(w, tag, attrs); err != nil {
			return err
		}
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// Void renders an element without children or closing tag.
func Void(tag string, attrs ...Attr) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return openTag(w, tag, attrs)
	})
}

// Text renders escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Group renders children one after another without a wrapper.
func Group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, child := range children {
			if child == nil {
				continue
			}
			if err := child.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

func openTag(w io.Writer, tag string, attrs []Attr) error {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(tag)
	for _, attr := range attrs {
		if attr.Name == "" {
			continue
		}
		b.WriteString(" ")
		b.WriteString(attr.Name)
		if attr.Bool {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(attr.Value))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	_, err := io.WriteString(w, b.String())
	return err
}
