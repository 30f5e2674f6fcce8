package structuredtext

import (
	"fmt"
	"html"
	"strings"

	"go.uber.org/zap"

	"github.com/derickschaefer/structuredtext/internal/log"
)

// RenderOptions controls HTML rendering.
type RenderOptions struct {
	// Resolver turns document links into URLs. With a nil resolver, hyperlinks
	// to documents are rendered as plain text.
	Resolver LinkResolver
	// Logger receives debug entries for spans that were not applied.
	Logger *zap.Logger
}

func (o RenderOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return log.Get()
	}
	return o.Logger
}

// RenderHTML renders the document, grouping list items into lists.
func RenderHTML(doc Document, resolve LinkResolver) string {
	return RenderWithOptions(doc, RenderOptions{Resolver: resolve})
}

// HTML is shorthand for RenderHTML(d, resolve).
func (d Document) HTML(resolve LinkResolver) string {
	return RenderHTML(d, resolve)
}

// RenderWithOptions renders the document with custom options.
func RenderWithOptions(doc Document, opts RenderOptions) string {
	var b strings.Builder
	for _, g := range Group(doc) {
		b.WriteString(g.HTML(opts))
	}
	return b.String()
}

// RenderText renders text with its spans applied as nested inline elements.
//
// Spans are applied in the given order and are never reordered. An outer span
// must come before the spans nested in it; a span that would cross the
// boundary of an element created by an earlier span is dropped. Spans with
// End < Start and hyperlinks whose target does not resolve are dropped too.
func RenderText(text string, spans []Span, resolve LinkResolver) string {
	return renderText(text, spans, RenderOptions{Resolver: resolve})
}

func renderText(text string, spans []Span, opts RenderOptions) string {
	if len(spans) == 0 {
		return html.EscapeString(text)
	}

	logger := opts.logger()
	tree := newTextTree(text)
	for i, s := range spans {
		if res := tree.apply(s, opts.Resolver); res != spanApplied {
			logger.Debug("span skipped",
				zap.Int("index", i),
				zap.Stringer("kind", s.Kind),
				zap.Int("start", s.Start),
				zap.Int("end", s.End),
				zap.Stringer("reason", res),
			)
		}
	}
	return strings.TrimSpace(tree.html())
}

func renderBlock(b Block, opts RenderOptions) string {
	switch x := b.(type) {
	case *TextBlock:
		switch x.Kind {
		case Heading:
			return lineBreaks(fmt.Sprintf("<h%d>%s</h%d>", x.Level, renderText(x.Text, x.Spans, opts), x.Level))
		case Paragraph:
			return lineBreaks("<p>" + renderText(x.Text, x.Spans, opts) + "</p>")
		case ListItem:
			return lineBreaks("<li>" + renderText(x.Text, x.Spans, opts) + "</li>")
		case Preformatted:
			// RawSpans are not rendered.
			return "<pre>" + renderText(x.Text, nil, opts) + "</pre>"
		}
	case *ImageBlock:
		return lineBreaks("<p>" + fragmentHTML(x.View) + "</p>")
	case *EmbedBlock:
		return lineBreaks(fragmentHTML(x.Object))
	}
	return ""
}

func fragmentHTML(f Fragment) string {
	if f == nil {
		return ""
	}
	return f.HTML()
}

func lineBreaks(s string) string {
	return strings.ReplaceAll(s, "\n", "<br>")
}
