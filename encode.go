package structuredtext

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// Encode serializes the document back to structured text JSON.
// - Image and embed blocks re-emit the object they were parsed from
// - A heading level outside 1..4 fails with ErrHeadingLevel; Validate reports it ahead of time
// - Does not mutate the input document
func Encode(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if doc == nil {
		doc = Document{}
	}
	return enc.Encode(doc)
}

// EncodeString is a convenience wrapper for Encode.
func EncodeString(doc Document) (string, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

//
// JSON marshaling
//

func (b *TextBlock) MarshalJSON() ([]byte, error) {
	if b.Kind == Heading && (b.Level < 1 || b.Level > 4) {
		return nil, errors.Wrapf(ErrHeadingLevel, "level %d", b.Level)
	}
	m := map[string]any{
		"type": b.Type(),
		"text": b.Text,
	}
	if b.Kind == Preformatted {
		if b.RawSpans != nil {
			m["spans"] = b.RawSpans
		}
	} else if b.Spans != nil {
		m["spans"] = b.Spans
	}
	return json.Marshal(m)
}

func (s Span) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"type":  s.Kind.String(),
		"start": s.Start,
		"end":   s.End,
	}
	if s.Kind == SpanHyperlink && s.Link != nil {
		m["data"] = map[string]any{
			"type":  s.Link.LinkType(),
			"value": linkValue(s.Link),
		}
	}
	return json.Marshal(m)
}

func (b *ImageBlock) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(b.Raw)+4)
	for k, v := range b.Raw {
		m[k] = v
	}
	if v, ok := b.View.(*ImageView); ok && b.Raw == nil {
		m["url"] = v.URL
		m["alt"] = v.Alt
		m["copyright"] = v.Copyright
		m["dimensions"] = map[string]any{"width": v.Width, "height": v.Height}
	}
	m["type"] = b.Type()
	return json.Marshal(m)
}

func (b *EmbedBlock) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(b.Raw)+2)
	for k, v := range b.Raw {
		m[k] = v
	}
	if e, ok := b.Object.(*Embed); ok && b.Raw == nil {
		m["oembed"] = map[string]any{
			"type":          e.Type,
			"provider_name": e.Provider,
			"embed_url":     e.URL,
			"width":         e.Width,
			"height":        e.Height,
			"html":          e.Markup,
		}
	}
	m["type"] = b.Type()
	return json.Marshal(m)
}
