package structuredtext

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/derickschaefer/structuredtext/internal/log"
)

// ParseOptions controls how a generic JSON tree becomes a Document.
type ParseOptions struct {
	// ImageParser builds the fragment of an "image" block. Defaults to ParseImageView.
	ImageParser func(obj map[string]any) (Fragment, error)
	// EmbedParser builds the fragment of an "embed" block. Defaults to ParseEmbed.
	EmbedParser func(obj map[string]any) (Fragment, error)
	// Logger receives debug entries for dropped blocks and spans.
	Logger *zap.Logger
}

func (o ParseOptions) withDefaults() ParseOptions {
	if o.ImageParser == nil {
		o.ImageParser = ParseImageView
	}
	if o.EmbedParser == nil {
		o.EmbedParser = ParseEmbed
	}
	if o.Logger == nil {
		o.Logger = log.Get()
	}
	return o
}

// Decode parses structured text JSON into a Document.
//   - Unknown block and span types are dropped
//   - Missing or mistyped text is an error wrapping ErrInvalidDocument
func Decode(r io.Reader) (Document, error) {
	return DecodeWithOptions(r, ParseOptions{})
}

// DecodeString is a convenience wrapper for Decode.
func DecodeString(s string) (Document, error) {
	return Decode(strings.NewReader(s))
}

// DecodeWithOptions is Decode with custom fragment parsers or logger.
func DecodeWithOptions(r io.Reader, opts ParseOptions) (Document, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.WithStack(wrap("decode", "", err))
	}
	d, ok := tok.(json.Delim)
	if !ok || d != '[' {
		return nil, errors.WithStack(wrap("decode", "", ErrExpectedArray))
	}

	var items []any
	i := 0
	for dec.More() {
		var item any
		if err := dec.Decode(&item); err != nil {
			return nil, errors.WithStack(wrap("decode", fmt.Sprintf("[%d]", i), err))
		}
		items = append(items, item)
		i++
	}

	if _, err := dec.Token(); err != nil {
		return nil, errors.WithStack(wrap("decode", "", err))
	}

	return ParseWithOptions(items, opts)
}

// Parse converts an already decoded JSON value (a []any of block objects)
// into a Document.
func Parse(v any) (Document, error) {
	return ParseWithOptions(v, ParseOptions{})
}

// ParseWithOptions is Parse with custom fragment parsers or logger.
// Either the whole document is returned or an error; never both.
func ParseWithOptions(v any, opts ParseOptions) (Document, error) {
	opts = opts.withDefaults()

	arr, ok := v.([]any)
	if !ok {
		return nil, errors.WithStack(wrap("decode", "", ErrExpectedArray))
	}

	p := &parser{opts: opts, logger: opts.Logger}
	doc := make(Document, 0, len(arr))
	for i, item := range arr {
		b, err := p.parseBlock(item, fmt.Sprintf("[%d]", i))
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if b != nil {
			doc = append(doc, b)
		}
	}
	return doc, nil
}

type parser struct {
	opts   ParseOptions
	logger *zap.Logger
}

// parseBlock returns a nil block for elements that are dropped.
func (p *parser) parseBlock(item any, path string) (Block, error) {
	obj, ok := item.(map[string]any)
	if !ok {
		p.logger.Debug("dropped block", zap.String("path", path), zap.String("reason", "not an object"))
		return nil, nil
	}
	t, _ := obj["type"].(string)

	switch t {
	case "heading1", "heading2", "heading3", "heading4":
		b, err := p.parseText(obj, path)
		if err != nil {
			return nil, err
		}
		b.Kind = Heading
		b.Level = int(t[len(t)-1] - '0')
		return b, nil
	case "paragraph":
		b, err := p.parseText(obj, path)
		if err != nil {
			return nil, err
		}
		b.Kind = Paragraph
		return b, nil
	case "list-item", "o-list-item":
		b, err := p.parseText(obj, path)
		if err != nil {
			return nil, err
		}
		b.Kind = ListItem
		b.Ordered = t == "o-list-item"
		return b, nil
	case "preformatted":
		return p.parsePreformatted(obj, path)
	case "image":
		view, err := p.opts.ImageParser(obj)
		if err != nil {
			return nil, wrap("image", path, err)
		}
		return &ImageBlock{View: view, Raw: deepCopyMap(obj)}, nil
	case "embed":
		o, err := p.opts.EmbedParser(obj)
		if err != nil {
			return nil, wrap("embed", path, err)
		}
		return &EmbedBlock{Object: o, Raw: deepCopyMap(obj)}, nil
	}

	p.logger.Debug("dropped block", zap.String("path", path), zap.String("type", t))
	return nil, nil
}

func (p *parser) parseText(obj map[string]any, path string) (*TextBlock, error) {
	text, ok := obj["text"].(string)
	if !ok {
		return nil, wrap("block", path+".text", ErrMissingText)
	}

	b := &TextBlock{Text: text}

	raw, ok := obj["spans"]
	if !ok || raw == nil {
		return b, nil
	}
	arr, ok := raw.([]any)
	if !ok {
		return nil, wrap("block", path+".spans", ErrInvalidSpans)
	}

	b.Spans = make([]Span, 0, len(arr))
	for i, item := range arr {
		spath := fmt.Sprintf("%s.spans[%d]", path, i)
		s, ok := parseSpan(item)
		if !ok {
			p.logger.Debug("dropped span", zap.String("path", spath))
			continue
		}
		b.Spans = append(b.Spans, s)
	}
	return b, nil
}

// parsePreformatted keeps spans as raw JSON values. They are not parsed.
func (p *parser) parsePreformatted(obj map[string]any, path string) (*TextBlock, error) {
	text, ok := obj["text"].(string)
	if !ok {
		return nil, wrap("block", path+".text", ErrMissingText)
	}
	b := &TextBlock{Kind: Preformatted, Text: text}
	switch raw := obj["spans"].(type) {
	case nil:
	case []any:
		b.RawSpans = make([]any, len(raw))
		for i := range raw {
			b.RawSpans[i] = deepCopyAny(raw[i])
		}
	default:
		return nil, wrap("block", path+".spans", ErrInvalidSpans)
	}
	return b, nil
}

func parseSpan(item any) (Span, bool) {
	obj, ok := item.(map[string]any)
	if !ok {
		return Span{}, false
	}
	start, ok := toInt(obj["start"])
	if !ok {
		return Span{}, false
	}
	end, ok := toInt(obj["end"])
	if !ok {
		return Span{}, false
	}

	t, _ := obj["type"].(string)
	switch t {
	case "strong":
		return Strong(start, end), true
	case "em":
		return Emphasis(start, end), true
	case "hyperlink":
		link, ok := ExtractLink(obj["data"])
		if !ok {
			return Span{}, false
		}
		return Hyperlink(start, end, link), true
	}
	return Span{}, false
}

// toInt accepts the integer encodings a generic JSON tree may carry.
func toInt(v any) (int, bool) {
	switch x := v.(type) {
	case json.Number:
		n, err := x.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) {
			return 0, false
		}
		return int(x), true
	case int:
		return x, true
	case int64:
		return int(x), true
	case int32:
		return int(x), true
	}
	return 0, false
}
