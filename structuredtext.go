package structuredtext

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

//
// Public API
//

// Document is an ordered list of structured text blocks.
// Document is not safe for concurrent modification.
// For concurrent reads, no synchronization is needed.
type Document []Block

// Block is one structural unit of a document. The set of implementations is
// closed: *TextBlock, *ImageBlock and *EmbedBlock.
type Block interface {
	// Type returns the wire discriminator, e.g. "heading2" or "o-list-item".
	Type() string
	isBlock()
}

// TextKind distinguishes the text-bearing block variants.
type TextKind int

const (
	Paragraph TextKind = iota
	Heading
	ListItem
	Preformatted
)

// TextBlock is a block that owns a string and the spans formatting it.
type TextBlock struct {
	Kind TextKind

	// Level is the heading level (1..4). Only meaningful for Heading.
	Level int
	// Ordered reports whether a ListItem belongs to an ordered list.
	Ordered bool

	Text  string
	Spans []Span

	// RawSpans holds the spans of a Preformatted block exactly as they
	// appeared in the JSON. They are not parsed and not rendered.
	RawSpans []any
}

// Fragment is a block payload that renders its own HTML.
type Fragment interface {
	HTML() string
}

// ImageBlock wraps an image view.
type ImageBlock struct {
	View Fragment
	// Raw is the JSON object the block was parsed from, re-emitted by Encode.
	Raw map[string]any
}

// EmbedBlock wraps an embedded object (oEmbed).
type EmbedBlock struct {
	Object Fragment
	Raw    map[string]any
}

// SpanKind is the formatting a span applies.
type SpanKind int

const (
	SpanStrong SpanKind = iota
	SpanEmphasis
	SpanHyperlink
)

// Span is an inline formatting range over the text of its block.
// Start and End are code point offsets; End is one past the last covered
// code point. Link is set for SpanHyperlink only.
type Span struct {
	Kind  SpanKind
	Start int
	End   int
	Link  Link
}

// WalkContext provides context during tree traversal.
type WalkContext struct {
	Index     int
	TextCount int
}

// Strong returns a strong span over [start, end).
func Strong(start, end int) Span { return Span{Kind: SpanStrong, Start: start, End: end} }

// Emphasis returns an emphasis span over [start, end).
func Emphasis(start, end int) Span { return Span{Kind: SpanEmphasis, Start: start, End: end} }

// Hyperlink returns a hyperlink span over [start, end) pointing at link.
func Hyperlink(start, end int, link Link) Span {
	return Span{Kind: SpanHyperlink, Start: start, End: end, Link: link}
}

// String returns the wire name of the span kind.
func (k SpanKind) String() string {
	switch k {
	case SpanStrong:
		return "strong"
	case SpanEmphasis:
		return "em"
	case SpanHyperlink:
		return "hyperlink"
	}
	return fmt.Sprintf("SpanKind(%d)", int(k))
}

// Len returns the number of code points the span covers.
func (s Span) Len() int { return s.End - s.Start }

// NewHeading creates a heading block. Level should be within 1..4.
func NewHeading(level int, text string, spans ...Span) *TextBlock {
	return &TextBlock{Kind: Heading, Level: level, Text: text, Spans: spans}
}

// NewParagraph creates a paragraph block.
func NewParagraph(text string, spans ...Span) *TextBlock {
	return &TextBlock{Kind: Paragraph, Text: text, Spans: spans}
}

// NewListItem creates a list item block.
func NewListItem(ordered bool, text string, spans ...Span) *TextBlock {
	return &TextBlock{Kind: ListItem, Ordered: ordered, Text: text, Spans: spans}
}

// NewPreformatted creates a preformatted block. rawSpans are kept verbatim.
func NewPreformatted(text string, rawSpans ...any) *TextBlock {
	return &TextBlock{Kind: Preformatted, Text: text, RawSpans: rawSpans}
}

// Type implements Block.
func (b *TextBlock) Type() string {
	switch b.Kind {
	case Heading:
		return fmt.Sprintf("heading%d", b.Level)
	case ListItem:
		if b.Ordered {
			return "o-list-item"
		}
		return "list-item"
	case Preformatted:
		return "preformatted"
	default:
		return "paragraph"
	}
}

// Type implements Block.
func (b *ImageBlock) Type() string { return "image" }

// Type implements Block.
func (b *EmbedBlock) Type() string { return "embed" }

func (*TextBlock) isBlock()  {}
func (*ImageBlock) isBlock() {}
func (*EmbedBlock) isBlock() {}

// AddSpan appends a span and returns the block for chaining.
func (b *TextBlock) AddSpan(s Span) *TextBlock {
	b.Spans = append(b.Spans, s)
	return b
}

// IsListItem reports whether the block is a list item with the given ordering.
func (b *TextBlock) IsListItem(ordered bool) bool {
	return b != nil && b.Kind == ListItem && b.Ordered == ordered
}

// Length returns the length of the block text in code points.
func (b *TextBlock) Length() int {
	return len([]rune(b.Text))
}

// Clone deep-copies the block.
func (b *TextBlock) Clone() *TextBlock {
	if b == nil {
		return nil
	}
	out := *b
	out.Spans = cloneSpans(b.Spans)
	if b.RawSpans != nil {
		out.RawSpans = make([]any, len(b.RawSpans))
		for i := range b.RawSpans {
			out.RawSpans[i] = deepCopyAny(b.RawSpans[i])
		}
	}
	return &out
}

// Clone copies the block. The fragment is shared; Raw is deep-copied.
func (b *ImageBlock) Clone() *ImageBlock {
	if b == nil {
		return nil
	}
	return &ImageBlock{View: b.View, Raw: deepCopyMap(b.Raw)}
}

// Clone copies the block. The fragment is shared; Raw is deep-copied.
func (b *EmbedBlock) Clone() *EmbedBlock {
	if b == nil {
		return nil
	}
	return &EmbedBlock{Object: b.Object, Raw: deepCopyMap(b.Raw)}
}

// CloneBlock deep-copies any block.
func CloneBlock(b Block) Block {
	switch x := b.(type) {
	case *TextBlock:
		return x.Clone()
	case *ImageBlock:
		return x.Clone()
	case *EmbedBlock:
		return x.Clone()
	}
	return b
}

//
// Accessors
//

// GetText joins the text of all text-bearing blocks with newlines.
func (d Document) GetText() string {
	var buf strings.Builder
	first := true
	for _, b := range d {
		tb, ok := b.(*TextBlock)
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte('\n')
		}
		buf.WriteString(tb.Text)
		first = false
	}
	return buf.String()
}

// GetHeadings returns all headings in document order.
func (d Document) GetHeadings() []*TextBlock { return d.textBlocks(Heading) }

// GetParagraphs returns all paragraphs in document order.
func (d Document) GetParagraphs() []*TextBlock { return d.textBlocks(Paragraph) }

// GetPreformatted returns all preformatted blocks in document order.
func (d Document) GetPreformatted() []*TextBlock { return d.textBlocks(Preformatted) }

// GetFirstParagraph returns the first paragraph or nil.
func (d Document) GetFirstParagraph() *TextBlock { return d.firstTextBlock(Paragraph) }

// GetFirstPreformatted returns the first preformatted block or nil.
func (d Document) GetFirstPreformatted() *TextBlock { return d.firstTextBlock(Preformatted) }

// GetTitle returns the heading with the smallest level, the earliest one on ties.
func (d Document) GetTitle() *TextBlock {
	var title *TextBlock
	for _, h := range d.GetHeadings() {
		if title == nil || h.Level < title.Level {
			title = h
		}
	}
	return title
}

// GetImages returns all image blocks in document order.
func (d Document) GetImages() []*ImageBlock {
	var out []*ImageBlock
	for _, b := range d {
		if img, ok := b.(*ImageBlock); ok {
			out = append(out, img)
		}
	}
	return out
}

// GetFirstImage returns the first image block or nil.
func (d Document) GetFirstImage() *ImageBlock {
	for _, b := range d {
		if img, ok := b.(*ImageBlock); ok {
			return img
		}
	}
	return nil
}

func (d Document) textBlocks(kind TextKind) []*TextBlock {
	var out []*TextBlock
	for _, b := range d {
		if tb, ok := b.(*TextBlock); ok && tb.Kind == kind {
			out = append(out, tb)
		}
	}
	return out
}

func (d Document) firstTextBlock(kind TextKind) *TextBlock {
	for _, b := range d {
		if tb, ok := b.(*TextBlock); ok && tb.Kind == kind {
			return tb
		}
	}
	return nil
}

//
// Traversal
//

// Walk visits all blocks in order; stops early on fn error.
func Walk(doc Document, fn func(Block) error) error {
	for _, b := range doc {
		if err := fn(b); err != nil {
			return err
		}
	}
	return nil
}

// WalkWithContext visits all blocks with additional context.
func WalkWithContext(doc Document, fn func(Block, WalkContext) error) error {
	textCount := 0
	for i, b := range doc {
		ctx := WalkContext{
			Index:     i,
			TextCount: textCount,
		}
		if _, ok := b.(*TextBlock); ok {
			textCount++
		}
		if err := fn(b, ctx); err != nil {
			return err
		}
	}
	return nil
}

// Filter returns a new document with clones of the blocks matching the predicate.
func Filter(doc Document, pred func(Block) bool) Document {
	result := make(Document, 0)
	for _, b := range doc {
		if pred(b) {
			result = append(result, CloneBlock(b))
		}
	}
	return result
}

// Transform applies fn to a clone of each block, returning a new document.
// If fn returns nil, the block is excluded from the result.
func Transform(doc Document, fn func(Block) Block) Document {
	result := make(Document, 0, len(doc))
	for _, b := range doc {
		if transformed := fn(CloneBlock(b)); transformed != nil {
			result = append(result, transformed)
		}
	}
	return result
}

//
// Errors (typed + path aware)
//

var (
	ErrInvalidDocument = errors.New("invalid document")
	ErrExpectedArray   = errors.New("expected JSON array")
	ErrExpectedObject  = errors.New("expected JSON object")
	ErrMissingText     = errors.New("missing text")
	ErrInvalidSpans    = errors.New("spans must be an array")
	ErrInvalidFragment = errors.New("invalid fragment")
	ErrHeadingLevel    = errors.New("heading level outside 1..4")
)

type Error struct {
	Op   string // "decode", "block", "image", "embed"
	Path string // e.g. "[3].spans"
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("structuredtext %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("structuredtext %s at %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is makes every parse failure match ErrInvalidDocument.
func (e *Error) Is(target error) bool { return target == ErrInvalidDocument }

func wrap(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Path: path, Err: err}
}

// ValidationError represents a validation finding with context.
type ValidationError struct {
	Path    string
	Message string
	Block   Block // Optional reference to the offending block
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

//
// Deep copy helpers (for Clone)
//

func cloneSpans(in []Span) []Span {
	if in == nil {
		return nil
	}
	out := make([]Span, len(in))
	copy(out, in)
	return out
}

func deepCopyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyAny(v)
	}
	return out
}

func deepCopyAny(v any) any {
	switch x := v.(type) {
	case map[string]any:
		return deepCopyMap(x)
	case []any:
		out := make([]any, len(x))
		for i := range x {
			out[i] = deepCopyAny(x[i])
		}
		return out
	default:
		// primitives (string, bool, nil, json.Number, etc.)
		return x
	}
}
