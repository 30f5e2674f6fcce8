package structuredtext

import (
	"html"
	"strings"
)

// textTree is an arena of nodes addressed by index. Node 0 is the root, an
// element without a tag whose children hold the block text.
type textTree struct {
	nodes []treeNode
}

type treeNode struct {
	// text is set for leaf nodes; tag is set for elements.
	text     []rune
	tag      string
	attrs    [][2]string
	children []int
	isText   bool
}

// spanResult describes what happened to a span applied to the tree.
type spanResult int

const (
	spanApplied spanResult = iota
	spanInverted
	spanOutOfRange
	spanTooLong
	spanUnresolved
)

func (r spanResult) String() string {
	switch r {
	case spanApplied:
		return "applied"
	case spanInverted:
		return "end before start"
	case spanOutOfRange:
		return "start outside text"
	case spanTooLong:
		return "crosses element boundary"
	case spanUnresolved:
		return "unresolved link"
	}
	return "unknown"
}

func newTextTree(text string) *textTree {
	t := &textTree{}
	t.nodes = append(t.nodes, treeNode{})
	leaf := t.add(treeNode{isText: true, text: []rune(text)})
	t.nodes[0].children = []int{leaf}
	return t
}

func (t *textTree) add(n treeNode) int {
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}

// length returns the number of code points under node i.
func (t *textTree) length(i int) int {
	n := &t.nodes[i]
	if n.isText {
		return len(n.text)
	}
	total := 0
	for _, c := range n.children {
		total += t.length(c)
	}
	return total
}

// apply wraps the text covered by s in a new element. Spans must be applied
// outermost first: a span that does not fit inside a single text node is
// dropped.
func (t *textTree) apply(s Span, resolve LinkResolver) spanResult {
	if s.End < s.Start {
		return spanInverted
	}
	return t.descend(0, -1, 0, s, resolve)
}

func (t *textTree) descend(i, parent, cursor int, s Span, resolve LinkResolver) spanResult {
	n := &t.nodes[i]
	if n.isText {
		return t.split(i, parent, cursor, s, resolve)
	}

	if s.Start >= cursor+t.length(i) {
		return spanOutOfRange
	}
	offset := cursor
	for _, c := range n.children {
		l := t.length(c)
		if s.Start < offset+l {
			return t.descend(c, i, offset, s, resolve)
		}
		offset += l
	}
	return spanOutOfRange
}

// split replaces text node i (a child of parent) by head, element, tail.
func (t *textTree) split(i, parent, cursor int, s Span, resolve LinkResolver) spanResult {
	text := t.nodes[i].text
	at := s.Start - cursor
	if at < 0 || at+s.Len() > len(text) {
		return spanTooLong
	}

	el := treeNode{}
	switch s.Kind {
	case SpanStrong:
		el.tag = "strong"
	case SpanEmphasis:
		el.tag = "em"
	case SpanHyperlink:
		href, ok := Href(s.Link, resolve)
		if !ok {
			return spanUnresolved
		}
		el.tag = "a"
		el.attrs = [][2]string{{"href", href}}
	default:
		return spanOutOfRange
	}

	head := text[:at]
	meat := text[at : at+s.Len()]
	tail := text[at+s.Len():]

	replacement := make([]int, 0, 3)
	if len(head) > 0 {
		replacement = append(replacement, t.add(treeNode{isText: true, text: head}))
	}
	// The meat keeps the arena slot of the split node; the element takes a new one.
	t.nodes[i].text = meat
	el.children = []int{i}
	replacement = append(replacement, t.add(el))
	if len(tail) > 0 {
		replacement = append(replacement, t.add(treeNode{isText: true, text: tail}))
	}

	p := &t.nodes[parent]
	children := make([]int, 0, len(p.children)+2)
	for _, c := range p.children {
		if c == i {
			children = append(children, replacement...)
			continue
		}
		children = append(children, c)
	}
	p.children = children
	return spanApplied
}

// html serializes the tree below the root.
func (t *textTree) html() string {
	var b strings.Builder
	for _, c := range t.nodes[0].children {
		t.write(&b, c)
	}
	return b.String()
}

func (t *textTree) write(b *strings.Builder, i int) {
	n := &t.nodes[i]
	if n.isText {
		b.WriteString(html.EscapeString(string(n.text)))
		return
	}
	b.WriteByte('<')
	b.WriteString(n.tag)
	for _, a := range n.attrs {
		b.WriteByte(' ')
		b.WriteString(a[0])
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a[1]))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	for _, c := range n.children {
		t.write(b, c)
	}
	b.WriteString("</")
	b.WriteString(n.tag)
	b.WriteByte('>')
}
