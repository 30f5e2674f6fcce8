package structuredtext

import (
	"strings"
)

// GroupTag is the wrapper element of a BlockGroup.
type GroupTag string

const (
	GroupNone          GroupTag = ""
	GroupUnorderedList GroupTag = "ul"
	GroupOrderedList   GroupTag = "ol"
	GroupListItem      GroupTag = "li"
)

// BlockGroup is a run of adjacent blocks rendered under one wrapper.
type BlockGroup struct {
	Tag    GroupTag
	Blocks []Block
}

// Group folds blocks into groups in a single pass. Consecutive unordered list
// items share a "ul" group.
//
// Ordered list items never open an "ol" group. An ordered item that is the
// first block opens an "li" group; anywhere else it opens an untagged group.
func Group(blocks []Block) []BlockGroup {
	var groups []BlockGroup
	for _, b := range blocks {
		tb, _ := b.(*TextBlock)

		if len(groups) == 0 {
			switch {
			case tb.IsListItem(false):
				groups = append(groups, BlockGroup{Tag: GroupUnorderedList, Blocks: []Block{b}})
			case tb.IsListItem(true):
				groups = append(groups, BlockGroup{Tag: GroupListItem, Blocks: []Block{b}})
			default:
				groups = append(groups, BlockGroup{Blocks: []Block{b}})
			}
			continue
		}

		last := &groups[len(groups)-1]
		switch {
		case last.Tag == GroupUnorderedList && tb.IsListItem(false):
			last.Blocks = append(last.Blocks, b)
		case last.Tag == GroupOrderedList && tb.IsListItem(true):
			last.Blocks = append(last.Blocks, b)
		case tb.IsListItem(false):
			groups = append(groups, BlockGroup{Tag: GroupUnorderedList, Blocks: []Block{b}})
		default:
			groups = append(groups, BlockGroup{Blocks: []Block{b}})
		}
	}
	return groups
}

// HTML renders the member blocks inside the group wrapper, if any.
func (g BlockGroup) HTML(opts RenderOptions) string {
	var b strings.Builder
	if g.Tag != GroupNone {
		b.WriteString("<" + string(g.Tag) + ">")
	}
	for _, block := range g.Blocks {
		b.WriteString(renderBlock(block, opts))
	}
	if g.Tag != GroupNone {
		b.WriteString("</" + string(g.Tag) + ">")
	}
	return b.String()
}
