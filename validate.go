package structuredtext

import (
	"fmt"
)

// ValidationOptions controls what Validate checks.
type ValidationOptions struct {
	CheckNesting      bool         // Report spans the renderer would drop because of their order
	RequireResolvable bool         // Report document links Resolver cannot resolve
	Resolver          LinkResolver // Used by RequireResolvable
}

// Validate performs the basic checks: heading levels and span ranges.
// Nothing reported here stops a document from rendering.
func Validate(doc Document) []error {
	return ValidateWithOptions(doc, ValidationOptions{})
}

// ValidateWithOptions performs validation with custom options.
func ValidateWithOptions(doc Document, opts ValidationOptions) []error {
	var errs []error
	for i, b := range doc {
		path := fmt.Sprintf("[%d]", i)

		switch x := b.(type) {
		case *TextBlock:
			errs = append(errs, validateText(x, path, opts)...)
		case *ImageBlock:
			if x.View == nil {
				errs = append(errs, &ValidationError{Path: path, Message: "image without view", Block: b})
			}
		case *EmbedBlock:
			if x.Object == nil {
				errs = append(errs, &ValidationError{Path: path, Message: "embed without object", Block: b})
			}
		case nil:
			errs = append(errs, &ValidationError{Path: path, Message: "nil block"})
		}
	}
	return errs
}

func validateText(b *TextBlock, path string, opts ValidationOptions) []error {
	var errs []error
	if b.Kind == Heading && (b.Level < 1 || b.Level > 4) {
		errs = append(errs, &ValidationError{
			Path:    path,
			Message: fmt.Sprintf("heading level %d outside 1..4", b.Level),
			Block:   b,
		})
	}

	length := b.Length()
	var tree *textTree
	if opts.CheckNesting {
		tree = newTextTree(b.Text)
	}

	for j, s := range b.Spans {
		spath := fmt.Sprintf("%s.spans[%d]", path, j)
		bad := func(format string, args ...any) {
			errs = append(errs, &ValidationError{
				Path:    spath,
				Message: fmt.Sprintf(format, args...),
				Block:   b,
			})
		}

		switch {
		case s.Start < 0:
			bad("negative start %d", s.Start)
		case s.End < s.Start:
			bad("end %d before start %d", s.End, s.Start)
		case s.End > length:
			bad("end %d past text length %d", s.End, length)
		case s.Start >= length:
			bad("start %d outside text length %d", s.Start, length)
		}

		if s.Kind == SpanHyperlink {
			if s.Link == nil {
				bad("hyperlink without link")
			} else if dl, ok := s.Link.(DocumentLink); ok && opts.RequireResolvable {
				if opts.Resolver == nil {
					bad("document link %q has no resolver", dl.ID)
				} else if _, ok := opts.Resolver(dl); !ok {
					bad("document link %q does not resolve", dl.ID)
				}
			}
		}

		if tree != nil && s.Start >= 0 && s.End >= s.Start && s.Start < length && s.End <= length &&
			(s.Kind != SpanHyperlink || s.Link != nil) {
			// An unresolved link renders as plain text and leaves the tree as is.
			res := tree.apply(s, opts.Resolver)
			if res != spanApplied && res != spanUnresolved {
				bad("span would be dropped: %s", res)
			}
		}
	}
	return errs
}
