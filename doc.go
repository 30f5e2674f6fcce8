/*
Package structuredtext provides parsing, rendering, and manipulation of structured text documents.

A structured text document is a JSON array of blocks. Text blocks (headings,
paragraphs, list items, preformatted text) carry a plain text string and a list
of spans that mark code point ranges as strong, emphasized, or hyperlinked.
Image and embed blocks carry an opaque fragment that knows how to render itself.

# Quick Start

Parse a document from JSON:

	input := `[{"type":"paragraph","text":"Hello world","spans":[{"type":"strong","start":0,"end":5}]}]`
	doc, err := structuredtext.DecodeString(input)
	if err != nil {
		log.Fatal(err)
	}

Render it to HTML:

	fmt.Println(doc.HTML(nil))
	// <p><strong>Hello</strong> world</p>

Build documents programmatically:

	doc := structuredtext.Document{
		structuredtext.NewHeading(1, "Title"),
		structuredtext.NewParagraph("hello world").
			AddSpan(structuredtext.Hyperlink(0, 11, structuredtext.WebLink{URL: "https://example.com"})).
			AddSpan(structuredtext.Emphasis(6, 11)),
	}

# Core Types

The main types are:

  - Document: An ordered list of blocks
  - TextBlock: Heading, paragraph, list item, or preformatted text with spans
  - ImageBlock, EmbedBlock: Blocks wrapping a Fragment
  - Span: A strong, emphasis, or hyperlink range over a text block
  - Link: WebLink, DocumentLink, FileLink, or ImageLink

# Decoding and Encoding

Decode from io.Reader, string, or an already decoded JSON value:

	doc, err := structuredtext.Decode(reader)
	doc, err := structuredtext.DecodeString(jsonString)
	doc, err := structuredtext.Parse(value)

Blocks of unknown type and malformed spans are dropped. A block without text,
a non-array spans field, or a fragment the image or embed parser rejects fails
the whole document.

Image and embed parsing can be replaced:

	doc, err := structuredtext.DecodeWithOptions(reader, structuredtext.ParseOptions{
		ImageParser: myImageParser,
		EmbedParser: myEmbedParser,
	})

Encode to io.Writer or string:

	err := structuredtext.Encode(writer, doc)
	jsonString, err := structuredtext.EncodeString(doc)

# Rendering

Consecutive list items are grouped into lists before rendering:

	groups := structuredtext.Group(doc)

Document links need a resolver to become hrefs; without one, or when it
declines, the linked text renders without an anchor:

	html := structuredtext.RenderHTML(doc, structuredtext.ResolveWith("/{type}/{slug}"))

Spans are applied in order and must nest: a span that crosses an element
created by an earlier span is skipped. Put outer spans first.

# Validation

Validation reports problems without failing:

	errs := structuredtext.ValidateWithOptions(doc, structuredtext.ValidationOptions{
		CheckNesting:      true,
		RequireResolvable: true,
		Resolver:          resolve,
	})
	for _, err := range errs {
		fmt.Println(err)
	}

# Traversal

Walk all blocks:

	err := structuredtext.Walk(doc, func(b structuredtext.Block) error {
		fmt.Println(b.Type())
		return nil
	})

Filter and Transform work on clones and return new documents:

	headings := structuredtext.Filter(doc, func(b structuredtext.Block) bool {
		tb, ok := b.(*structuredtext.TextBlock)
		return ok && tb.Kind == structuredtext.Heading
	})

# Error Handling

Decode errors include path information:

	doc, err := structuredtext.Decode(reader)
	if err != nil {
		var sErr *structuredtext.Error
		if errors.As(err, &sErr) {
			// e.g. "[2].spans"
			fmt.Printf("Error at %s: %v\n", sErr.Path, sErr.Err)
		}
	}

All of them match ErrInvalidDocument with errors.Is.

# Thread Safety

Documents are safe for concurrent reads without synchronization.
Rendering allocates its own working tree per text block and may run concurrently.
*/
package structuredtext
