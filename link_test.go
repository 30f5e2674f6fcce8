package structuredtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractLink(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   Link
		wantOK bool
	}{
		{
			name:   "web",
			input:  map[string]any{"type": "Link.web", "value": map[string]any{"url": "https://example.com"}},
			want:   WebLink{URL: "https://example.com"},
			wantOK: true,
		},
		{
			name: "document",
			input: map[string]any{"type": "Link.document", "value": map[string]any{
				"document": map[string]any{"id": "UlfoxUnM0wkXYXbE", "type": "product", "slug": "cool-coffee", "tags": []any{"Macaron", 3}},
				"isBroken": false,
			}},
			want:   DocumentLink{ID: "UlfoxUnM0wkXYXbE", Type: "product", Slug: "cool-coffee", Tags: []string{"Macaron"}},
			wantOK: true,
		},
		{
			name: "broken document",
			input: map[string]any{"type": "Link.document", "value": map[string]any{
				"document": map[string]any{"id": "x"},
				"isBroken": true,
			}},
			want:   DocumentLink{ID: "x", Broken: true},
			wantOK: true,
		},
		{
			name: "file",
			input: map[string]any{"type": "Link.file", "value": map[string]any{
				"file": map[string]any{"url": "https://cdn/f.pdf", "kind": "document", "name": "f.pdf", "size": "2048"},
			}},
			want:   FileLink{URL: "https://cdn/f.pdf", Kind: "document", Filename: "f.pdf"},
			wantOK: true,
		},
		{
			name: "image",
			input: map[string]any{"type": "Link.image", "value": map[string]any{
				"image": map[string]any{"url": "https://cdn/i.png", "name": "i.png", "size": float64(99), "width": 10, "height": 20},
			}},
			want:   ImageLink{URL: "https://cdn/i.png", Filename: "i.png", Size: 99, Width: 10, Height: 20},
			wantOK: true,
		},
		{
			name:  "unknown type",
			input: map[string]any{"type": "Link.media", "value": map[string]any{"url": "x"}},
		},
		{
			name:  "web without url",
			input: map[string]any{"type": "Link.web", "value": map[string]any{}},
		},
		{
			name:  "document without id",
			input: map[string]any{"type": "Link.document", "value": map[string]any{"document": map[string]any{}}},
		},
		{
			name:  "missing value",
			input: map[string]any{"type": "Link.web"},
		},
		{
			name:  "not an object",
			input: "Link.web",
		},
		{
			name: "nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractLink(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHref(t *testing.T) {
	resolve := ResolveWith("/{type}/{id}/{slug}")

	tests := []struct {
		name    string
		link    Link
		resolve LinkResolver
		want    string
		wantOK  bool
	}{
		{"web", WebLink{URL: "https://a"}, nil, "https://a", true},
		{"file", FileLink{URL: "https://f"}, nil, "https://f", true},
		{"image", ImageLink{URL: "https://i"}, nil, "https://i", true},
		{"document", DocumentLink{ID: "1", Type: "post", Slug: "hello"}, resolve, "/post/1/hello", true},
		{"document without resolver", DocumentLink{ID: "1"}, nil, "", false},
		{"broken document", DocumentLink{ID: "1", Broken: true}, resolve, "", false},
		{"nil link", nil, resolve, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Href(tt.link, tt.resolve)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLinkType(t *testing.T) {
	assert.Equal(t, "Link.web", WebLink{}.LinkType())
	assert.Equal(t, "Link.document", DocumentLink{}.LinkType())
	assert.Equal(t, "Link.file", FileLink{}.LinkType())
	assert.Equal(t, "Link.image", ImageLink{}.LinkType())
}
