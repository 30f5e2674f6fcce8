package structuredtext

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ========================================
// Encode Tests
// ========================================

func TestEncodeString(t *testing.T) {
	doc := Document{NewParagraph("Hello", Strong(0, 5))}
	result, err := EncodeString(doc)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "paragraph", decoded[0]["type"])
	assert.Equal(t, "Hello", decoded[0]["text"])
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestEncodeSpans(t *testing.T) {
	doc := Document{NewParagraph("a <b>",
		Hyperlink(0, 1, DocumentLink{ID: "x", Type: "post", Broken: true}),
		Emphasis(2, 5),
	)}

	out, err := EncodeString(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"paragraph","text":"a <b>","spans":[
		{"type":"hyperlink","start":0,"end":1,"data":{"type":"Link.document","value":{"document":{"id":"x","type":"post"},"isBroken":true}}},
		{"type":"em","start":2,"end":5}
	]}]`, out)
}

func TestEncodeBuiltFragments(t *testing.T) {
	doc := Document{
		&ImageBlock{View: &ImageView{URL: "https://img", Width: 1, Height: 2}},
		&EmbedBlock{Object: &Embed{Type: "rich", URL: "https://e", Markup: "<b>x</b>"}},
	}

	out, err := EncodeString(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"type":"image","url":"https://img","alt":"","copyright":"","dimensions":{"width":1,"height":2}},
		{"type":"embed","oembed":{"type":"rich","provider_name":"","embed_url":"https://e","width":0,"height":0,"html":"<b>x</b>"}}
	]`, out)
}

func TestRoundTrip(t *testing.T) {
	input := `[
		{"type":"heading2","text":"Title","spans":[{"type":"strong","start":0,"end":5}]},
		{"type":"paragraph","text":"links","spans":[
			{"type":"hyperlink","start":0,"end":1,"data":{"type":"Link.web","value":{"url":"https://w"}}},
			{"type":"hyperlink","start":1,"end":2,"data":{"type":"Link.document","value":{"document":{"id":"d","type":"t","slug":"s","tags":["a"]},"isBroken":false}}},
			{"type":"hyperlink","start":2,"end":3,"data":{"type":"Link.file","value":{"file":{"url":"https://f","kind":"document","name":"f.pdf","size":10}}}},
			{"type":"hyperlink","start":3,"end":4,"data":{"type":"Link.image","value":{"image":{"url":"https://i","name":"i.png","size":5,"width":3,"height":4}}}}
		]},
		{"type":"o-list-item","text":"one"},
		{"type":"preformatted","text":"code","spans":[{"type":"strong","start":0,"end":4}]},
		{"type":"image","url":"https://img","alt":"A","copyright":"","dimensions":{"width":1,"height":2},"linkTo":null},
		{"type":"embed","oembed":{"type":"video","embed_url":"https://e","provider_name":"Vimeo","html":"<i></i>"}}
	]`

	doc, err := DecodeString(input)
	require.NoError(t, err)

	output, err := EncodeString(doc)
	require.NoError(t, err)

	doc2, err := DecodeString(output)
	require.NoError(t, err)

	if diff := cmp.Diff(doc, doc2); diff != "" {
		t.Errorf("round trip mismatch (-first +second):\n%s", diff)
	}
	_, ok := doc2[4].(*ImageBlock).Raw["linkTo"]
	assert.True(t, ok, "raw image fields should survive")
}

func TestEncodeRejectsHeadingLevel(t *testing.T) {
	for _, level := range []int{0, 5} {
		_, err := EncodeString(Document{NewHeading(level, "x")})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrHeadingLevel), "level %d", level)
	}

	out, err := EncodeString(Document{NewHeading(4, "x")})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"type":"heading4","text":"x"}]`, out)
}
