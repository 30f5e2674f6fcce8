package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = `[
	{"type":"heading1","text":"Guide","spans":[]},
	{"type":"paragraph","text":"See the docs.","spans":[
		{"type":"hyperlink","start":8,"end":12,"data":{"type":"Link.document","value":{"document":{"id":"d1","type":"page","slug":"docs"},"isBroken":false}}}
	]},
	{"type":"heading2","text":"Setup","spans":[]},
	{"type":"list-item","text":"<install>","spans":[{"type":"strong","start":0,"end":9}]},
	{"type":"list-item","text":"run","spans":[]}
]`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := Root()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestHTMLCmd(t *testing.T) {
	path := writeFixture(t, fixture)

	out, err := execute(t, "", "html", path)
	require.NoError(t, err)
	assert.Equal(t,
		`<h1>Guide</h1><p>See the <a href="/page/d1">docs</a>.</p><h2>Setup</h2><ul><li><strong>&lt;install&gt;</strong></li><li>run</li></ul>`+"\n",
		out)
}

func TestHTMLCmdLinkPattern(t *testing.T) {
	path := writeFixture(t, fixture)

	out, err := execute(t, "", "--link-pattern", "https://site/{slug}", "html", path)
	require.NoError(t, err)
	assert.Contains(t, out, `<a href="https://site/docs">docs</a>`)
}

func TestHTMLCmdStdin(t *testing.T) {
	out, err := execute(t, `[{"type":"paragraph","text":"x"}]`, "html", "-")
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>\n", out)
}

func TestHTMLCmdSanitize(t *testing.T) {
	doc := `[{"type":"embed","oembed":{"type":"rich","embed_url":"https://e","html":"<script>alert(1)</script><b>ok</b>"}}]`
	path := writeFixture(t, doc)

	out, err := execute(t, "", "html", "--sanitize", path)
	require.NoError(t, err)
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "<b>ok</b>")
}

func TestHTMLCmdStrict(t *testing.T) {
	doc := `[{"type":"paragraph","text":"hello world","spans":[
		{"type":"strong","start":0,"end":5},
		{"type":"em","start":3,"end":8}
	]}]`
	path := writeFixture(t, doc)

	_, err := execute(t, "", "html", path)
	require.NoError(t, err)

	_, err = execute(t, "", "html", "--strict", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document has 1 problems")
}

func TestHTMLCmdInvalidDocument(t *testing.T) {
	path := writeFixture(t, `[{"type":"paragraph"}]`)

	_, err := execute(t, "", "html", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing text")
}

func TestHTMLCmdMissingFile(t *testing.T) {
	_, err := execute(t, "", "html", filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open file")
}

func TestTextCmd(t *testing.T) {
	path := writeFixture(t, fixture)

	out, err := execute(t, "", "text", path)
	require.NoError(t, err)
	assert.Equal(t, "Guide\nSee the docs.\nSetup\n<install>\nrun\n", out)
}

func TestOutlineCmd(t *testing.T) {
	path := writeFixture(t, fixture)

	out, err := execute(t, "", "outline", path)
	require.NoError(t, err)
	assert.Equal(t, "Title: Guide\n- Guide\n  - Setup\n", out)
}

func TestValidateCmd(t *testing.T) {
	path := writeFixture(t, fixture)
	_, err := execute(t, "", "validate", path)
	require.NoError(t, err)

	bad := writeFixture(t, `[{"type":"paragraph","text":"abc","spans":[
		{"type":"strong","start":0,"end":9},
		{"type":"hyperlink","start":0,"end":1,"data":{"type":"Link.document","value":{"document":{"id":"x"},"isBroken":true}}}
	]}]`)
	out, err := execute(t, "", "validate", bad)
	require.Error(t, err)
	assert.Equal(t, "found 2 problems", err.Error())
	assert.Contains(t, out, "[0].spans[0]: end 9 past text length 3")
	assert.Contains(t, out, `[0].spans[1]: document link "x" does not resolve`)
}
