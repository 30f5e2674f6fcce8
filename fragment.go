package structuredtext

import (
	"fmt"
	"html"
	"strings"

	"github.com/pkg/errors"
)

// ImageView is the default Fragment for image blocks.
type ImageView struct {
	URL       string
	Alt       string
	Copyright string
	Width     int
	Height    int
}

// HTML renders the view as an img element.
func (v *ImageView) HTML() string {
	return fmt.Sprintf(`<img alt="%s" src="%s" width="%d" height="%d" />`,
		html.EscapeString(v.Alt), html.EscapeString(v.URL), v.Width, v.Height)
}

// Embed is the default Fragment for embed blocks. HTML holds the markup
// supplied by the oEmbed provider and is emitted as-is.
type Embed struct {
	Type     string
	Provider string
	URL      string
	Width    int
	Height   int
	Markup   string
}

// HTML wraps the provider markup in a div carrying the oEmbed metadata.
func (e *Embed) HTML() string {
	var b strings.Builder
	b.WriteString(`<div data-oembed="`)
	b.WriteString(html.EscapeString(e.URL))
	b.WriteString(`" data-oembed-type="`)
	b.WriteString(html.EscapeString(strings.ToLower(e.Type)))
	b.WriteString(`" data-oembed-provider="`)
	b.WriteString(html.EscapeString(strings.ToLower(e.Provider)))
	b.WriteString(`">`)
	b.WriteString(e.Markup)
	b.WriteString(`</div>`)
	return b.String()
}

// ParseImageView reads an image block: {"url", "alt", "copyright",
// "dimensions": {"width", "height"}}.
func ParseImageView(obj map[string]any) (Fragment, error) {
	url, ok := obj["url"].(string)
	if !ok {
		return nil, errors.Wrap(ErrInvalidFragment, "image without url")
	}
	v := &ImageView{URL: url}
	v.Alt, _ = obj["alt"].(string)
	v.Copyright, _ = obj["copyright"].(string)
	if dims, ok := obj["dimensions"].(map[string]any); ok {
		v.Width, _ = toInt(dims["width"])
		v.Height, _ = toInt(dims["height"])
	}
	return v, nil
}

// ParseEmbed reads an embed block: {"oembed": {"type", "provider_name",
// "embed_url", "width", "height", "html"}}.
func ParseEmbed(obj map[string]any) (Fragment, error) {
	oembed, ok := obj["oembed"].(map[string]any)
	if !ok {
		return nil, errors.Wrap(ErrInvalidFragment, "embed without oembed")
	}
	e := &Embed{}
	e.Type, _ = oembed["type"].(string)
	e.Provider, _ = oembed["provider_name"].(string)
	e.URL, _ = oembed["embed_url"].(string)
	e.Markup, _ = oembed["html"].(string)
	e.Width, _ = toInt(oembed["width"])
	e.Height, _ = toInt(oembed["height"])
	return e, nil
}
