package structuredtext

import (
	"strings"
)

// Link is the target of a hyperlink span. The set of implementations is
// closed: WebLink, DocumentLink, FileLink and ImageLink.
type Link interface {
	// LinkType returns the wire type, e.g. "Link.web".
	LinkType() string
	isLink()
}

// WebLink points at an external URL.
type WebLink struct {
	URL string
}

// DocumentLink references another document. It has no URL of its own; a
// LinkResolver turns it into one.
type DocumentLink struct {
	ID     string
	Type   string
	Slug   string
	Tags   []string
	Broken bool
}

// FileLink points at an uploaded file.
type FileLink struct {
	URL      string
	Kind     string
	Filename string
	Size     int64
}

// ImageLink points at an uploaded image.
type ImageLink struct {
	URL      string
	Filename string
	Size     int64
	Width    int
	Height   int
}

const (
	linkWeb      = "Link.web"
	linkDocument = "Link.document"
	linkFile     = "Link.file"
	linkImage    = "Link.image"
)

func (WebLink) LinkType() string      { return linkWeb }
func (DocumentLink) LinkType() string { return linkDocument }
func (FileLink) LinkType() string     { return linkFile }
func (ImageLink) LinkType() string    { return linkImage }

func (WebLink) isLink()      {}
func (DocumentLink) isLink() {}
func (FileLink) isLink()     {}
func (ImageLink) isLink()    {}

// LinkResolver maps a document reference to a URL. It returns false when the
// reference cannot be resolved. Implementations must not panic.
type LinkResolver func(link DocumentLink) (string, bool)

// ResolveWith returns a resolver that substitutes {id}, {type} and {slug} in
// pattern. Broken links and links without an id do not resolve.
func ResolveWith(pattern string) LinkResolver {
	return func(link DocumentLink) (string, bool) {
		if link.Broken || link.ID == "" {
			return "", false
		}
		r := strings.NewReplacer(
			"{id}", link.ID,
			"{type}", link.Type,
			"{slug}", link.Slug,
		)
		return r.Replace(pattern), true
	}
}

// Href returns the URL a link points at. Document links go through resolve;
// a nil resolver resolves nothing.
func Href(link Link, resolve LinkResolver) (string, bool) {
	switch l := link.(type) {
	case WebLink:
		return l.URL, true
	case FileLink:
		return l.URL, true
	case ImageLink:
		return l.URL, true
	case DocumentLink:
		if resolve == nil {
			return "", false
		}
		return resolve(l)
	}
	return "", false
}

// ExtractLink builds a Link from a {"type": ..., "value": ...} payload.
// It returns false for unknown types and malformed values.
func ExtractLink(v any) (Link, bool) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	t, _ := obj["type"].(string)
	value, ok := obj["value"].(map[string]any)
	if !ok {
		return nil, false
	}

	switch t {
	case linkWeb:
		return parseWebLink(value)
	case linkDocument:
		return parseDocumentLink(value)
	case linkFile:
		return parseFileLink(value)
	case linkImage:
		return parseImageLink(value)
	}
	return nil, false
}

func parseWebLink(value map[string]any) (Link, bool) {
	url, ok := value["url"].(string)
	if !ok {
		return nil, false
	}
	return WebLink{URL: url}, true
}

func parseDocumentLink(value map[string]any) (Link, bool) {
	doc, ok := value["document"].(map[string]any)
	if !ok {
		return nil, false
	}
	id, ok := doc["id"].(string)
	if !ok {
		return nil, false
	}
	link := DocumentLink{ID: id}
	link.Type, _ = doc["type"].(string)
	link.Slug, _ = doc["slug"].(string)
	if tags, ok := doc["tags"].([]any); ok {
		for _, t := range tags {
			if s, ok := t.(string); ok {
				link.Tags = append(link.Tags, s)
			}
		}
	}
	link.Broken, _ = value["isBroken"].(bool)
	return link, true
}

func parseFileLink(value map[string]any) (Link, bool) {
	file, ok := value["file"].(map[string]any)
	if !ok {
		return nil, false
	}
	url, ok := file["url"].(string)
	if !ok {
		return nil, false
	}
	link := FileLink{URL: url}
	link.Kind, _ = file["kind"].(string)
	link.Filename, _ = file["name"].(string)
	if n, ok := toInt(file["size"]); ok {
		link.Size = int64(n)
	}
	return link, true
}

func parseImageLink(value map[string]any) (Link, bool) {
	img, ok := value["image"].(map[string]any)
	if !ok {
		return nil, false
	}
	url, ok := img["url"].(string)
	if !ok {
		return nil, false
	}
	link := ImageLink{URL: url}
	link.Filename, _ = img["name"].(string)
	if n, ok := toInt(img["size"]); ok {
		link.Size = int64(n)
	}
	link.Width, _ = toInt(img["width"])
	link.Height, _ = toInt(img["height"])
	return link, true
}

// linkValue is the inverse of ExtractLink, used by Encode.
func linkValue(link Link) map[string]any {
	switch l := link.(type) {
	case WebLink:
		return map[string]any{"url": l.URL}
	case DocumentLink:
		doc := map[string]any{"id": l.ID}
		if l.Type != "" {
			doc["type"] = l.Type
		}
		if l.Slug != "" {
			doc["slug"] = l.Slug
		}
		if l.Tags != nil {
			doc["tags"] = l.Tags
		}
		return map[string]any{"document": doc, "isBroken": l.Broken}
	case FileLink:
		file := map[string]any{"url": l.URL}
		if l.Kind != "" {
			file["kind"] = l.Kind
		}
		if l.Filename != "" {
			file["name"] = l.Filename
		}
		if l.Size != 0 {
			file["size"] = l.Size
		}
		return map[string]any{"file": file}
	case ImageLink:
		img := map[string]any{"url": l.URL}
		if l.Filename != "" {
			img["name"] = l.Filename
		}
		if l.Size != 0 {
			img["size"] = l.Size
		}
		if l.Width != 0 {
			img["width"] = l.Width
		}
		if l.Height != 0 {
			img["height"] = l.Height
		}
		return map[string]any{"image": img}
	}
	return nil
}
