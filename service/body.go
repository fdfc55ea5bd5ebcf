package service

import (
	"bytes"
	"strings"
)

type bodyKind int

const (
	bodyJSON bodyKind = iota
	bodyHTML
	bodyText
)

// classifyBody decides how a response body should be interpreted before any
// parsing is attempted. The leading non-whitespace character is sniffed
// first: backends behind a misconfigured proxy are known to serve HTML
// interstitials with a JSON content type, so a '<' lead overrides whatever
// the header declares. When the body gives no hint the declared media type
// decides, and anything else is treated as opaque text.
func classifyBody(contentType string, raw []byte) bodyKind {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 {
		switch trimmed[0] {
		case '<':
			return bodyHTML
		case '{', '[':
			return bodyJSON
		}
	}

	mediaType := contentType
	if i := strings.IndexByte(mediaType, ';'); i >= 0 {
		mediaType = mediaType[:i]
	}
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))

	switch {
	case mediaType == "application/json", strings.HasSuffix(mediaType, "+json"):
		return bodyJSON
	case mediaType == "text/html", mediaType == "application/xhtml+xml":
		return bodyHTML
	default:
		return bodyText
	}
}
