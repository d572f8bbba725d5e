// Package ssr renders chat message content to HTML on the server. Replies
// come back from the model as markdown-ish text; we convert it and tame the
// result so it sits well inside a chat bubble.
package ssr

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/parkdui/LG-Thingo/internal/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
	nethtml "golang.org/x/net/html"
)

// markdown keeps hard wraps because chat replies use single newlines for
// pacing. Raw HTML in the input is not rendered, which keeps model output
// from injecting markup.
var markdown = goldmark.New(
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// RenderMessage converts one message's markdown content into chat-bubble
// HTML: links open in a new tab and the outcome is safe to inline.
func RenderMessage(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(content), &buf); err != nil {
		return "", errors.Wrap(err, "convert markdown")
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return "", errors.Wrap(err, "parse rendered markdown")
	}

	doc.Find("a").Each(func(_ int, s *goquery.Selection) {
		s.SetAttr("target", "_blank")
		s.SetAttr("rel", "noopener")
	})

	// goquery wraps the fragment in html/body; render only the body children.
	var out strings.Builder
	body := doc.Find("body")
	if len(body.Nodes) > 0 {
		for c := body.Nodes[0].FirstChild; c != nil; c = c.NextSibling {
			if err = nethtml.Render(&out, c); err != nil {
				return "", errors.Wrap(err, "render html")
			}
		}
	}
	return template.HTML(out.String()), nil //nolint:gosec // raw HTML in the source is escaped by the renderer.
}
