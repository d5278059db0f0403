// Package markdown renders the rich-text profile fields to HTML. The
// pipeline is built once at startup and is safe for concurrent use.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var pipeline = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

func ToHTML(source string) (string, error) {
	var sb strings.Builder
	if err := pipeline.Convert([]byte(source), &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
