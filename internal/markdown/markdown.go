// Package markdown renders the help panels of the translator (the intro and
// the API key setup guide) from Markdown for the web view and the CLI.
package markdown

import (
	"bytes"
	stdhtml "html"
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// ToHTML renders md to an HTML fragment. Links open in a new tab.
func ToHTML(md []byte) string {
	opts := html.RendererOptions{
		Flags: html.CommonFlags | html.HrefTargetBlank,
	}
	renderer := html.NewRenderer(opts)
	p := parser.NewWithExtensions(parser.CommonExtensions)
	doc := p.Parse(md)
	return string(markdown.Render(doc, renderer))
}

// Fragment is ToHTML for trusted, embedded documents only: the result is
// marked safe for html/template.
func Fragment(md []byte) template.HTML {
	return template.HTML(ToHTML(md))
}

// ToPlainText renders md and strips the tags, collapsing runs of blank lines.
func ToPlainText(md []byte) string {
	text := StripHTMLTags(ToHTML(md))
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// StripHTMLTags drops tags and unescapes entities.
func StripHTMLTags(htmlContent string) string {
	var result bytes.Buffer
	inTag := false

	for _, ch := range htmlContent {
		switch ch {
		case '<':
			inTag = true
		case '>':
			inTag = false
		default:
			if !inTag {
				result.WriteRune(ch)
			}
		}
	}

	return stdhtml.UnescapeString(result.String())
}
