package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	got := ToHTML([]byte("# Setup\n\nPut `OPENAI_API_KEY` in [.env](https://example.com)."))

	for _, want := range []string{"<h1", "Setup</h1>", "<code>OPENAI_API_KEY</code>", `target="_blank"`} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
}

func TestFragment(t *testing.T) {
	got := string(Fragment([]byte("**bold**")))
	if !strings.Contains(got, "<strong>bold</strong>") {
		t.Errorf("unexpected fragment %q", got)
	}
}

func TestToPlainText(t *testing.T) {
	md := "# Setup\n\n\n\n1. Create `.env`\n2. Add `OPENAI_API_KEY=sk-...` & restart\n"
	got := ToPlainText([]byte(md))

	if strings.Contains(got, "<") {
		t.Errorf("tags left in %q", got)
	}
	if !strings.HasPrefix(got, "Setup") {
		t.Errorf("expected heading first, got %q", got)
	}
	if !strings.Contains(got, "OPENAI_API_KEY=sk-... & restart") {
		t.Errorf("entities not unescaped in %q", got)
	}
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("blank lines not collapsed in %q", got)
	}
}

func TestStripHTMLTags(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"<p>hello</p>", "hello"},
		{"a &amp; b", "a & b"},
		{"no tags", "no tags"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := StripHTMLTags(tt.input); got != tt.expected {
			t.Errorf("StripHTMLTags(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
