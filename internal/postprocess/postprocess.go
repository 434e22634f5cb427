// Package postprocess strips wrapper text that chat models sometimes put
// around a translation. It is opt-in (translate.clean_output); by default the
// service only trims whitespace.
package postprocess

import (
	"regexp"
	"strings"
)

// Clean runs every cleanup phase in order and returns the trimmed result:
//  1. reasoning blocks (<think>, <thinking>, <reasoning>, <reflection>)
//  2. a leading "Here is the Tamil translation:" style preamble
//  3. echoed "---" fences from the prompt
//  4. quotes wrapping the whole text
func Clean(text string) string {
	text = removeThinkingBlocks(text)
	text = removePreamble(text)
	text = removeFences(text)
	text = removeQuoteWrapping(text)
	return strings.TrimSpace(text)
}

// RE2 has no backreferences, so every tag pair is spelled out.
var thinkingBlockRe = regexp.MustCompile(
	`(?is)<thinking>.*?</thinking>|<think>.*?</think>|<reasoning>.*?</reasoning>|<reflection>.*?</reflection>`,
)

// An opening tag with no closing tag: the model was cut off by max_tokens.
var truncatedThinkingRe = regexp.MustCompile(
	`(?is)(?:<thinking>|<think>|<reasoning>|<reflection>).*$`,
)

func removeThinkingBlocks(text string) string {
	text = thinkingBlockRe.ReplaceAllString(text, "")
	text = truncatedThinkingRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// Preambles are anchored at the start and must end with a colon, so a
// translation that merely begins with "Here is" survives.
var preamblePatterns = []*regexp.Regexp{
	// Here is / Here's [the] [Tamil] translation [in Tamil]:
	regexp.MustCompile(`(?i)^here(?:'s| is)(?: the| your)?(?: [\p{L}]+)? (?:translation|translated text)(?: (?:in|into) [\p{L}]+)?\s*:`),
	// Sure / Certainly / Of course[,] here is ...:
	regexp.MustCompile(`(?i)^(?:certainly|sure|of course)[,.!]? here(?:'s| is)(?: the| your)?(?: [\p{L}]+)? (?:translation|translated text)(?: (?:in|into) [\p{L}]+)?\s*:`),
	// [The] [Tamil] translation [in Tamil]:
	regexp.MustCompile(`(?i)^(?:the )?(?:[\p{L}]+ )?(?:translation|translated text)(?: (?:in|into) [\p{L}]+)?\s*:`),
}

func removePreamble(text string) string {
	for _, re := range preamblePatterns {
		if loc := re.FindStringIndex(text); loc != nil {
			return strings.TrimSpace(text[loc[1]:])
		}
	}
	return text
}

func removeFences(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "---" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "---" {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

var quotePairs = map[rune]rune{
	'"':      '"',
	'\'':     '\'',
	'«':      '»',
	'\u201C': '\u201D',
	'\u2018': '\u2019',
}

func removeQuoteWrapping(text string) string {
	runes := []rune(text)
	n := len(runes)
	if n < 2 {
		return text
	}
	if closing, ok := quotePairs[runes[0]]; ok && runes[n-1] == closing {
		return strings.TrimSpace(string(runes[1 : n-1]))
	}
	return text
}
