package internal

import "github.com/valpere/bhasha/internal/language"

// TranslationRequest is the full input of one translation. Two requests with
// equal fields are the same request for memoization purposes.
type TranslationRequest struct {
	APIKey         string            `json:"-"`
	SourceText     string            `json:"source_text"`
	TargetLanguage language.Language `json:"target_language"`
	Model          string            `json:"model"`
}
