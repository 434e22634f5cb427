package translation

import (
	"fmt"

	"github.com/valpere/bhasha/internal/language"
	"github.com/valpere/bhasha/internal/translator"
)

const systemPrompt = "You are a skilled translator for Indian languages. " +
	"Your translations should be accurate, natural, and culturally fitting."

// BuildMessages returns the system and user messages for one translation.
// The source text is fenced by "---" lines and embedded verbatim.
func BuildMessages(target language.Language, text string) []translator.Message {
	return []translator.Message{
		{Role: translator.RoleSystem, Content: systemPrompt},
		{
			Role:    translator.RoleUser,
			Content: fmt.Sprintf("Please translate the following text into %s:\n\n---\n%s\n---", target, text),
		},
	}
}
