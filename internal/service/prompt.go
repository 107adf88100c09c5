package service

import (
	"errors"
	"fmt"
)

// ErrPromptTooLarge is returned when the document content plus question
// exceed the configured prompt budget. The policy is rejection, never
// truncation: content is sent whole or not at all.
var ErrPromptTooLarge = errors.New("prompt exceeds size budget")

// promptTemplate instructs the model to answer using only the given
// document content, concisely and accurately.
const promptTemplate = `Based on the following document content, please answer the question.

Document content:
%s

Question: %s

Please provide a concise and accurate answer based only on the information provided in the document.`

// buildPrompt embeds the full document content and the question verbatim
// into the instructional template, enforcing the byte budget first.
// A maxBytes of zero or less disables the budget check.
func buildPrompt(content, question string, maxBytes int) (string, error) {
	overhead := len(promptTemplate) - 4 // minus the two %s verbs
	if maxBytes > 0 && len(content)+len(question)+overhead > maxBytes {
		return "", fmt.Errorf("%w: content %d bytes, budget %d bytes", ErrPromptTooLarge, len(content), maxBytes)
	}
	return fmt.Sprintf(promptTemplate, content, question), nil
}
