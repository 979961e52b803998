package models

import "strings"

// Completion is the outcome of one completion call. Exactly one of Text or Err is meaningful.
type Completion struct {
	Text string
	Err  error
}

func CompletionText(text string) Completion {
	return Completion{Text: text}
}

func CompletionError(err error) Completion {
	return Completion{Err: err}
}

func (c Completion) Failed() bool {
	return c.Err != nil
}

// Display renders the completion for a response body; failures become "Error: <desc>".
func (c Completion) Display() string {
	if c.Err != nil {
		return "Error: " + c.Err.Error()
	}
	return strings.TrimSpace(c.Text)
}
