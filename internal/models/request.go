package models

const (
	DefaultTone     = "Professional"
	DefaultStrategy = "Standard"
)

// ReplyRequest carries the extracted inputs of a generate-reply call.
type ReplyRequest struct {
	PDFText   string
	EmailText string
	Tone      string
	Strategy  Strategy
}

// FollowupRequest asks for a revision of a previously generated reply.
type FollowupRequest struct {
	Previous string `json:"previous"`
	Prompt   string `json:"prompt"`
}
