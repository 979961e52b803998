package assistant

import (
	"context"
	"errors"
	"strings"

	"replygen/internal/models"
	"replygen/internal/prompt"
	"replygen/internal/service/ai"
)

const (
	NoInputReply     = "No input provided!"
	NoPDFTextSummary = "No text found in the uploaded PDF."
	NoEmailSummary   = "No text found in the uploaded email."
)

// Completer performs one completion call.
type Completer interface {
	Complete(ctx context.Context, prompt string, temperature float32) models.Completion
}

// Service turns extracted text into replies and summaries.
type Service struct {
	completer Completer
}

func NewService(completer Completer) (*Service, error) {
	if completer == nil {
		return nil, errors.New("completer required")
	}
	return &Service{completer: completer}, nil
}

// GenerateReply answers the email (and/or PDF) using the requested strategy and tone.
func (s *Service) GenerateReply(ctx context.Context, req models.ReplyRequest) models.Completion {
	if req.PDFText == "" && req.EmailText == "" {
		return models.CompletionText(NoInputReply)
	}
	tone := req.Tone
	if tone == "" {
		tone = models.DefaultTone
	}
	p := prompt.Reply(req.EmailText, req.PDFText, tone, req.Strategy)
	return s.completer.Complete(ctx, p, ai.TemperatureReply)
}

func (s *Service) SummarizePDF(ctx context.Context, pdfText string) models.Completion {
	if strings.TrimSpace(pdfText) == "" {
		return models.CompletionText(NoPDFTextSummary)
	}
	return s.completer.Complete(ctx, prompt.PDFSummary(pdfText), ai.TemperatureSummary)
}

func (s *Service) SummarizeEmail(ctx context.Context, emailText string) models.Completion {
	if strings.TrimSpace(emailText) == "" {
		return models.CompletionText(NoEmailSummary)
	}
	return s.completer.Complete(ctx, prompt.EmailSummary(emailText), ai.TemperatureSummary)
}

// Followup revises a previously generated reply according to the user's instruction.
func (s *Service) Followup(ctx context.Context, req models.FollowupRequest) models.Completion {
	return s.completer.Complete(ctx, prompt.Followup(req.Previous, req.Prompt), ai.TemperatureReply)
}
