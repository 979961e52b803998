package prompt

import (
	"fmt"

	"replygen/internal/models"
)

const summarizePDFTemplate = `You're an assistant that first summarizes the attached PDF, then replies to the email using the tone: %[1]s.

Step 1: Summarize PDF.
Step 2: Generate a thoughtful reply to the email using both the email and summarized PDF.

Email:
%[2]s

PDF:
%[3]s
`

const conciseTemplate = `Reply to the following email concisely, using the tone: %[1]s.
Attached PDF content may help, but keep your response short and effective.

Email:
%[2]s

PDF:
%[3]s
`

const elaborateTemplate = `Generate a detailed and thoughtful reply to the following email. Use the tone: %[1]s and draw insights from the PDF when helpful.

Email:
%[2]s

PDF:
%[3]s
`

// Omits the PDF text.
const emailOnlyTemplate = `Write a reply using only the email content below. Ignore the PDF entirely. Tone: %[1]s

Email:
%[2]s
`

const standardTemplate = `You're a helpful assistant generating smart and personalized email replies.

Use the tone: %[1]s

Email thread:
%[2]s

PDF content:
%[3]s

Write a reply in the specified tone that continues the conversation naturally.
`

const pdfSummaryTemplate = `Summarize the following document in 2-3 concise sentences for quick understanding:

%s
`

const emailSummaryTemplate = `Summarize the following email thread into 2-3 concise sentences:

%s
`

const followupTemplate = `You previously wrote this email reply:

"""%s"""

Now the user has a follow-up request:

"""%s"""

Please revise the email reply accordingly.
`

// Reply builds the reply-generation prompt for the given strategy. Tone is passed through verbatim.
func Reply(emailText, pdfText, tone string, strategy models.Strategy) string {
	switch strategy {
	case models.StrategySummarizePDF:
		return fmt.Sprintf(summarizePDFTemplate, tone, emailText, pdfText)
	case models.StrategyConcise:
		return fmt.Sprintf(conciseTemplate, tone, emailText, pdfText)
	case models.StrategyElaborate:
		return fmt.Sprintf(elaborateTemplate, tone, emailText, pdfText)
	case models.StrategyEmailOnly:
		return fmt.Sprintf(emailOnlyTemplate, tone, emailText)
	default:
		return fmt.Sprintf(standardTemplate, tone, emailText, pdfText)
	}
}

func PDFSummary(pdfText string) string {
	return fmt.Sprintf(pdfSummaryTemplate, pdfText)
}

func EmailSummary(emailText string) string {
	return fmt.Sprintf(emailSummaryTemplate, emailText)
}

// Followup asks the model to revise previous according to instruction.
func Followup(previous, instruction string) string {
	return fmt.Sprintf(followupTemplate, previous, instruction)
}
