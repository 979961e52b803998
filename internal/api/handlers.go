package api

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"replygen/internal/extract"
	"replygen/internal/models"
	"replygen/internal/ratelimit"
)

const defaultMaxUploadBytes = 10 << 20 // 10 MB

// Assistant produces replies and summaries from extracted text.
type Assistant interface {
	GenerateReply(ctx context.Context, req models.ReplyRequest) models.Completion
	SummarizePDF(ctx context.Context, pdfText string) models.Completion
	SummarizeEmail(ctx context.Context, emailText string) models.Completion
	Followup(ctx context.Context, req models.FollowupRequest) models.Completion
}

// Handler wires HTTP routes to the assistant service.
type Handler struct {
	assistant      Assistant
	limiter        *ratelimit.Limiter
	maxUpload      int64
	allowedOrigins []string
}

// NewHandler constructs a Handler instance. A nil limiter disables rate limiting.
func NewHandler(asst Assistant, limiter *ratelimit.Limiter, maxUpload int64, allowedOrigins []string) *Handler {
	if maxUpload <= 0 {
		maxUpload = defaultMaxUploadBytes
	}
	return &Handler{
		assistant:      asst,
		limiter:        limiter,
		maxUpload:      maxUpload,
		allowedOrigins: allowedOrigins,
	}
}

// RegisterRoutes attaches all HTTP routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.MaxMultipartMemory = h.maxUpload
	router.Use(corsMiddleware(h.allowedOrigins))

	router.GET("/healthz", h.health)
	router.POST("/preview-text", h.limitBody(), h.previewText)
	router.POST("/generate-reply", h.limited("/generate-reply"), h.limitBody(), h.generateReply)
	router.POST("/summarize-pdf", h.limited("/summarize-pdf"), h.limitBody(), h.summarizePDF)
	router.POST("/summarize-email", h.limited("/summarize-email"), h.limitBody(), h.summarizeEmail)
	router.POST("/followup-reply", h.limited("/followup-reply"), h.limitBody(), h.followupReply)
}

func (h *Handler) limited(scope string) gin.HandlerFunc {
	if h.limiter == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return ratelimit.Middleware(h.limiter, scope)
}

// limitBody caps the whole request body; two files plus form fields must fit.
func (h *Handler) limitBody() gin.HandlerFunc {
	limit := 2*h.maxUpload + 1<<20
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) generateReply(c *gin.Context) {
	pdfFile, ok := h.formFile(c, "pdf", false)
	if !ok {
		return
	}
	emailFile, ok := h.formFile(c, "email", false)
	if !ok {
		return
	}

	req := models.ReplyRequest{
		Tone:     c.DefaultPostForm("tone", models.DefaultTone),
		Strategy: models.ParseStrategy(c.DefaultPostForm("strategy", models.DefaultStrategy)),
	}
	var err error
	if pdfFile != nil {
		if req.PDFText, err = extract.Text(*pdfFile); err != nil {
			h.respond(c, "reply", models.CompletionError(err))
			return
		}
	}
	if emailFile != nil {
		if req.EmailText, err = extract.Text(*emailFile); err != nil {
			h.respond(c, "reply", models.CompletionError(err))
			return
		}
	}
	h.respond(c, "reply", h.assistant.GenerateReply(c.Request.Context(), req))
}

func (h *Handler) previewText(c *gin.Context) {
	file, ok := h.formFile(c, "file", true)
	if !ok {
		return
	}
	text, err := extract.Text(*file)
	if err != nil {
		h.respond(c, "text", models.CompletionError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

func (h *Handler) summarizePDF(c *gin.Context) {
	file, ok := h.formFile(c, "pdf", true)
	if !ok {
		return
	}
	text, err := extract.Text(*file)
	if err != nil {
		h.respond(c, "summary", models.CompletionError(err))
		return
	}
	h.respond(c, "summary", h.assistant.SummarizePDF(c.Request.Context(), text))
}

func (h *Handler) summarizeEmail(c *gin.Context) {
	file, ok := h.formFile(c, "email", true)
	if !ok {
		return
	}
	text, err := extract.Text(*file)
	if err != nil {
		h.respond(c, "summary", models.CompletionError(err))
		return
	}
	h.respond(c, "summary", h.assistant.SummarizeEmail(c.Request.Context(), text))
}

type followupBody struct {
	Previous *string `json:"previous"`
	Prompt   *string `json:"prompt"`
}

func (h *Handler) followupReply(c *gin.Context) {
	var body followupBody
	if err := c.ShouldBindJSON(&body); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "request body too large"})
			return
		}
		validationError(c, "body", "invalid JSON body", "value_error.jsondecode")
		return
	}
	if body.Previous == nil {
		validationError(c, "previous", "field required", "value_error.missing")
		return
	}
	if body.Prompt == nil {
		validationError(c, "prompt", "field required", "value_error.missing")
		return
	}
	req := models.FollowupRequest{Previous: *body.Previous, Prompt: *body.Prompt}
	h.respond(c, "reply", h.assistant.Followup(c.Request.Context(), req))
}

// formFile reads the named multipart file. It returns (nil, true) for an absent optional
// file and writes the error response itself when ok is false.
func (h *Handler) formFile(c *gin.Context, field string, required bool) (*models.UploadedFile, bool) {
	header, err := c.FormFile(field)
	if err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
			if required {
				validationError(c, field, "field required", "value_error.missing")
				return nil, false
			}
			return nil, true
		case errors.As(err, &maxErr):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
			return nil, false
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid multipart form"})
			return nil, false
		}
	}
	file, err := extract.Read(header, h.maxUpload)
	if err != nil {
		if errors.Is(err, extract.ErrTooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return nil, false
	}
	return &file, true
}

// respond renders a result into the response envelope; failures travel as "Error: ..." with 200.
func (h *Handler) respond(c *gin.Context, field string, result models.Completion) {
	if result.Failed() {
		log.Printf("%s %s failed: %v", c.Request.Method, c.FullPath(), result.Err)
	}
	c.JSON(http.StatusOK, gin.H{field: result.Display()})
}

func validationError(c *gin.Context, field, msg, errType string) {
	loc := []string{"body"}
	if field != "body" {
		loc = append(loc, field)
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"detail": []gin.H{{
			"loc":  loc,
			"msg":  msg,
			"type": errType,
		}},
	})
}
