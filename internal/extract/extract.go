package extract

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/ledongthuc/pdf"

	"replygen/internal/models"
)

// ErrTooLarge is returned when an upload exceeds the configured limit.
var ErrTooLarge = errors.New("file too large")

// Text converts an uploaded file into plain text. Files named *.pdf are parsed page by
// page; everything else is decoded as UTF-8 with invalid bytes dropped. An empty upload
// has no text whatever its name.
func Text(file models.UploadedFile) (string, error) {
	if len(file.Data) == 0 {
		return "", nil
	}
	if strings.HasSuffix(file.Filename, ".pdf") {
		pages, err := pdfPages(file.Data)
		if err != nil {
			return "", err
		}
		return strings.Join(pages, "\n"), nil
	}
	return strings.ToValidUTF8(string(file.Data), ""), nil
}

func pdfPages(data []byte) (pages []string, err error) {
	// the pdf lexer panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			pages, err = nil, fmt.Errorf("malformed pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	numPages := reader.NumPage()
	pages = make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("read pdf page %d: %w", i, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// Read loads a multipart file part into memory, rejecting parts larger than limit bytes.
// A non-positive limit disables the check.
func Read(header *multipart.FileHeader, limit int64) (models.UploadedFile, error) {
	if header == nil {
		return models.UploadedFile{}, errors.New("file header required")
	}
	if limit > 0 && header.Size > limit {
		return models.UploadedFile{}, ErrTooLarge
	}
	f, err := header.Open()
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if limit > 0 {
		r = io.LimitReader(f, limit+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return models.UploadedFile{}, fmt.Errorf("read upload: %w", err)
	}
	if limit > 0 && int64(len(data)) > limit {
		return models.UploadedFile{}, ErrTooLarge
	}
	return models.UploadedFile{Filename: header.Filename, Data: data}, nil
}
