// Package extract turns uploaded study material into plain text.
package extract

import (
	"context"
	"mime"
	"path/filepath"
	"strings"

	"study-buddy/backend/internal/apperr"
)

// Kind is the declared format of an upload.
type Kind string

const (
	KindPlain Kind = "text/plain"
	KindPDF   Kind = "application/pdf"
	KindDOCX  Kind = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Extractor reads text out of plain, PDF and DOCX uploads.
type Extractor struct{}

func New() *Extractor {
	return &Extractor{}
}

// KindFor resolves the format from a declared content type, falling back to
// the filename extension when the type is missing or generic.
func KindFor(contentType, filename string) (Kind, error) {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch Kind(mediaType) {
		case KindPlain, KindPDF, KindDOCX:
			return Kind(mediaType), nil
		}
	}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".txt", ".md":
		return KindPlain, nil
	case ".pdf":
		return KindPDF, nil
	case ".docx":
		return KindDOCX, nil
	}
	return "", apperr.Extraction(apperr.CodeUnsupported,
		"unsupported file type (expected PDF, TXT or DOCX)", nil)
}

// Extract returns the text content of data. The result is trimmed; a document
// without any text is an extraction error.
func (e *Extractor) Extract(ctx context.Context, data []byte, kind Kind) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", apperr.Extraction(apperr.CodeExtraction, "extraction cancelled", err)
	}

	var (
		text string
		err  error
	)
	switch kind {
	case KindPlain:
		text, err = extractPlain(data)
	case KindPDF:
		text, err = extractPDF(data)
	case KindDOCX:
		text, err = extractDOCX(data)
	default:
		return "", apperr.Extraction(apperr.CodeUnsupported, "unsupported file type "+string(kind), nil)
	}
	if err != nil {
		return "", err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", apperr.Extraction(apperr.CodeExtraction, "no readable text found in file", nil)
	}
	return text, nil
}
