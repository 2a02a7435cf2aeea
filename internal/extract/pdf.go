package extract

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ledongthuc/pdf"

	"study-buddy/backend/internal/apperr"
)

// extractPDF concatenates the plain text of every page.
func extractPDF(data []byte) (text string, err error) {
	// The pdf reader panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = apperr.Extraction(apperr.CodeExtraction, "unreadable PDF", fmt.Errorf("%v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperr.Extraction(apperr.CodeExtraction, "unreadable PDF", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", apperr.Extraction(apperr.CodeExtraction, "read PDF text", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", apperr.Extraction(apperr.CodeExtraction, "read PDF text", err)
	}
	return buf.String(), nil
}
