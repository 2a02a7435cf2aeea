package extract

import (
	"bytes"
	"unicode/utf8"

	"study-buddy/backend/internal/apperr"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func extractPlain(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", apperr.Extraction(apperr.CodeExtraction, "text file is not valid UTF-8", nil)
	}
	return string(data), nil
}
