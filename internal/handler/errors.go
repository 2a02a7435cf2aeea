package handler

import (
	"errors"
	"net/http"
	"strconv"

	"study-buddy/backend/internal/apperr"
)

func uploadError(message string, err error) error {
	return apperr.Extraction(apperr.CodeExtraction, message, err)
}

// formError reports a multipart body that could not be parsed.
func (h *Handler) formError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return uploadError("upload is too large (limit "+sizeLabel(h.maxUpload)+")", err)
	}
	return uploadError("could not read the uploaded form", err)
}

func sizeLabel(n int64) string {
	if n >= 1<<20 {
		return strconv.FormatInt(n>>20, 10) + " MiB"
	}
	return strconv.FormatInt(n>>10, 10) + " KiB"
}
