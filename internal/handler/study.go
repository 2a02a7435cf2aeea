package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"study-buddy/backend/internal/assistant/prompt"
	"study-buddy/backend/internal/extract"
	"study-buddy/backend/internal/model"
)

type ExplainRequest struct {
	Topic      string `json:"topic" binding:"max=500"`
	Difficulty string `json:"difficulty"`
	Subject    string `json:"subject"`
}

type SummarizeRequest struct {
	Text   string `json:"text"`
	Length string `json:"length"`
}

type QuizRequest struct {
	Topic        string `json:"topic" binding:"max=500"`
	Count        int    `json:"count"`
	QuestionType string `json:"questionType"`
	Difficulty   string `json:"difficulty"`
}

type FlashcardsRequest struct {
	Topic string `json:"topic" binding:"max=500"`
	Count int    `json:"count"`
}

// GenerateResponse is returned by every non-chat generation endpoint.
type GenerateResponse struct {
	Mode        model.Mode       `json:"mode"`
	Text        string           `json:"text"`
	Cards       []model.Card     `json:"cards,omitempty"`
	Questions   []model.Question `json:"questions,omitempty"`
	ArtifactID  string           `json:"artifactId,omitempty"`
	Filename    string           `json:"filename,omitempty"`
	DownloadURL string           `json:"downloadUrl,omitempty"`
}

func (h *Handler) HandleExplain(c *gin.Context) {
	var req ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidRequest(c, err)
		return
	}
	h.generate(c, prompt.Request{
		Mode:       model.ModeExplain,
		Topic:      req.Topic,
		Difficulty: req.Difficulty,
		Subject:    req.Subject,
	})
}

func (h *Handler) HandleQuiz(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidRequest(c, err)
		return
	}
	h.generate(c, prompt.Request{
		Mode:         model.ModeQuiz,
		Topic:        req.Topic,
		Count:        req.Count,
		QuestionType: req.QuestionType,
		Difficulty:   req.Difficulty,
	})
}

func (h *Handler) HandleFlashcards(c *gin.Context) {
	var req FlashcardsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidRequest(c, err)
		return
	}
	h.generate(c, prompt.Request{
		Mode:  model.ModeFlashcards,
		Topic: req.Topic,
		Count: req.Count,
	})
}

// HandleSummarize accepts either a JSON body with text, or a multipart form
// with a file upload (PDF, TXT or DOCX) and an optional length field.
func (h *Handler) HandleSummarize(c *gin.Context) {
	var req SummarizeRequest

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		h.limitBody(c)
		form, err := c.MultipartForm()
		if err != nil {
			h.respondError(c, h.formError(err), nil)
			return
		}
		req.Length = c.PostForm("length")
		req.Text = c.PostForm("text")
		if len(form.File["file"]) > 0 {
			text, _, err := h.readUpload(c)
			if err != nil {
				h.respondError(c, err, nil)
				return
			}
			req.Text = text
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		h.invalidRequest(c, err)
		return
	}

	h.generate(c, prompt.Request{
		Mode:   model.ModeSummarize,
		Text:   req.Text,
		Length: req.Length,
	})
}

// generate runs the assistant and stores the result for download.
func (h *Handler) generate(c *gin.Context, req prompt.Request) {
	res, err := h.assistant.Run(c.Request.Context(), req, nil)
	if err != nil {
		h.respondError(c, err, nil)
		return
	}

	resp := GenerateResponse{
		Mode:      res.Output.Mode,
		Text:      res.Output.Text,
		Cards:     res.Output.Cards,
		Questions: res.Output.Questions,
	}

	if h.artifacts != nil {
		artifact, err := h.artifacts.Save(c.Request.Context(), res.Request.Mode, res.Request.Topic, res.Output.Text)
		if err != nil {
			// The answer is still useful without a download link.
			h.log.Warn("failed to store artifact", "mode", res.Request.Mode, "error", err)
		} else {
			resp.ArtifactID = artifact.ID
			resp.Filename = artifact.Filename
			resp.DownloadURL = "/api/artifacts/" + artifact.ID + "/download"
		}
	}

	c.JSON(http.StatusOK, resp)
}

// HandleExtract returns the text of an uploaded file without calling the model.
func (h *Handler) HandleExtract(c *gin.Context) {
	h.limitBody(c)
	text, filename, err := h.readUpload(c)
	if err != nil {
		h.respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"filename":   filename,
		"text":       text,
		"characters": len([]rune(text)),
	})
}

// limitBody caps the request body at the upload limit plus room for the
// multipart envelope and form fields.
func (h *Handler) limitBody(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload+1<<20)
}

// readUpload extracts text from the multipart "file" field.
func (h *Handler) readUpload(c *gin.Context) (string, string, error) {
	fh, err := c.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return "", "", uploadError("a file field named \"file\" is required", err)
	}
	if err != nil {
		return "", "", h.formError(err)
	}
	if fh.Size > h.maxUpload {
		return "", fh.Filename, uploadError("file exceeds the "+sizeLabel(h.maxUpload)+" limit", nil)
	}

	kind, err := extract.KindFor(fh.Header.Get("Content-Type"), fh.Filename)
	if err != nil {
		return "", fh.Filename, err
	}

	f, err := fh.Open()
	if err != nil {
		return "", fh.Filename, uploadError("could not open upload", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxUpload+1))
	if err != nil {
		return "", fh.Filename, uploadError("could not read upload", err)
	}

	text, err := h.extractor.Extract(c.Request.Context(), data, kind)
	if err != nil {
		h.log.Info("extraction failed", "filename", fh.Filename, "kind", kind, "error", err)
		return "", fh.Filename, err
	}
	h.log.Info("file extracted", "filename", fh.Filename, "kind", kind, "characters", len([]rune(text)))
	return text, fh.Filename, nil
}
