package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"study-buddy/backend/internal/apperr"
)

// MaxDocumentXMLBytes caps the decompressed size of word/document.xml.
const MaxDocumentXMLBytes = 32 << 20

// documentXML is the subset of word/document.xml needed for paragraph text.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// extractDOCX joins paragraph text with newlines.
func extractDOCX(data []byte) (string, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apperr.Extraction(apperr.CodeExtraction, "unreadable DOCX", err)
	}

	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}
		if file.UncompressedSize64 > MaxDocumentXMLBytes {
			return "", errDocumentTooLarge
		}
		rc, err := file.Open()
		if err != nil {
			return "", apperr.Extraction(apperr.CodeExtraction, "open document.xml", err)
		}
		// The header size is not trusted; the reader is capped as well.
		content, err := io.ReadAll(io.LimitReader(rc, MaxDocumentXMLBytes+1))
		rc.Close()
		if err != nil {
			return "", apperr.Extraction(apperr.CodeExtraction, "read document.xml", err)
		}
		if len(content) > MaxDocumentXMLBytes {
			return "", errDocumentTooLarge
		}
		return parseDocumentXML(content)
	}
	return "", apperr.Extraction(apperr.CodeExtraction, "DOCX has no word/document.xml", nil)
}

var errDocumentTooLarge = apperr.Extraction(apperr.CodeExtraction, "DOCX content is too large to extract", nil)

func parseDocumentXML(content []byte) (string, error) {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return "", apperr.Extraction(apperr.CodeExtraction, "parse document.xml", err)
	}

	lines := make([]string, 0, len(doc.Body.Paragraphs))
	for _, para := range doc.Body.Paragraphs {
		var sb strings.Builder
		for _, r := range para.Runs {
			for _, t := range r.Text {
				sb.WriteString(t.Content)
			}
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n"), nil
}
