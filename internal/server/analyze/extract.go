// Package analyze implements the server side of the batch resume analysis:
// text extraction, report generation, score parsing, and ranking.
package analyze

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/hirepilot/hirepilot/internal/common"
)

// ExtractText pulls the plain text out of an uploaded resume based on its
// declared media type.
func ExtractText(mediaType string, data []byte) (string, error) {
	switch mediaType {
	case "text/plain":
		return string(data), nil
	case common.MediaTypePDF:
		return extractPDFText(data)
	case common.MediaTypeDocx:
		return extractDocxText(data)
	default:
		return "", fmt.Errorf("unsupported file format: %s", mediaType)
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var textBuilder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
	}
	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
