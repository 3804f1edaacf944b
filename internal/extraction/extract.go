// Package extraction pulls plain text out of PDF documents for the
// scoring pipeline.
package extraction

import (
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Document is the extracted content of one PDF.
type Document struct {
	Text  string
	Pages int
}

// Extract reads every page of the PDF at path and joins the page texts
// with newlines. An empty document is an error so downstream scoring
// never runs on nothing.
func Extract(path string) (*Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, &ExtractError{Path: path, Message: "cannot open document", Cause: err}
	}
	defer doc.Close()

	pages := doc.NumPage()
	texts := make([]string, 0, pages)
	for i := 0; i < pages; i++ {
		pageText, err := doc.Text(i)
		if err != nil {
			return nil, &ExtractError{Path: path, Message: fmt.Sprintf("cannot read page %d", i+1), Cause: err}
		}
		texts = append(texts, pageText)
	}

	text := strings.Join(texts, "\n")
	if strings.TrimSpace(text) == "" {
		return nil, &ExtractError{Path: path, Message: "document contains no extractable text"}
	}

	return &Document{Text: text, Pages: pages}, nil
}
