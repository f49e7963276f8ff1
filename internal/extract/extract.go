/*
Package extract produces plain text from downloaded documents, dispatching
on filename suffix. Extraction failures are logged and yield empty text so
the pipeline keeps going instead of aborting.
*/
package extract

import (
	"log"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Text returns the extracted text of the file at path. Files ending in .pdf
// (case-insensitive) are parsed page by page; anything else is read as UTF-8
// text with undecodable bytes dropped. The result may be empty.
func Text(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".pdf") {
		return pdfText(path)
	}
	return plainText(path)
}

func pdfText(path string) (text string) {
	// The pdf package panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Warning: PDF parse error for %s: %v", path, r)
			text = ""
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		log.Printf("Warning: PDF parse error for %s: %v", path, err)
		return ""
	}
	defer f.Close()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil || pageText == "" {
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}

	return sb.String()
}

func plainText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: Read error for %s: %v", path, err)
		return ""
	}
	return strings.ToValidUTF8(string(data), "")
}
