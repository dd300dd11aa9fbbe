package render

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFInfo summarizes an exported document.
type PDFInfo struct {
	Pages int
	Size  int64
}

// InspectPDF parses data as a PDF document. A document that cannot be read
// or has no pages is reported as ErrExportFailed.
func InspectPDF(data []byte) (info PDFInfo, err error) {
	if len(data) == 0 {
		return PDFInfo{}, fmt.Errorf("%w: empty pdf", ErrExportFailed)
	}
	// the reader panics on some truncated inputs
	defer func() {
		if r := recover(); r != nil {
			info, err = PDFInfo{}, fmt.Errorf("%w: unreadable pdf: %v", ErrExportFailed, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return PDFInfo{}, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	pages := reader.NumPage()
	if pages < 1 {
		return PDFInfo{}, fmt.Errorf("%w: pdf has no pages", ErrExportFailed)
	}
	return PDFInfo{Pages: pages, Size: int64(len(data))}, nil
}
