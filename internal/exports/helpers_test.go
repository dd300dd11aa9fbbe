package exports

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"resume-builder/internal/shared/storage/object/local"
	"resume-builder/resume/model"
)

type staticDocs struct {
	doc model.ResumeDocument
}

func (s staticDocs) Current(context.Context, string) (model.ResumeDocument, error) {
	return s.doc, nil
}

type stubExporter struct {
	mu    sync.Mutex
	pdf   []byte
	err   error
	calls int
	html  []byte
}

func (e *stubExporter) RenderPDF(_ context.Context, html []byte) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	e.html = html
	if e.err != nil {
		return nil, e.err
	}
	return e.pdf, nil
}

func newTestService(t *testing.T, exp *stubExporter) *Service {
	t.Helper()
	return &Service{
		Docs:     staticDocs{doc: model.Default()},
		Exporter: exp,
		Store:    local.New(t.TempDir()),
		Repo:     NewMemoryRepo(),
	}
}

// blankPDF builds a document of empty A4 pages with a valid xref table.
func blankPDF(pages int) []byte {
	kids := make([]string, 0, pages)
	objects := []string{"<< /Type /Catalog /Pages 2 0 R >>", ""}
	for i := 0; i < pages; i++ {
		kids = append(kids, fmt.Sprintf("%d 0 R", len(objects)+1))
		objects = append(objects, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] >>")
	}
	objects[1] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pages)

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}
