package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"resume-builder/resume/codec"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

func main() {
	outPath := flag.String("out", "./out/sample_resume.html", "output path for the rendered preview")
	pdfPath := flag.String("pdf", "", "optional output path for a PDF export (needs Chrome)")
	docPath := flag.String("doc", "", "optional saved document (JSON) to render instead of the sample")
	templateID := flag.String("template", "", "template to render with (classic, modern, creative, minimalist)")
	chromePath := flag.String("chrome", os.Getenv("CHROME_PATH"), "Chrome executable")
	flag.Parse()

	doc, err := loadDocument(*docPath, *templateID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load failed: %v\n", err)
		os.Exit(1)
	}

	html, err := render.RenderHTML(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}
	if err := validatePreview(html, doc); err != nil {
		fmt.Fprintf(os.Stderr, "render validation failed: %v\n", err)
		os.Exit(1)
	}
	if err := writeFile(*outPath, html); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: wrote %s\n", *outPath)

	if *pdfPath == "" {
		return
	}
	exporter := render.NewChromedpExporter(*chromePath, 90*time.Second)
	pdf, err := exporter.RenderPDF(context.Background(), html)
	if err != nil {
		fmt.Fprintf(os.Stderr, "export failed: %v\n", err)
		os.Exit(1)
	}
	info, err := render.InspectPDF(pdf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "export validation failed: %v\n", err)
		os.Exit(1)
	}
	if err := writeFile(*pdfPath, pdf); err != nil {
		fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: wrote %s (%d pages, %d bytes)\n", *pdfPath, info.Pages, info.Size)
}

func loadDocument(path, templateID string) (model.ResumeDocument, error) {
	doc := model.Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return model.ResumeDocument{}, err
		}
		doc, err = codec.Deserialize(string(raw))
		if err != nil {
			return model.ResumeDocument{}, err
		}
	}
	if templateID != "" {
		id, err := model.ParseTemplateID(templateID)
		if err != nil {
			return model.ResumeDocument{}, err
		}
		doc.SelectedTemplate = id
	}
	return doc, nil
}

func validatePreview(html []byte, doc model.ResumeDocument) error {
	marker := []byte(`data-template="` + string(doc.Normalize().SelectedTemplate) + `"`)
	if !bytes.Contains(html, marker) {
		return fmt.Errorf("missing template marker %s", marker)
	}
	for _, heading := range []string{"ABOUT", "EDUCATION", "EXPERIENCE", "SKILLS", "PROJECTS", "CERTIFICATIONS"} {
		if !bytes.Contains(html, []byte(heading)) {
			return fmt.Errorf("missing section %s", heading)
		}
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
