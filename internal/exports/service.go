package exports

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

const (
	pdfMimeType    = "application/pdf"
	exportFileName = "resume.pdf"
)

// DocumentSource yields the current document of an identity.
type DocumentSource interface {
	Current(ctx context.Context, userID string) (model.ResumeDocument, error)
}

// Service turns session documents into PDFs and keeps their history.
type Service struct {
	Docs     DocumentSource
	Exporter render.Exporter
	Store    object.ObjectStore
	Repo     Repo

	now func() time.Time
}

// Artifact is the outcome of one export.
type Artifact struct {
	Export Export
	PDF    []byte
}

// Export renders the current document of userID to PDF. The session document
// is only read, so a failed export can be retried as is. When the PDF was
// produced but could not be archived the artifact is still returned with an
// empty Export.ID.
func (s *Service) Export(ctx context.Context, userID string) (Artifact, error) {
	if strings.TrimSpace(userID) == "" {
		return Artifact{}, ErrInvalidInput
	}
	if s.Docs == nil || s.Exporter == nil {
		return Artifact{}, errors.New("missing dependencies")
	}

	start := time.Now()
	art, err := s.export(ctx, userID)
	metrics.ObserveExportDurationMs(metrics.SinceMillis(start))
	if err != nil {
		metrics.IncExport("failed")
		telemetry.Error("export.failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return Artifact{}, err
	}
	metrics.IncExport("ok")
	return art, nil
}

func (s *Service) export(ctx context.Context, userID string) (Artifact, error) {
	doc, err := s.Docs.Current(ctx, userID)
	if err != nil {
		return Artifact{}, err
	}
	html, err := render.RenderHTML(doc)
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: %w", render.ErrExportFailed, err)
	}
	pdf, err := s.Exporter.RenderPDF(ctx, html)
	if err != nil {
		return Artifact{}, err
	}
	info, err := render.InspectPDF(pdf)
	if err != nil {
		return Artifact{}, err
	}

	export := Export{
		UserID:     userID,
		TemplateID: string(doc.Normalize().SelectedTemplate),
		FileName:   exportFileName,
		MimeType:   pdfMimeType,
		SizeBytes:  info.Size,
		Pages:      info.Pages,
		CreatedAt:  s.clock().UTC(),
	}
	if err := s.archive(ctx, &export, pdf); err != nil {
		telemetry.Warn("export.archive_failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		export.ID = ""
		export.StorageKey = ""
	}
	return Artifact{Export: export, PDF: pdf}, nil
}

func (s *Service) archive(ctx context.Context, export *Export, pdf []byte) error {
	if s.Store == nil || s.Repo == nil {
		return errors.New("export history not configured")
	}
	key, _, _, err := s.Store.Save(ctx, export.UserID, export.FileName, bytes.NewReader(pdf))
	if err != nil {
		return err
	}
	export.ID = uuid.NewString()
	export.StorageKey = key
	if err := s.Repo.Create(ctx, *export); err != nil {
		_ = s.Store.Delete(ctx, key)
		return err
	}
	return nil
}

// Get returns an export by ID for a user.
func (s *Service) Get(ctx context.Context, userID, exportID string) (Export, error) {
	if userID == "" || exportID == "" {
		return Export{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userID, exportID)
}

// List returns exports for a user ordered newest-first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Export, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}

// Open returns the stored PDF of an export owned by userID.
func (s *Service) Open(ctx context.Context, userID, exportID string) (Export, io.ReadCloser, error) {
	export, err := s.Get(ctx, userID, exportID)
	if err != nil {
		return Export{}, nil, err
	}
	r, err := s.Store.Open(ctx, export.StorageKey)
	if err != nil {
		if errors.Is(err, object.ErrNotFound) {
			return Export{}, nil, ErrNotFound
		}
		return Export{}, nil, err
	}
	return export, r, nil
}

func (s *Service) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}
