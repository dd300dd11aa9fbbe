package resumes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/storage/kv"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/resume/codec"
	"resume-builder/resume/editor"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
	"resume-builder/resume/view"
)

// Service owns the editing sessions and their persisted copies.
type Service struct {
	Store    kv.Store
	Slot     string
	IDs      editor.IDSource
	Sessions *Registry
}

// NewService constructs a Service persisting under slot.
func NewService(store kv.Store, slot string) *Service {
	return &Service{
		Store:    store,
		Slot:     slot,
		IDs:      editor.UUIDSource{},
		Sessions: NewRegistry(DefaultSessionTTL, nil),
	}
}

// Result is a document paired with the notice to show for it.
type Result struct {
	Doc    model.ResumeDocument
	Notice *Notice
}

// Current returns the document of userID, starting a session when needed.
func (s *Service) Current(ctx context.Context, userID string) (model.ResumeDocument, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return model.ResumeDocument{}, err
	}
	return sess.Snapshot(), nil
}

// Apply runs edit against the session document. Edits themselves never fail.
func (s *Service) Apply(ctx context.Context, userID string, edit editor.Edit) (Result, error) {
	if edit == nil {
		return Result{}, fmt.Errorf("%w: edit is required", ErrInvalidInput)
	}
	sess, err := s.session(ctx, userID)
	if err != nil {
		return Result{}, err
	}

	doc := sess.Update(func(doc model.ResumeDocument) model.ResumeDocument {
		return editor.Apply(doc, edit, s.IDs)
	})
	metrics.IncEdit(edit.Kind())

	res := Result{Doc: doc}
	if t, ok := edit.(editor.TemplateEdit); ok {
		n := templateChanged(t.Template)
		res.Notice = &n
	}
	return res, nil
}

// Grouped returns the skills of the current document grouped for display.
func (s *Service) Grouped(ctx context.Context, userID string) ([]view.CategoryGroup, error) {
	doc, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}
	return view.GroupByCategory(doc.SkillItems).Ordered(), nil
}

// Preview renders the current document as HTML.
func (s *Service) Preview(ctx context.Context, userID string) ([]byte, error) {
	doc, err := s.Current(ctx, userID)
	if err != nil {
		return nil, err
	}
	return render.RenderHTML(doc)
}

// Save persists the current document into the identity's slot.
func (s *Service) Save(ctx context.Context, userID string) (Result, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	if s.Store == nil {
		return Result{}, errors.New("save resume: no store configured")
	}
	doc := sess.Snapshot()

	text, err := codec.Serialize(doc)
	if err != nil {
		return Result{}, err
	}
	if err := s.Store.Set(ctx, kv.SlotKey(s.Slot, userID), text); err != nil {
		return Result{}, fmt.Errorf("save resume: %w", err)
	}
	metrics.IncSave()

	n := noticeSaved
	return Result{Doc: doc, Notice: &n}, nil
}

// Load replaces the session document with the saved one. When nothing is
// stored or the stored text cannot be read, the session document is kept and
// the returned error wraps ErrNoSavedResume or ErrLoadFailed.
func (s *Service) Load(ctx context.Context, userID string) (Result, error) {
	sess, err := s.session(ctx, userID)
	if err != nil {
		return Result{}, err
	}

	doc, err := s.readSaved(ctx, userID)
	switch {
	case errors.Is(err, ErrNoSavedResume):
		metrics.IncLoad("missing")
		n := noticeNotFound
		return Result{Doc: sess.Snapshot(), Notice: &n}, err
	case err != nil:
		metrics.IncLoad("failed")
		telemetry.Warn("resume.load_failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		n := noticeLoadFailed
		return Result{Doc: sess.Snapshot(), Notice: &n}, err
	}

	sess.Replace(doc)
	metrics.IncLoad("loaded")
	n := noticeLoaded
	return Result{Doc: doc, Notice: &n}, nil
}

// session returns the live session of userID. A new session starts from the
// saved document when one can be read and from the sample document otherwise.
func (s *Service) session(ctx context.Context, userID string) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	if sess, ok := s.Sessions.Lookup(userID); ok {
		return sess, nil
	}

	doc, err := s.readSaved(ctx, userID)
	if err != nil {
		if !errors.Is(err, ErrNoSavedResume) {
			telemetry.Warn("resume.restore_failed", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		doc = model.Default()
	}

	sess, created := s.Sessions.Start(userID, doc)
	if created {
		metrics.IncSessionStarted()
	}
	return sess, nil
}

func (s *Service) readSaved(ctx context.Context, userID string) (model.ResumeDocument, error) {
	if s.Store == nil {
		return model.ResumeDocument{}, ErrNoSavedResume
	}
	text, err := s.Store.Get(ctx, kv.SlotKey(s.Slot, userID))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return model.ResumeDocument{}, ErrNoSavedResume
		}
		return model.ResumeDocument{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	doc, err := codec.Deserialize(text)
	if err != nil {
		return model.ResumeDocument{}, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return doc, nil
}
