package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/resume/codec"
	"resume-builder/resume/editor"
	"resume-builder/resume/model"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/templates", h.templates)
	rg.GET("/resume", h.current)
	rg.PATCH("/resume/contact", h.updateContact)
	rg.PUT("/resume/summary", h.updateSummary)
	rg.PUT("/resume/template", h.selectTemplate)
	rg.POST("/resume/sections/:section", h.addEntry)
	rg.PATCH("/resume/sections/:section/:id", h.updateEntry)
	rg.DELETE("/resume/sections/:section/:id", h.removeEntry)
	rg.GET("/resume/skills/grouped", h.groupedSkills)
	rg.GET("/resume/preview", h.preview)
	rg.POST("/resume/save", h.save)
	rg.POST("/resume/load", h.load)
}

func (h *Handler) templates(c *gin.Context) {
	respond.OK(c, TemplatesResponse{Templates: model.Templates, Default: model.DefaultTemplate})
}

func (h *Handler) current(c *gin.Context) {
	doc, err := h.Svc.Current(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, toResponse(Result{Doc: doc}))
}

func (h *Handler) updateContact(c *gin.Context) {
	var req fieldRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Value == nil {
		respond.Invalid(c, "field and value are required")
		return
	}
	field, err := editor.ParseContactField(req.Field)
	if err != nil {
		respond.Invalid(c, err.Error())
		return
	}
	h.apply(c, editor.ContactEdit{Field: field, Value: *req.Value})
}

func (h *Handler) updateSummary(c *gin.Context) {
	var req valueRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Value == nil {
		respond.Invalid(c, "value is required")
		return
	}
	h.apply(c, editor.SummaryEdit{Value: *req.Value})
}

func (h *Handler) selectTemplate(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Invalid(c, "invalid request body")
		return
	}
	id, err := model.ParseTemplateID(req.TemplateID)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), gin.H{"templates": model.Templates})
		return
	}
	h.apply(c, editor.TemplateEdit{Template: id})
}

func (h *Handler) addEntry(c *gin.Context) {
	section, err := editor.ParseSection(c.Param("section"))
	if err != nil {
		respond.Invalid(c, err.Error())
		return
	}
	res, ok := h.run(c, editor.AddEntry{Section: section})
	if !ok {
		return
	}
	resp := toResponse(res)
	resp.EntryID = lastEntryID(res.Doc, section)
	respond.JSON(c, http.StatusCreated, resp)
}

func (h *Handler) updateEntry(c *gin.Context) {
	section, err := editor.ParseSection(c.Param("section"))
	if err != nil {
		respond.Invalid(c, err.Error())
		return
	}
	var req fieldRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Value == nil {
		respond.Invalid(c, "field and value are required")
		return
	}
	edit, err := editor.ParseEntryEdit(section, c.Param("id"), req.Field, *req.Value)
	if err != nil {
		respond.Invalid(c, err.Error())
		return
	}
	h.apply(c, edit)
}

func (h *Handler) removeEntry(c *gin.Context) {
	section, err := editor.ParseSection(c.Param("section"))
	if err != nil {
		respond.Invalid(c, err.Error())
		return
	}
	h.apply(c, editor.RemoveEntry{Section: section, ID: c.Param("id")})
}

func (h *Handler) groupedSkills(c *gin.Context) {
	groups, err := h.Svc.Grouped(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, GroupedSkillsResponse{Groups: groups})
}

func (h *Handler) preview(c *gin.Context) {
	html, err := h.Svc.Preview(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.Data(c, http.StatusOK, "text/html; charset=utf-8", html)
}

func (h *Handler) save(c *gin.Context) {
	res, err := h.Svc.Save(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	setNotice(c, res.Notice)
	respond.OK(c, toResponse(res))
}

func (h *Handler) load(c *gin.Context) {
	res, err := h.Svc.Load(c.Request.Context(), middleware.UserIDFromContext(c))
	setNotice(c, res.Notice)
	switch {
	case err == nil, errors.Is(err, ErrNoSavedResume):
		respond.OK(c, toResponse(res))
	case errors.Is(err, ErrLoadFailed):
		details := gin.H{"notice": res.Notice}
		var derr *codec.DeserializationError
		if errors.As(err, &derr) {
			details["reason"] = derr.Reason
			details["problems"] = derr.Details
		}
		respond.Error(c, http.StatusUnprocessableEntity, "load_failed", res.Notice.Message, details)
	default:
		h.fail(c, err)
	}
}

func (h *Handler) apply(c *gin.Context, edit editor.Edit) {
	res, ok := h.run(c, edit)
	if !ok {
		return
	}
	respond.OK(c, toResponse(res))
}

func (h *Handler) run(c *gin.Context, edit editor.Edit) (Result, bool) {
	c.Set(middleware.EditKindKey, edit.Kind())
	res, err := h.Svc.Apply(c.Request.Context(), middleware.UserIDFromContext(c), edit)
	if err != nil {
		h.fail(c, err)
		return Result{}, false
	}
	setNotice(c, res.Notice)
	return res, true
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Invalid(c, err.Error())
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "resume operation failed", nil)
	}
}

func setNotice(c *gin.Context, n *Notice) {
	if n != nil {
		c.Set(middleware.NoticeKey, n.Message)
	}
}

func lastEntryID(doc model.ResumeDocument, section editor.Section) string {
	switch section {
	case editor.SectionExperience:
		return lastID(doc.ExperienceItems)
	case editor.SectionEducation:
		return lastID(doc.EducationItems)
	case editor.SectionSkills:
		return lastID(doc.SkillItems)
	case editor.SectionProjects:
		return lastID(doc.ProjectItems)
	case editor.SectionCertifications:
		return lastID(doc.CertificationItems)
	}
	return ""
}

func lastID[T model.Entry](items []T) string {
	if len(items) == 0 {
		return ""
	}
	return items[len(items)-1].EntryID()
}
