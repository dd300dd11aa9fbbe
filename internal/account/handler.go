package account

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/telemetry"
)

// Handler exposes account endpoints for signed-in users.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/account/claim-guest", h.claimGuest)
}

func (h *Handler) claimGuest(c *gin.Context) {
	if h.Svc == nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Account service unavailable", nil)
		return
	}
	userID := strings.TrimSpace(middleware.UserIDFromContext(c))
	if middleware.IsGuest(c) || userID == "" {
		respond.Error(c, http.StatusUnauthorized, "unauthorized", "Sign in to keep your guest resume", nil)
		return
	}

	guestUserID, issue := guestIdentity(c.GetHeader("X-Guest-Id"))
	if issue != "" {
		respond.Invalid(c, "Guest id is "+issue, respond.FieldIssue{Field: "X-Guest-Id", Issue: issue})
		return
	}

	result, err := h.Svc.ClaimGuest(c.Request.Context(), guestUserID, userID)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Failed to claim guest resume", nil)
		return
	}
	telemetry.Info("guest claimed", map[string]any{
		"user_id":          userID,
		"migrated_resume":  result.MigratedResume,
		"migrated_exports": result.MigratedExports,
	})
	respond.JSON(c, http.StatusOK, result)
}

// guestIdentity turns the raw header into the identity the auth middleware
// would assign, or names what is wrong with it.
func guestIdentity(header string) (string, string) {
	id := strings.TrimSpace(header)
	if id == "" {
		return "", "required"
	}
	if _, err := uuid.Parse(id); err != nil {
		return "", "invalid"
	}
	return "guest:" + id, ""
}
