package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jkrahl/educahub-backend/internal/service"
)

// AnnouncementHandler serves the announcement banner routes.
type AnnouncementHandler struct {
	announcementService *service.AnnouncementService
	resolver            IdentityResolver
}

func NewAnnouncementHandler(announcementService *service.AnnouncementService, resolver IdentityResolver) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService, resolver: resolver}
}

// Get handles GET /announcement. Public; the banner may be empty.
func (h *AnnouncementHandler) Get(c *gin.Context) {
	text, err := h.announcementService.Get(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"announcement": text})
}

type SetAnnouncementRequest struct {
	Announcement string `json:"announcement" binding:"required"`
}

// Set handles POST /announcement, restricted to admins.
func (h *AnnouncementHandler) Set(c *gin.Context) {
	user, ok := resolveUser(c, h.resolver)
	if !ok {
		return
	}
	if !user.IsAdmin {
		ErrorResponse(c, http.StatusForbidden, "No tienes permiso para realizar esta acción")
		return
	}

	var req SetAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Anuncio no proporcionado")
		return
	}

	if err := h.announcementService.Set(c.Request.Context(), req.Announcement); err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, gin.H{"message": "Anuncio actualizado"})
}
