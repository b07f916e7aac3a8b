package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jkrahl/educahub-backend/internal/service"
)

// SubjectHandler serves the subject taxonomy routes.
type SubjectHandler struct {
	subjectService *service.SubjectService
	resolver       IdentityResolver
}

func NewSubjectHandler(subjectService *service.SubjectService, resolver IdentityResolver) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService, resolver: resolver}
}

type subjectView struct {
	Name  string   `json:"name"`
	Units []string `json:"units"`
}

// List handles GET /subjects.
func (h *SubjectHandler) List(c *gin.Context) {
	subjects, err := h.subjectService.List(c.Request.Context())
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	views := make([]subjectView, 0, len(subjects))
	for _, s := range subjects {
		views = append(views, subjectView{Name: s.Name, Units: s.Units})
	}
	SuccessResponse(c, http.StatusOK, views)
}

type CreateSubjectRequest struct {
	Name  string   `json:"name" binding:"required"`
	Units []string `json:"units"`
}

// Create handles POST /subjects, restricted to admins.
func (h *SubjectHandler) Create(c *gin.Context) {
	user, ok := resolveUser(c, h.resolver)
	if !ok {
		return
	}
	if !user.IsAdmin {
		ErrorResponse(c, http.StatusForbidden, "No tienes permiso para realizar esta acción")
		return
	}

	var req CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Campos vacíos")
		return
	}

	subject, err := h.subjectService.Create(c.Request.Context(), req.Name, req.Units)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, subjectView{Name: subject.Name, Units: subject.Units})
}
