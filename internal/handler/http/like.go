package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jkrahl/educahub-backend/internal/service"
)

// LikeHandler serves the like routes nested under posts.
type LikeHandler struct {
	likeService *service.LikeService
	resolver    IdentityResolver
}

func NewLikeHandler(likeService *service.LikeService, resolver IdentityResolver) *LikeHandler {
	return &LikeHandler{likeService: likeService, resolver: resolver}
}

// Like handles POST /posts/:url/likes.
func (h *LikeHandler) Like(c *gin.Context) {
	user, ok := resolveUser(c, h.resolver)
	if !ok {
		return
	}

	if err := h.likeService.Like(c.Request.Context(), user, c.Param("url")); err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, gin.H{"message": "Post liked"})
}

// Unlike handles DELETE /posts/:url/likes.
func (h *LikeHandler) Unlike(c *gin.Context) {
	user, ok := resolveUser(c, h.resolver)
	if !ok {
		return
	}

	if err := h.likeService.Unlike(c.Request.Context(), user, c.Param("url")); err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, gin.H{"message": "Post unliked"})
}

// Status handles GET /posts/:url/likes.
func (h *LikeHandler) Status(c *gin.Context) {
	user, ok := resolveUser(c, h.resolver)
	if !ok {
		return
	}

	status, err := h.likeService.Status(c.Request.Context(), user, c.Param("url"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, status)
}
