package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jkrahl/educahub-backend/internal/domain"
	"github.com/jkrahl/educahub-backend/internal/service"
)

// CommentHandler serves the comment routes nested under posts.
type CommentHandler struct {
	commentService *service.CommentService
	resolver       IdentityResolver
}

func NewCommentHandler(commentService *service.CommentService, resolver IdentityResolver) *CommentHandler {
	return &CommentHandler{commentService: commentService, resolver: resolver}
}

type commentView struct {
	UUID      string    `json:"uuid"`
	Text      string    `json:"text"`
	User      string    `json:"user"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toCommentView(comment domain.Comment) commentView {
	return commentView{
		UUID:      comment.UUID,
		Text:      comment.Text,
		User:      comment.User.Username,
		Tags:      comment.User.Tags,
		CreatedAt: comment.CreatedAt,
	}
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// Create handles POST /posts/:url/comments.
func (h *CommentHandler) Create(c *gin.Context) {
	user, ok := resolveUser(c, h.resolver)
	if !ok {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Missing parameters")
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), user, c.Param("url"), req.Content)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, gin.H{
		"message":     "Comentario creado exitosamente",
		"commentUUID": comment.UUID,
	})
}

// List handles GET /posts/:url/comments.
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.commentService.List(c.Request.Context(), c.Param("url"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	views := make([]commentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, toCommentView(comment))
	}
	SuccessResponse(c, http.StatusOK, views)
}

// Delete handles DELETE /posts/:url/comments/:uuid.
func (h *CommentHandler) Delete(c *gin.Context) {
	user, ok := resolveUser(c, h.resolver)
	if !ok {
		return
	}

	err := h.commentService.Delete(c.Request.Context(), user, c.Param("url"), c.Param("uuid"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, gin.H{"message": "Comentario eliminado exitosamente"})
}
