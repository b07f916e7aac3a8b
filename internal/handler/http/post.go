package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/jkrahl/educahub-backend/internal/domain"
	"github.com/jkrahl/educahub-backend/internal/service"
)

// PostHandler serves the post routes.
type PostHandler struct {
	postService *service.PostService
	resolver    IdentityResolver
}

func NewPostHandler(postService *service.PostService, resolver IdentityResolver) *PostHandler {
	return &PostHandler{postService: postService, resolver: resolver}
}

// List handles GET /posts with optional q, subject and unit filters.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context(),
		c.Query("q"), c.Query("subject"), c.Query("unit"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, toPostViews(posts))
}

// Create handles POST /posts. The body is multipart form data; Document posts
// carry their PDF in the "file" part.
func (h *PostHandler) Create(c *gin.Context) {
	user, ok := resolveUser(c, h.resolver)
	if !ok {
		return
	}

	in := service.CreatePostInput{
		Type:        domain.PostType(c.PostForm("type")),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Subject:     c.PostForm("subject"),
		Unit:        c.PostForm("unit"),
	}

	if fileHeader, err := c.FormFile("file"); err == nil {
		if fileHeader.Size > service.MaxUploadSize {
			ErrorResponse(c, http.StatusBadRequest, "File too large")
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			logrus.WithError(err).Error("Handler.CreatePost: open uploaded file")
			ErrorResponse(c, http.StatusInternalServerError, "An unexpected error occurred")
			return
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			logrus.WithError(err).Error("Handler.CreatePost: read uploaded file")
			ErrorResponse(c, http.StatusInternalServerError, "An unexpected error occurred")
			return
		}
		in.File = data
		in.FileType = fileHeader.Header.Get("Content-Type")
	}

	post, err := h.postService.Create(c.Request.Context(), user, in)
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusCreated, gin.H{
		"message": "Post creado exitosamente",
		"url":     post.URL,
	})
}

// Get handles GET /posts/:url.
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.postService.Get(c.Request.Context(), c.Param("url"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	SuccessResponse(c, http.StatusOK, toPostView(*post))
}

// GetFile handles GET /posts/:url/file by redirecting to a presigned
// download URL.
func (h *PostHandler) GetFile(c *gin.Context) {
	signed, err := h.postService.FileURL(c.Request.Context(), c.Param("url"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}
	c.Redirect(http.StatusFound, signed)
}

// Delete handles DELETE /posts/:url.
func (h *PostHandler) Delete(c *gin.Context) {
	user, ok := resolveUser(c, h.resolver)
	if !ok {
		return
	}

	if err := h.postService.Delete(c.Request.Context(), user, c.Param("url")); err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, gin.H{"message": "Post eliminado exitosamente"})
}
