package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jkrahl/educahub-backend/internal/domain"
	"github.com/jkrahl/educahub-backend/internal/middleware"
	"github.com/jkrahl/educahub-backend/internal/token"
)

// IdentityResolver maps verified token claims to the stored user record.
// Satisfied by *service.AuthService.
type IdentityResolver interface {
	ResolveUser(ctx context.Context, claims *token.Claims) (*domain.User, error)
}

// resolveUser turns the request's verified claims into a stored user record.
// On failure it writes a 401 and returns false; the handler should just
// return.
func resolveUser(c *gin.Context, resolver IdentityResolver) (*domain.User, bool) {
	claims := middleware.Claims(c)
	if claims == nil {
		ErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	user, err := resolver.ResolveUser(c.Request.Context(), claims)
	if err != nil {
		ErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return user, true
}

// postView is the public shape of a post: owner referenced by username, never
// by storage id.
type postView struct {
	Type        domain.PostType `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	User        string          `json:"user"`
	Tags        []string        `json:"tags,omitempty"`
	URL         string          `json:"url"`
	CreatedAt   time.Time       `json:"createdAt"`
	Subject     string          `json:"subject,omitempty"`
	Unit        string          `json:"unit,omitempty"`
}

func toPostView(post domain.Post) postView {
	return postView{
		Type:        post.Type,
		Title:       post.Title,
		Description: post.Description,
		User:        post.User.Username,
		Tags:        post.User.Tags,
		URL:         post.URL,
		CreatedAt:   post.CreatedAt,
		Subject:     post.Subject,
		Unit:        post.Unit,
	}
}

func toPostViews(posts []domain.Post) []postView {
	views := make([]postView, 0, len(posts))
	for _, p := range posts {
		views = append(views, toPostView(p))
	}
	return views
}
