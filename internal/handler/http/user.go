package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jkrahl/educahub-backend/internal/service"
)

// UserHandler serves public user profiles.
type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type userView struct {
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"isAdmin"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Get handles GET /users/:username.
func (h *UserHandler) Get(c *gin.Context) {
	profile, err := h.userService.GetProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		HandleServiceError(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, gin.H{
		"user": userView{
			Username:  profile.User.Username,
			IsAdmin:   profile.User.IsAdmin,
			Tags:      profile.User.Tags,
			CreatedAt: profile.User.CreatedAt,
		},
		"posts": toPostViews(profile.Posts),
	})
}
