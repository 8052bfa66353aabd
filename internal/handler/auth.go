package handler

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-seat-roster/internal/config"
	"github.com/iliyamo/bus-seat-roster/internal/middleware"
	"github.com/iliyamo/bus-seat-roster/internal/utils"
)

// AuthHandler issues organizer access tokens.  There is a single organizer
// account, configured through ORGANIZER_USER and ORGANIZER_PASSWORD_HASH.
type AuthHandler struct {
	Cfg config.Config
}

func NewAuthHandler(cfg config.Config) *AuthHandler {
	return &AuthHandler{Cfg: cfg}
}

type loginReq struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=128"`
}

type loginResp struct {
	User   string            `json:"user"`
	Role   string            `json:"role"`
	Access utils.AccessToken `json:"access"`
}

// Login checks the organizer credentials and returns an access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if ok, err := bind(c, &req); !ok {
		return err
	}
	user := strings.TrimSpace(req.Username)
	sameUser := subtle.ConstantTimeCompare([]byte(user), []byte(h.Cfg.OrganizerUser)) == 1
	// the hash is checked even for a wrong name so both failures cost the same
	passOK := utils.VerifyPassword(h.Cfg.OrganizerPasswordHash, req.Password)
	if !sameUser || !passOK {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, user, middleware.RoleOrganizer, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, loginResp{User: user, Role: middleware.RoleOrganizer, Access: access})
}
