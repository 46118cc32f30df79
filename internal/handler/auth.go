package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dhilip1/sreeGuruLivingSpace/internal/config"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/storage"
	"github.com/dhilip1/sreeGuruLivingSpace/internal/utils"
)

// AuthHandler implements the minimal account endpoints. Nothing on the
// public site requires a login; these exist for the user records the
// storage contract carries.
type AuthHandler struct {
	Cfg   config.Config
	Store storage.Storage
}

func NewAuthHandler(cfg config.Config, s storage.Storage) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Store: s}
}

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userPart struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
}

type authResp struct {
	User    userPart  `json:"user"`
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// Register creates a user and returns an access token immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	if fieldLen(req.Username) < 3 {
		return badRequest(c, "Username must be at least 3 characters.")
	}
	if len(req.Password) < 8 {
		return badRequest(c, "Password must be at least 8 characters.")
	}

	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		c.Logger().Errorf("hash password: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create user"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Store.CreateUser(ctx, req.Username, hash)
	if err != nil {
		if err == storage.ErrDuplicateUsername {
			return c.JSON(http.StatusConflict, echo.Map{"message": "Username already exists"})
		}
		c.Logger().Errorf("create user: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create user"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, user.ID, user.Username, h.Cfg.AccessTTLMin)
	if err != nil {
		c.Logger().Errorf("issue token: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Failed to create user"})
	}
	return c.JSON(http.StatusCreated, authResp{
		User:    userPart{ID: user.ID, Username: user.Username},
		Token:   access.Token,
		Expires: access.Exp,
	})
}

// Login verifies credentials and returns a fresh access token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	req.Username = strings.ToLower(strings.TrimSpace(req.Username))
	if req.Username == "" || req.Password == "" {
		return badRequest(c, "Username and password are required.")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		c.Logger().Errorf("lookup user: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Login failed"})
	}
	if user == nil || !utils.VerifyPassword(user.Password, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, user.ID, user.Username, h.Cfg.AccessTTLMin)
	if err != nil {
		c.Logger().Errorf("issue token: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Login failed"})
	}
	return c.JSON(http.StatusOK, authResp{
		User:    userPart{ID: user.ID, Username: user.Username},
		Token:   access.Token,
		Expires: access.Exp,
	})
}

// Me echoes the authenticated user's claims. Requires JWTAuth.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"user_id":  c.Get("user_id"),
		"username": c.Get("username"),
	})
}
