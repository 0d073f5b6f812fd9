// Package handler contains the Gin HTTP handlers for the auth endpoints.
package handler

import (
	"github.com/gin-gonic/gin"

	apperrors "github.com/deepblocks/auth-service/internal/errors"
	"github.com/deepblocks/auth-service/internal/server"
	"github.com/deepblocks/auth-service/internal/users"
	"github.com/deepblocks/auth-service/internal/validation"
)

// credentials is the request body for both signup and login.
type credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthHandler exposes the signup and login endpoints.
type AuthHandler struct {
	svc *users.Service
}

// NewAuthHandler creates an AuthHandler backed by the given service.
func NewAuthHandler(svc *users.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register mounts the auth routes on the router.
func (h *AuthHandler) Register(r gin.IRouter) {
	r.POST("/signup", h.SignUp)
	r.POST("/login", h.Login)
}

// SignUp handles POST /signup. On success the created user is returned
// without its password hash.
func (h *AuthHandler) SignUp(c *gin.Context) {
	creds, ok := bindCredentials(c)
	if !ok {
		return
	}

	user, err := h.svc.SignUp(c.Request.Context(), creds.Email, creds.Password)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, user)
}

// Login handles POST /login. On success a signed access token is returned.
func (h *AuthHandler) Login(c *gin.Context) {
	creds, ok := bindCredentials(c)
	if !ok {
		return
	}

	tok, err := h.svc.Login(c.Request.Context(), creds.Email, creds.Password)
	if err != nil {
		server.RespondWithError(c, err)
		return
	}
	server.RespondOK(c, tok)
}

// bindCredentials parses and validates the request body, writing the error
// response itself when binding fails.
func bindCredentials(c *gin.Context) (credentials, bool) {
	var creds credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		server.RespondWithError(c, apperrors.Validation("Invalid request body").WithCause(err))
		return creds, false
	}
	if err := validation.Validate(creds); err != nil {
		server.RespondWithError(c, err)
		return creds, false
	}
	return creds, true
}
