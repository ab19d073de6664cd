package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nhle/project-tracker/internal/model"
)

const opRegister = "registering user"

// Register creates an account. A duplicate email fails with 500, the
// store's constraint violation.
func (h *Handler) Register(c *gin.Context) {
	var body registerRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "name, a valid email, and password are required")
		return
	}

	hash, err := h.hasher.Hash(body.Password)
	if err != nil {
		h.respondError(c, opRegister, err)
		return
	}

	email := strings.TrimSpace(body.Email)
	userID, err := h.store.CreateUser(c.Request.Context(), body.Name, email, hash)
	if err != nil {
		h.respondError(c, opRegister, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"userId": userID})
}

// Login checks credentials and returns the user's public profile, plus a
// session token when the identity strategy issues one.
func (h *Handler) Login(c *gin.Context) {
	var body loginRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, "email and password are required")
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), strings.TrimSpace(body.Email))
	if errors.Is(err, model.ErrNotFound) {
		h.respondError(c, "logging in", model.ErrInvalidCredentials)
		return
	}
	if err != nil {
		h.respondError(c, "logging in", err)
		return
	}
	if err := h.hasher.Compare(user.Password, body.Password); err != nil {
		h.respondError(c, "logging in", err)
		return
	}

	resp := userResponse{UserID: user.ID, Name: user.Name, Email: user.Email}
	if h.issuer != nil {
		token, err := h.issuer.Issue(user.ID)
		if err != nil {
			h.respondError(c, "issuing token", err)
			return
		}
		resp.Token = token
	}

	c.JSON(http.StatusOK, resp)
}

// Me returns the profile of the resolved caller.
func (h *Handler) Me(c *gin.Context) {
	user, err := h.store.GetUserByID(c.Request.Context(), currentUserID(c))
	if errors.Is(err, model.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		h.respondError(c, "loading user", err)
		return
	}

	c.JSON(http.StatusOK, userResponse{UserID: user.ID, Name: user.Name, Email: user.Email})
}
