// Package api exposes the tracker over JSON HTTP using gin.
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nhle/project-tracker/internal/auth"
	"github.com/nhle/project-tracker/internal/logger"
	"github.com/nhle/project-tracker/internal/model"
	"github.com/nhle/project-tracker/internal/store"
)

// Handler maps HTTP requests onto store operations.
type Handler struct {
	store  store.Store
	hasher auth.PasswordHasher
	issuer auth.TokenIssuer
	log    *zap.Logger
}

// NewHandler creates a Handler. issuer may be nil when the identity
// strategy does not hand out tokens at login.
func NewHandler(s store.Store, hasher auth.PasswordHasher, issuer auth.TokenIssuer, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{store: s, hasher: hasher, issuer: issuer, log: log}
}

func (h *Handler) logger(c *gin.Context) *zap.Logger {
	return logger.FromContext(c, h.log)
}

// respondError translates err into a status code and a JSON error body.
// Store failures are logged with op; their details never reach the client.
func (h *Handler) respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, model.ErrAuthRequired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
	case errors.Is(err, model.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, model.ErrConstraintViolation):
		h.logger(c).Warn(op, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": constraintMessage(op)})
	default:
		h.logger(c).Error(op, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed " + op})
	}
	_ = c.Error(err)
}

func constraintMessage(op string) string {
	if op == opRegister {
		return "email already registered"
	}
	return "failed " + op + ": constraint violation"
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
