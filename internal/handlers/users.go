package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"healthbox-backend/internal/auth"
	"healthbox-backend/internal/middleware"
	"healthbox-backend/internal/models"
	"healthbox-backend/internal/store"
)

type UserStore interface {
	UpsertUser(ctx context.Context, user models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	RoleByEmail(ctx context.Context, email string) (string, error)
	SetRole(ctx context.Context, id, role string) error
}

type UserHandler struct {
	store  UserStore
	secret []byte
	log    *logrus.Logger
}

func NewUserHandler(s UserStore, secret []byte, log *logrus.Logger) *UserHandler {
	return &UserHandler{store: s, secret: secret, log: log}
}

// Register upserts a user by email. A supplied password is bcrypt-hashed
// before it touches the database.
func (h *UserHandler) Register(c *gin.Context) {
	var user models.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if user.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing email"})
		return
	}
	if user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			h.log.WithError(err).Error("password hashing failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		user.Password = string(hashed)
	}
	if err := h.store.UpsertUser(c.Request.Context(), user); err != nil {
		h.log.WithError(err).Error("user upsert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"email": user.Email})
}

// Login verifies the stored bcrypt hash and issues a token.
func (h *UserHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	user, err := h.store.UserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}
		h.log.WithError(err).Error("user lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "wrong password"})
		return
	}
	token, err := auth.Sign(h.secret, user.Email)
	if err != nil {
		h.log.WithError(err).Error("token signing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// IssueToken signs a token for a caller-supplied identity payload.
func (h *UserHandler) IssueToken(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing email"})
		return
	}
	token, err := auth.Sign(h.secret, req.Email)
	if err != nil {
		h.log.WithError(err).Error("token signing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// IsAdmin answers the caller's own admin check. Probing another user's role
// is rejected before any lookup happens.
func (h *UserHandler) IsAdmin(c *gin.Context) {
	h.selfRoleCheck(c, models.RoleAdmin, "admin")
}

func (h *UserHandler) IsSeller(c *gin.Context) {
	h.selfRoleCheck(c, models.RoleSeller, "seller")
}

func (h *UserHandler) selfRoleCheck(c *gin.Context, role, field string) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok || principal.Email != c.Param("email") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "forbidden access"})
		return
	}
	stored, err := h.store.RoleByEmail(c.Request.Context(), principal.Email)
	if err != nil {
		h.log.WithError(err).Error("role lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{field: stored == role})
}

// MakeAdmin promotes a user by document id.
func (h *UserHandler) MakeAdmin(c *gin.Context) {
	if err := h.store.SetRole(c.Request.Context(), c.Param("id"), models.RoleAdmin); err != nil {
		respondStoreError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modified": true})
}

var _ UserStore = (*store.Store)(nil)
