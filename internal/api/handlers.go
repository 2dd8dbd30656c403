package api

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"amorago/internal/auth"
	"amorago/internal/catalog"
	"amorago/internal/chat"
	"amorago/internal/logger"
	"amorago/internal/models"
)

// Handler wires HTTP routes to the auth and chat services.
type Handler struct {
	auth *auth.Service
	chat *chat.Service
	log  *logger.Logger
}

// NewHandler constructs a Handler instance.
func NewHandler(authService *auth.Service, chatService *chat.Service, log *logger.Logger) *Handler {
	return &Handler{
		auth: authService,
		chat: chatService,
		log:  log,
	}
}

// RegisterRoutes attaches all HTTP routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.liveness)

	api := router.Group("/api")
	api.POST("/auth/guest", h.guestSignIn)
	api.POST("/auth/login", h.login)
	api.GET("/profiles", h.listProfiles)
	api.GET("/profiles/:id", h.getProfile)

	authed := api.Group("")
	authed.Use(h.auth.Middleware())
	authed.POST("/chat", h.postChat)
	authed.GET("/chat/history", h.chatHistory)
	authed.POST("/auth/upgrade", h.upgradeAccount)
	authed.POST("/auth/logout", h.logout)
}

func (h *Handler) liveness(c *gin.Context) {
	c.String(http.StatusOK, "Backend is running")
}

func (h *Handler) guestSignIn(c *gin.Context) {
	session, err := h.auth.SignInGuest(c.Request.Context())
	if err != nil {
		h.log.Error("guest sign-in failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"token":        session.Token,
		"principal_id": session.PrincipalID,
		"is_guest":     session.IsGuest,
		"expires_at":   session.ExpiresAt,
	})
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	session, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		h.log.Error("login failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token":        session.Token,
		"principal_id": session.PrincipalID,
		"is_guest":     session.IsGuest,
		"expires_at":   session.ExpiresAt,
	})
}

func (h *Handler) upgradeAccount(c *gin.Context) {
	principalID, ok := auth.PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid authorization header"})
		return
	}
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.auth.Upgrade(c.Request.Context(), principalID, req.Email, req.Password); err != nil {
		switch {
		case errors.Is(err, auth.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		case errors.Is(err, sql.ErrNoRows):
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		default:
			h.log.Error("account upgrade failed", "principal_id", principalID, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"is_guest": false})
}

func (h *Handler) logout(c *gin.Context) {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid authorization header"})
		return
	}
	if err := h.auth.RevokeToken(c.Request.Context(), token); err != nil {
		h.log.Error("logout failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

type chatRequest struct {
	Message string `json:"message"`
}

func (h *Handler) postChat(c *gin.Context) {
	principalID, ok := auth.PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid authorization header"})
		return
	}
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	exchange, err := h.chat.Send(c.Request.Context(), principalID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		case errors.Is(err, chat.ErrLimitReached):
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "Guest limit reached",
				"code":    "LIMIT_REACHED",
				"message": "Please create an account to continue chatting.",
			})
		case errors.Is(err, chat.ErrProfileLookup):
			h.log.Error("profile lookup failed", "principal_id", principalID, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user profile"})
		default:
			h.log.Error("chat failed", "principal_id", principalID, "err", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"response":  exchange.Reply,
		"remaining": exchange.Remaining,
	})
}

func (h *Handler) chatHistory(c *gin.Context) {
	principalID, ok := auth.PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid authorization header"})
		return
	}
	messages, err := h.chat.History(c.Request.Context(), principalID)
	if err != nil {
		h.log.Error("history lookup failed", "principal_id", principalID, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if messages == nil {
		messages = make([]models.Message, 0)
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (h *Handler) listProfiles(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"profiles": catalog.All()})
}

func (h *Handler) getProfile(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile id"})
		return
	}
	profile, ok := catalog.ByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}
