package transport

import (
	"errors"
	"net/http"

	"event-booking/internal/auth"
	"event-booking/internal/entity"
	"event-booking/internal/service"
	"event-booking/internal/transport/middleware"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminService  service.AdminService
	authenticator *auth.Authenticator
	sessionMaxAge int
}

func NewAdminHandler(adminService service.AdminService, authenticator *auth.Authenticator, sessionMaxAge int) *AdminHandler {
	return &AdminHandler{
		adminService:  adminService,
		authenticator: authenticator,
		sessionMaxAge: sessionMaxAge,
	}
}

// LoginRequest carries the admin login form fields.
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// LoginState reports whether the caller already holds an admin session.
func (h *AdminHandler) LoginState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"is_admin": middleware.SessionFrom(c).IsAdmin()})
}

// Login checks credentials and sets the session cookie.
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.authenticator.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.SetCookie(middleware.SessionCookie, token, h.sessionMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"is_admin": true})
}

// Logout revokes the current session and clears the cookie.
func (h *AdminHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil {
		if err := h.authenticator.Logout(c.Request.Context(), token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"is_admin": false})
}

// Dashboard lists all events with their booking counts.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	events, err := h.adminService.Dashboard(c.Request.Context(), middleware.SessionFrom(c))
	if err != nil {
		h.renderError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// AddEventForm serves the data backing the create form.
func (h *AdminHandler) AddEventForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"default_category": entity.DefaultCategory})
}

func (h *AdminHandler) AddEvent(c *gin.Context) {
	var form service.EventForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.adminService.AddEvent(c.Request.Context(), middleware.SessionFrom(c), &form)
	if err != nil {
		h.renderError(c, err, nil)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"event": event})
}

// UpdateEventForm serves the stored event for the edit form.
func (h *AdminHandler) UpdateEventForm(c *gin.Context) {
	event, err := h.adminService.GetEvent(c.Request.Context(), middleware.SessionFrom(c), c.Param("id"))
	if err != nil {
		h.renderError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

func (h *AdminHandler) UpdateEvent(c *gin.Context) {
	var form service.EventForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, err := h.adminService.UpdateEvent(c.Request.Context(), middleware.SessionFrom(c), c.Param("id"), &form)
	if err != nil {
		// On a past date the stored event rides along for re-display.
		h.renderError(c, err, event)
		return
	}

	c.JSON(http.StatusOK, gin.H{"event": event})
}

func (h *AdminHandler) DeleteEvent(c *gin.Context) {
	err := h.adminService.DeleteEvent(c.Request.Context(), middleware.SessionFrom(c), c.Param("id"))
	if err != nil {
		h.renderError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

func (h *AdminHandler) renderError(c *gin.Context, err error, event *entity.Event) {
	body := gin.H{"error": err.Error()}
	if event != nil {
		body["event"] = event
	}

	switch {
	case errors.Is(err, entity.ErrForbidden):
		c.JSON(http.StatusForbidden, body)
	case errors.Is(err, entity.ErrEventNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
	case errors.Is(err, entity.ErrEventDatePast):
		body["error"] = "Event date cannot be in the past!"
		c.JSON(http.StatusUnprocessableEntity, body)
	default:
		c.JSON(http.StatusInternalServerError, body)
	}
}
