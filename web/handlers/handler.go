package handlers

import (
	"net/http"
	"time"

	"divron.com/attendance/core"
	"divron.com/attendance/infrastructure/communication"
	"divron.com/attendance/web/common"
	"divron.com/attendance/web/middlewares"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	Store      *core.Store
	Log        *zap.Logger
	Secret     []byte
	SessionTTL time.Duration
	// Notifier is optional; nil disables notifications.
	Notifier *communication.Slack
}

func Register(r *gin.Engine, h *Handler) {
	r.POST("/auth/login", h.Login)
	r.POST("/auth/register", h.SignUp)

	api := r.Group("/api")
	api.Use(middlewares.Authentication(h.Secret))
	{
		api.GET("/employees", h.ListEmployees)
		api.POST("/employees", h.CreateEmployee)
		api.DELETE("/employees/:id", h.RemoveEmployee)

		api.GET("/attendance", h.ListAttendance)
		api.GET("/attendance/today", h.Today)
		api.POST("/attendance/checkin", h.CheckIn)
		api.POST("/attendance/checkout", h.CheckOut)

		api.GET("/reports/:period", h.ExportReport)

		api.GET("/leaves", h.ListLeaves)
		api.POST("/leaves", h.SubmitLeave)
		api.PUT("/leaves/:id", h.UpdateLeave)
	}
}

// requireAdmin aborts with 403 unless the session belongs to an admin.
func (h *Handler) requireAdmin(c *gin.Context) bool {
	claims := middlewares.SessionClaims(c)
	if claims == nil || claims.Role != core.RoleAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, common.NewErrorResponse("admin role required"))
		return false
	}
	return true
}
