package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"divron.com/attendance/core"
	"divron.com/attendance/web/common"
	"divron.com/attendance/web/middlewares"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListAttendance returns the caller's own history, or everything for admins.
func (h *Handler) ListAttendance(c *gin.Context) {
	claims := middlewares.SessionClaims(c)
	if claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	records, err := h.Store.Attendance(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	if claims.Role != core.RoleAdmin {
		own := make([]core.AttendanceRecord, 0, len(records))
		for _, r := range records {
			if r.EmployeeID == claims.EmployeeID {
				own = append(own, r)
			}
		}
		records = own
	}

	c.JSON(http.StatusOK, common.NewListResponse(records, int64(len(records))))
}

func (h *Handler) Today(c *gin.Context) {
	claims := middlewares.SessionClaims(c)
	if claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	record, err := core.TodayRecord(c.Request.Context(), h.Store, claims.EmployeeID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"state":  core.DayState(record),
		"record": record,
	}))
}

func (h *Handler) CheckIn(c *gin.Context) {
	claims := middlewares.SessionClaims(c)
	if claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	record, err := core.CheckIn(c.Request.Context(), h.Store, claims.EmployeeID, time.Now())
	if errors.Is(err, core.ErrAlreadyCheckedIn) {
		c.JSON(http.StatusConflict, common.NewErrorResponse("Already checked in today"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	if record.Status == core.StatusLate {
		msg := fmt.Sprintf("Late check-in: %s at %s", claims.Email, record.CheckIn)
		if err := h.Notifier.Info(msg); err != nil {
			h.Log.Warn("slack notification failed", zap.Error(err))
		}
	}

	h.Log.Info("check-in",
		zap.String("employeeId", claims.EmployeeID),
		zap.String("status", record.Status))
	c.JSON(http.StatusOK, common.NewSuccessResponse(record))
}

func (h *Handler) CheckOut(c *gin.Context) {
	claims := middlewares.SessionClaims(c)
	if claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	record, err := core.CheckOut(c.Request.Context(), h.Store, claims.EmployeeID, time.Now())
	switch {
	case errors.Is(err, core.ErrNotCheckedIn):
		c.JSON(http.StatusConflict, common.NewErrorResponse("Not checked in today"))
		return
	case errors.Is(err, core.ErrAlreadyCheckedOut):
		c.JSON(http.StatusConflict, common.NewErrorResponse("Already checked out today"))
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	h.Log.Info("check-out", zap.String("employeeId", claims.EmployeeID))
	c.JSON(http.StatusOK, common.NewSuccessResponse(record))
}
