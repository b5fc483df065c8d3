package handlers

import (
	"net/http"

	"divron.com/attendance/core"
	"divron.com/attendance/web/common"
	"divron.com/attendance/web/middlewares"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ListLeaves(c *gin.Context) {
	claims := middlewares.SessionClaims(c)
	if claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	leaves, err := h.Store.Leaves(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	if claims.Role != core.RoleAdmin {
		own := make([]core.Leave, 0, len(leaves))
		for _, l := range leaves {
			if l.EmployeeID == claims.EmployeeID {
				own = append(own, l)
			}
		}
		leaves = own
	}

	c.JSON(http.StatusOK, common.NewListResponse(leaves, int64(len(leaves))))
}

type LeaveRequestDTO struct {
	StartDate *common.DateOnly `json:"startDate" binding:"required"`
	EndDate   *common.DateOnly `json:"endDate" binding:"required"`
	Reason    string           `json:"reason" binding:"required"`
	Type      string           `json:"type" binding:"required,oneof=sick vacation personal"`
}

func (h *Handler) SubmitLeave(c *gin.Context) {
	claims := middlewares.SessionClaims(c)
	if claims == nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var dto LeaveRequestDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	leave := core.Leave{
		ID:         core.NewID(),
		EmployeeID: claims.EmployeeID,
		StartDate:  dto.StartDate.Time,
		EndDate:    dto.EndDate.Time,
		Reason:     dto.Reason,
		Status:     core.LeaveStatusPending,
		Type:       dto.Type,
	}
	if err := h.Store.AddLeave(c.Request.Context(), leave); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(leave))
}

type LeaveUpdateDTO struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// UpdateLeave sets the review status. An unknown id keeps the store's silent
// no-op contract and still answers 200.
func (h *Handler) UpdateLeave(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	var dto LeaveUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	id := c.Param("id")
	leaves, err := h.Store.Leaves(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	for _, l := range leaves {
		if l.ID == id {
			l.Status = dto.Status
			if err := h.Store.UpdateLeave(c.Request.Context(), l); err != nil {
				c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
				return
			}
			break
		}
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}
