package handlers

import (
	"errors"
	"net/http"
	"time"

	"divron.com/attendance/core"
	"divron.com/attendance/web/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) ListEmployees(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	employees, err := h.Store.Employees(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	dtos := toEmployeeDTOs(employees)
	c.JSON(http.StatusOK, common.NewListResponse(dtos, int64(len(dtos))))
}

// CreateEmployee is the admin add form. Same rules as self-service signup:
// unique email, employee role.
func (h *Handler) CreateEmployee(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	var dto RegisterDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	emp, err := core.Register(c.Request.Context(), h.Store, core.Registration{
		Name:       dto.Name,
		Email:      dto.Email,
		Department: dto.Department,
		Password:   dto.Password,
	}, time.Now())
	if errors.Is(err, core.ErrDuplicateEmail) {
		c.JSON(http.StatusConflict, common.NewErrorResponse("Email already exists"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(toEmployeeDTO(*emp)))
}

// RemoveEmployee drops the employee record. Attendance history is left in
// place on purpose; reports still reference the removed id.
func (h *Handler) RemoveEmployee(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	id := c.Param("id")
	if err := h.Store.RemoveEmployee(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	h.Log.Info("employee removed", zap.String("employeeId", id))
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}
