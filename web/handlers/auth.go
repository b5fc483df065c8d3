package handlers

import (
	"errors"
	"net/http"
	"time"

	"divron.com/attendance/core"
	"divron.com/attendance/security"
	"divron.com/attendance/web/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LoginDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	emp, err := core.Login(c.Request.Context(), h.Store, dto.Email, dto.Password)
	if errors.Is(err, core.ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, common.NewErrorResponse("Invalid email or password"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	token, err := security.CreateSessionToken(emp.ID, emp.Email, emp.Role, h.Secret, h.SessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	h.Log.Info("login", zap.String("employeeId", emp.ID), zap.String("role", emp.Role))
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{
		"token":    token,
		"employee": toEmployeeDTO(*emp),
	}))
}

type RegisterDTO struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Department string `json:"department" binding:"required"`
	Password   string `json:"password" binding:"required,min=6"`
}

func (h *Handler) SignUp(c *gin.Context) {
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

	h.Log.Info("registered", zap.String("employeeId", emp.ID))
	c.JSON(http.StatusCreated, common.NewSuccessResponse(toEmployeeDTO(*emp)))
}
