package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "taskboard-backend/internal/common/errors"
	"taskboard-backend/internal/common/middleware"
	"taskboard-backend/internal/features/user/models"
	"taskboard-backend/internal/features/user/service"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.POST("", h.CreateUser)
		users.GET("/:id", h.GetUser)
		users.PATCH("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}
}

// @Summary List users
// @Description All users, newest first
// @Tags users
// @Produce json
// @Success 200 {array} models.UserSummary
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, err, "Failed to fetch users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// @Summary Create user
// @Description Create a user. Email and wallet address must be unused; role defaults to MEMBER
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.CreateUserRequest true "New user"
// @Success 201 {object} models.UserSummary
// @Failure 400 {object} models.ErrorResponse "Missing name, invalid input or duplicate email/wallet"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, apperrors.NewValidationError("Invalid request body"), "")
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		middleware.AbortWithError(c, err, "Failed to create user")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// @Summary Get user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.UserEnvelope
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.AbortWithError(c, err, "Failed to fetch user")
		return
	}
	c.JSON(http.StatusOK, models.UserEnvelope{User: user, Success: true})
}

// @Summary Update user
// @Description Partial update. Absent fields are unchanged; null clears email, avatar or walletAddress
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body models.UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.UserEnvelope
// @Failure 400 {object} models.ErrorResponse "Invalid input or duplicate email/wallet"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, apperrors.NewValidationError("Invalid request body"), "")
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		middleware.AbortWithError(c, err, "Failed to update user")
		return
	}
	c.JSON(http.StatusOK, models.UserEnvelope{User: user, Success: true})
}

// @Summary Delete user
// @Description Delete a user. Users who created tasks cannot be deleted
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.UserEnvelope
// @Failure 400 {object} models.ErrorResponse "User still has tasks"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	user, err := h.service.DeleteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		middleware.AbortWithError(c, err, "Failed to delete user")
		return
	}
	c.JSON(http.StatusOK, models.UserEnvelope{User: user, Success: true})
}
