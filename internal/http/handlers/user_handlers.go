package handlers

import (
	"net/http"
	"strconv"

	"github.com/JitendraSingh9587/TalkNTrade-Api/domain"
	"github.com/JitendraSingh9587/TalkNTrade-Api/internal/http/middleware"
	"github.com/gin-gonic/gin"
)

// UserHandlers handles user management HTTP requests
type UserHandlers struct {
	userSvc domain.UserService
}

// NewUserHandlers creates new user handlers
func NewUserHandlers(userSvc domain.UserService) *UserHandlers {
	return &UserHandlers{userSvc: userSvc}
}

// CreateUserRequest represents user creation request
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role,omitempty"`
}

// UpdateUserRequest represents user update request
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty" binding:"omitempty,email"`
	Mobile   *string `json:"mobile,omitempty"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`
	Role     *string `json:"role,omitempty"`
}

// List handles GET /users
func (h *UserHandlers) List(c *gin.Context) {
	var filter domain.UserFilter
	if v := c.Query("role"); v != "" {
		role := domain.Role(v)
		if !role.Valid() {
			sendError(c, http.StatusBadRequest, "Invalid role filter")
			return
		}
		filter.Role = &role
	}
	if v := c.Query("is_disabled"); v != "" {
		disabled := v == "true"
		filter.IsDisabled = &disabled
	}
	filter.Search = c.Query("search")

	page := domain.Pagination{
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 10),
	}

	users, info, err := h.userSvc.List(c.Request.Context(), filter, page)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list users")
		return
	}

	payload := make([]gin.H, 0, len(users))
	for i := range users {
		payload = append(payload, userPayload(&users[i]))
	}
	sendSuccess(c, http.StatusOK, "Users retrieved successfully", gin.H{
		"users":      payload,
		"pagination": info,
	})
}

// Get handles GET /users/:id
func (h *UserHandlers) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	user, err := h.userSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == domain.ErrUserNotFound {
			sendError(c, http.StatusNotFound, err.Error())
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to get user")
		return
	}
	sendSuccess(c, http.StatusOK, "User retrieved successfully", userPayload(user))
}

// Create handles POST /users
func (h *UserHandlers) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	role := domain.Role(req.Role)
	if req.Role != "" && !role.Valid() {
		sendError(c, http.StatusBadRequest, "Invalid role")
		return
	}

	user := &domain.User{
		Name:   req.Name,
		Email:  req.Email,
		Mobile: req.Mobile,
		Role:   role,
	}

	created, err := h.userSvc.Create(c.Request.Context(), user, req.Password)
	if err != nil {
		switch err {
		case domain.ErrEmailExists, domain.ErrMobileExists:
			sendError(c, http.StatusConflict, err.Error())
		default:
			sendError(c, http.StatusInternalServerError, "Failed to create user")
		}
		return
	}
	sendSuccess(c, http.StatusCreated, "User created successfully", userPayload(created))
}

// Update handles PUT /users/:id
func (h *UserHandlers) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	changes := domain.UserUpdate{
		Name:     req.Name,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: req.Password,
	}
	if req.Role != nil {
		role := domain.Role(*req.Role)
		if !role.Valid() {
			sendError(c, http.StatusBadRequest, "Invalid role")
			return
		}
		changes.Role = &role
	}

	identity, _ := middleware.IdentityFrom(c)

	user, err := h.userSvc.Update(c.Request.Context(), id, changes, identity.UserID)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			sendError(c, http.StatusNotFound, err.Error())
		case domain.ErrEmailExists, domain.ErrMobileExists:
			sendError(c, http.StatusConflict, err.Error())
		case domain.ErrOwnRoleChange:
			sendError(c, http.StatusForbidden, err.Error())
		default:
			sendError(c, http.StatusInternalServerError, "Failed to update user")
		}
		return
	}
	sendSuccess(c, http.StatusOK, "User updated successfully", userPayload(user))
}

// Disable handles PATCH /users/:id/disable
func (h *UserHandlers) Disable(c *gin.Context) {
	h.setDisabled(c, true, "User disabled successfully")
}

// Enable handles PATCH /users/:id/enable
func (h *UserHandlers) Enable(c *gin.Context) {
	h.setDisabled(c, false, "User enabled successfully")
}

func (h *UserHandlers) setDisabled(c *gin.Context, disabled bool, message string) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	identity, _ := middleware.IdentityFrom(c)

	user, err := h.userSvc.SetDisabled(c.Request.Context(), id, disabled, identity.UserID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			sendError(c, http.StatusNotFound, err.Error())
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to update user")
		return
	}
	sendSuccess(c, http.StatusOK, message, userPayload(user))
}

// Delete handles DELETE /users/:id
func (h *UserHandlers) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	identity, _ := middleware.IdentityFrom(c)

	if err := h.userSvc.Delete(c.Request.Context(), id, identity.UserID); err != nil {
		switch err {
		case domain.ErrUserNotFound:
			sendError(c, http.StatusNotFound, err.Error())
		case domain.ErrSelfDelete, domain.ErrLastSuperAdmin:
			sendError(c, http.StatusForbidden, err.Error())
		default:
			sendError(c, http.StatusInternalServerError, "Failed to delete user")
		}
		return
	}
	sendSuccess(c, http.StatusOK, "User deleted successfully", nil)
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return def
	}
	return v
}
