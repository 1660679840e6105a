package httpHandler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/john-san/rest-api/usecases"
	"github.com/john-san/rest-api/validation"
)

type UserHandler struct {
	useCase *usecases.UserUseCase
}

func NewUserHandler(useCase *usecases.UserUseCase) *UserHandler {
	return &UserHandler{useCase: useCase}
}

type createUserRequest struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	EmailAddress string `json:"emailAddress" validate:"required,email"`
	Password     string `json:"password" validate:"required,min=6,max=18"`
}

type updateUserRequest struct {
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	EmailAddress string `json:"emailAddress" validate:"omitempty,email"`
	Password     string `json:"password" validate:"omitempty,min=6,max=18"`
}

// GetCurrentUser handles GET /api/v1/users
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	user := CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{
		"id":           user.ID,
		"firstName":    user.FirstName,
		"lastName":     user.LastName,
		"emailAddress": user.EmailAddress,
	})
}

// CreateUser handles POST /api/v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	// Length constraints apply to the trimmed password.
	req.Password = strings.TrimSpace(req.Password)

	if violations := validation.Check(req); violations != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
		return
	}

	if _, err := h.useCase.Register(req.FirstName, req.LastName, req.EmailAddress, req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", "/")
	c.Status(http.StatusCreated)
}

// UpdateUser handles PUT /api/v1/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req.Password = strings.TrimSpace(req.Password)

	if violations := validation.Check(req); violations != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
		return
	}

	err := h.useCase.UpdateUser(CurrentUser(c), c.Param("id"), usecases.UpdateUserInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		Password:     req.Password,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteUser handles DELETE /api/v1/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.useCase.DeleteUser(CurrentUser(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
