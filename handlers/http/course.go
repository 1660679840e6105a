package httpHandler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/john-san/rest-api/entities"
	"github.com/john-san/rest-api/usecases"
	"github.com/john-san/rest-api/validation"
)

type CourseHandler struct {
	useCase *usecases.CourseUseCase
}

func NewCourseHandler(useCase *usecases.CourseUseCase) *CourseHandler {
	return &CourseHandler{useCase: useCase}
}

type courseRequest struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description" validate:"required"`
	EstimatedTime   string `json:"estimatedTime"`
	MaterialsNeeded string `json:"materialsNeeded"`
}

// ListCourses handles GET /api/v1/courses
func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.useCase.ListCourses()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// GetCourse handles GET /api/v1/courses/:id
func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.useCase.GetCourse(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// CreateCourse handles POST /api/v1/courses. The authenticated caller
// becomes the owner; Location points at the persisted row's generated id.
func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if violations := validation.Check(req); violations != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
		return
	}

	course := &entities.Course{
		Title:           req.Title,
		Description:     req.Description,
		EstimatedTime:   req.EstimatedTime,
		MaterialsNeeded: req.MaterialsNeeded,
	}
	if err := h.useCase.CreateCourse(CurrentUser(c), course); err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", "/courses/"+course.ID)
	c.Status(http.StatusCreated)
}

// UpdateCourse handles PUT /api/v1/courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	var req courseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if violations := validation.Check(req); violations != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": violations})
		return
	}

	err := h.useCase.UpdateCourse(CurrentUser(c), c.Param("id"), usecases.UpdateCourseInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteCourse handles DELETE /api/v1/courses/:id
func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	if err := h.useCase.DeleteCourse(CurrentUser(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
