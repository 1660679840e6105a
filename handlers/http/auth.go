package httpHandler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/john-san/rest-api/entities"
	"github.com/john-san/rest-api/usecases"
)

const currentUserKey = "currentUser"

// BasicAuth authenticates the request from a standard Basic-Auth header and
// attaches the user to the gin context. Failure is terminal for the request.
func BasicAuth(users *usecases.UserUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="course-catalog"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authorization header is required",
			})
			return
		}

		user, err := users.Authenticate(email, password)
		if err != nil {
			if !errors.Is(err, usecases.ErrInvalidCredentials) {
				log.Printf("authenticate %s: %v", email, err)
			}
			c.Header("WWW-Authenticate", `Basic realm="course-catalog"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": usecases.ErrInvalidCredentials.Error(),
			})
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by BasicAuth, or nil
// on unauthenticated routes.
func CurrentUser(c *gin.Context) *entities.User {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, ok := v.(*entities.User)
	if !ok {
		return nil
	}
	return user
}

// respondError maps use-case errors onto the API's structured error body.
// Anything outside the taxonomy becomes an opaque 500; internal details are
// logged, never returned.
func respondError(c *gin.Context, err error) {
	var conflict *usecases.ConflictError
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": conflict.Message})
	case errors.Is(err, usecases.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, usecases.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
