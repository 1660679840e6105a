package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/john-san/rest-api/cache"
	"github.com/john-san/rest-api/confs"
	"github.com/john-san/rest-api/db"
	"github.com/john-san/rest-api/handlers"
	httpHandler "github.com/john-san/rest-api/handlers/http"
	"github.com/john-san/rest-api/repositories"
	"github.com/john-san/rest-api/services"
	"github.com/john-san/rest-api/usecases"
	"github.com/john-san/rest-api/ws"
)

// catalogCacheTTL bounds staleness of cached course reads between mutations.
const catalogCacheTTL = 30 * time.Second

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
	}
}

// Router wires repositories, use cases and handlers onto the gin engine.
// Split from Start so tests can drive the full route table in-process.
func (s *Server) Router() *gin.Engine {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	courseRepo := repositories.NewCoursePgRepository(s.db)

	// Catalog event feed and read cache
	manager := ws.NewManager()
	dispatcher := services.NewEventDispatcher(manager)
	catalog := cache.New(catalogCacheTTL)

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo)
	courseUseCase := usecases.NewCourseUseCase(courseRepo, catalog, dispatcher)

	// Initialize handlers
	userHandler := httpHandler.NewUserHandler(userUseCase)
	courseHandler := httpHandler.NewCourseHandler(courseUseCase)
	cacheHandler := httpHandler.NewCacheHandler(catalog)
	wsHandler := handlers.NewWSHandler(manager)

	authRequired := httpHandler.BasicAuth(userUseCase)

	// Setup API routes
	api := s.app.Group("/api/v1")
	{
		// User routes
		users := api.Group("/users")
		{
			users.GET("", authRequired, userHandler.GetCurrentUser)
			users.POST("", userHandler.CreateUser)
			users.PUT("/:id", authRequired, userHandler.UpdateUser)
			users.DELETE("/:id", authRequired, userHandler.DeleteUser)
		}

		// Course routes
		courses := api.Group("/courses")
		{
			courses.GET("", courseHandler.ListCourses)
			courses.GET("/:id", courseHandler.GetCourse)
			courses.POST("", authRequired, courseHandler.CreateCourse)
			courses.PUT("/:id", authRequired, courseHandler.UpdateCourse)
			courses.DELETE("/:id", authRequired, courseHandler.DeleteCourse)
		}

		// Cache management endpoints
		api.GET("/cache/stats", cacheHandler.GetCacheStats)
	}

	// Catalog event feed
	s.app.GET("/ws", wsHandler.HandleCatalogWS)

	return s.app
}

func (s *Server) Start() {
	if err := s.Router().Run(confs.ServerAddress()); err != nil {
		panic(err)
	}
}
