package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// handlers carries the shared dependencies of every route handler.
type handlers struct {
	db     *gorm.DB
	secret string
	ttl    time.Duration
}

// registerRoutes sets up the public endpoints and the token-protected /api
// surface.
func registerRoutes(router *gin.Engine, opts StartOpts) {
	h := &handlers{db: opts.DB, secret: opts.Secret, ttl: opts.TokenTTL}

	router.GET("/", h.welcome)
	router.GET("/healthz", h.health)
	router.POST("/users", h.createUser)
	router.POST("/login", h.login)

	api := router.Group("/api")
	api.Use(authRequired(opts.Secret))
	{
		api.GET("/projects", h.listProjects)
		api.POST("/projects", h.createProject)
		api.GET("/my-projects", h.listMyProjects)
		api.PUT("/projects/:id", h.updateProject)
		api.DELETE("/projects/:id", h.deleteProject)
		api.GET("/projects/:id/details", h.projectDetails)

		api.POST("/projects/:id/payment", h.createPayment)
		api.PUT("/payments/:id", h.updatePayment)
		api.DELETE("/projects/:id/payments/:payment_id", h.deletePayment)
		api.GET("/payments/template", h.paymentTemplate)
		api.POST("/projects/:id/payments/import", h.importPayments)

		api.POST("/projects/:id/matter", h.createMatter)
		api.PUT("/matters/:id", h.updateMatter)

		api.POST("/projects/:id/task", h.createTask)
		api.PUT("/projects/:id/task/:task_id", h.updateTask)
		api.DELETE("/projects/:id/task/:task_id", h.deleteTask)
		api.GET("/projects/:id/tasks_nested", h.listNestedTasks)
		api.POST("/tasks/:id/comments", h.createTaskComment)
	}
}

func (h *handlers) welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to Trestle"})
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
