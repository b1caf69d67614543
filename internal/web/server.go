// Package web serves the board over a JSON API
package web

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/db"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/state"
)

const (
	maxTextSize  = 64 << 10 // 64KB
	maxQuerySize = 10 << 10 // 10KB
)

// Catalog is the part of the store the API uses directly
type Catalog interface {
	CreateClient(ctx context.Context, name string) (models.Client, error)
	CreateProject(ctx context.Context, name, clientID string) (models.Project, error)
	SaveAssignee(ctx context.Context, a models.Assignee) (models.Assignee, error)
	Schema(ctx context.Context) (string, error)
	RunQuery(ctx context.Context, query string) (db.QueryResult, error)
}

// Server is the sratask HTTP API
type Server struct {
	session *state.Session
	catalog Catalog
	router  *gin.Engine
}

// NewServer creates a new API server on top of a loaded session
func NewServer(session *state.Session, catalog Catalog) *Server {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	s := &Server{
		session: session,
		catalog: catalog,
		router:  router,
	}

	api := router.Group("/api")
	{
		api.GET("/snapshot", s.handleSnapshot)
		api.GET("/board", s.handleBoard)
		api.GET("/dashboard", s.handleDashboard)
		api.GET("/gantt", s.handleGantt)
		api.GET("/templates", s.handleTemplates)

		api.POST("/tasks", s.handleCreateTask)
		api.GET("/tasks/:id", s.handleGetTask)
		api.PUT("/tasks/:id", s.handleUpdateTask)
		api.POST("/tasks/:id/move", s.handleMoveTask)
		api.POST("/tasks/:id/subtasks/:subtaskId/toggle", s.handleToggleSubtask)
		api.POST("/tasks/:id/comments", s.handleAddComment)
		api.POST("/tasks/:id/suggestions", s.handleSuggest)
		api.POST("/tasks/:id/suggestions/apply", s.handleApplySuggestion)

		api.POST("/search", s.handleSearch)

		api.POST("/sql/format", s.handleFormatSQL)
		api.GET("/sql/schema", s.handleSchema)
		api.POST("/sql/query", s.handleRunQuery)

		api.GET("/settings", s.handleGetSettings)
		api.PUT("/settings", s.handleUpdateSettings)

		api.POST("/clients", s.handleCreateClient)
		api.POST("/projects", s.handleCreateProject)
		api.POST("/assignees", s.handleSaveAssignee)
	}

	return s
}

// ServeHTTP lets the server be mounted or tested as a plain handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run starts the web server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
