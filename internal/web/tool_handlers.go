package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/state"
)

type searchRequest struct {
	Query string `json:"query"`
}

func (s *Server) handleSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Query) > maxQuerySize {
		fail(c, http.StatusBadRequest, "query exceeds maximum size of 10KB")
		return
	}

	st := s.session.Search(c.Request.Context(), req.Query)
	if st.Search.Error != "" {
		c.JSON(http.StatusBadGateway, gin.H{
			"success": false,
			"error":   st.Search.Error,
			"query":   st.Search.Query,
		})
		return
	}

	results := state.SearchResults(st)
	if results == nil {
		results = []board.TaskWithDetails{}
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"query":   st.Search.Query,
		"results": results,
		"count":   len(results),
	})
}

type sqlRequest struct {
	SQL string `json:"sql"`
}

func (s *Server) bindSQL(c *gin.Context) (string, bool) {
	var req sqlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return "", false
	}
	if strings.TrimSpace(req.SQL) == "" {
		fail(c, http.StatusBadRequest, "sql is required")
		return "", false
	}
	if len(req.SQL) > maxQuerySize {
		fail(c, http.StatusBadRequest, "sql exceeds maximum size of 10KB")
		return "", false
	}
	return req.SQL, true
}

func (s *Server) handleFormatSQL(c *gin.Context) {
	query, ok := s.bindSQL(c)
	if !ok {
		return
	}
	formatted, err := s.session.FormatSQL(c.Request.Context(), query)
	if err != nil {
		code := statusFor(err)
		if code == http.StatusInternalServerError {
			code = http.StatusBadGateway
		}
		fail(c, code, s.session.UserMessage(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"sql":     formatted,
	})
}

func (s *Server) handleSchema(c *gin.Context) {
	schema, err := s.catalog.Schema(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"schema":  schema,
	})
}

func (s *Server) handleRunQuery(c *gin.Context) {
	query, ok := s.bindSQL(c)
	if !ok {
		return
	}
	result, err := s.catalog.RunQuery(c.Request.Context(), query)
	if err != nil {
		fail(c, statusFor(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
		"count":   len(result.Rows),
	})
}

type clientRequest struct {
	Name string `json:"name" binding:"required"`
}

type projectRequest struct {
	Name     string `json:"name" binding:"required"`
	ClientID string `json:"client_id" binding:"required"`
}

// reload refreshes the session after a catalog change so the next board
// request sees the new entity
func (s *Server) reload(c *gin.Context) bool {
	if err := s.session.Load(c.Request.Context()); err != nil {
		fail(c, http.StatusInternalServerError, err.Error())
		return false
	}
	return true
}

func (s *Server) handleCreateClient(c *gin.Context) {
	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	client, err := s.catalog.CreateClient(c.Request.Context(), req.Name)
	if err != nil {
		fail(c, statusFor(err), err.Error())
		return
	}
	if !s.reload(c) {
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"id":      client.ID,
		"data":    client,
	})
}

func (s *Server) handleCreateProject(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	project, err := s.catalog.CreateProject(c.Request.Context(), req.Name, req.ClientID)
	if err != nil {
		fail(c, statusFor(err), err.Error())
		return
	}
	if !s.reload(c) {
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"id":      project.ID,
		"data":    project,
	})
}

func (s *Server) handleSaveAssignee(c *gin.Context) {
	var req models.Assignee
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	saved, err := s.catalog.SaveAssignee(c.Request.Context(), req)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if !s.reload(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    saved,
	})
}
