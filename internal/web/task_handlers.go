package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/state"
)

// taskPatch holds the editable task fields. Absent fields are left alone.
type taskPatch struct {
	Title          *string                `json:"title"`
	Description    *string                `json:"description"`
	Priority       *models.Priority       `json:"priority"`
	Status         *models.Status         `json:"status"`
	StartDate      *models.Date           `json:"start_date"`
	DueDate        *models.Date           `json:"due_date"`
	EngagementType *models.EngagementType `json:"engagement_type"`
	Assignee       *models.Assignee       `json:"assignee"`
	DependsOn      *string                `json:"depends_on"`
	Financials     *models.Financials     `json:"financials"`
	Attachments    *[]models.Attachment   `json:"attachments"`
}

func (p taskPatch) apply(t *models.Task) {
	if p.Title != nil {
		t.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.StartDate != nil {
		t.StartDate = *p.StartDate
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.EngagementType != nil {
		t.EngagementType = *p.EngagementType
	}
	if p.Assignee != nil {
		t.Assignee = *p.Assignee
	}
	if p.DependsOn != nil {
		t.DependsOn = *p.DependsOn
	}
	if p.Financials != nil {
		f := *p.Financials
		t.Financials = &f
	}
	if p.Attachments != nil {
		t.Attachments = append([]models.Attachment(nil), (*p.Attachments)...)
	}
}

// writeUpdate reports an optimistic update. A rolled back update carries the
// restored task so clients can redraw it.
func writeUpdate(c *gin.Context, res state.UpdateResult) {
	if res.Err != nil {
		c.JSON(statusFor(res.Err), gin.H{
			"success": false,
			"error":   res.Reason,
			"outcome": res.Outcome,
			"data":    res.Task,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"outcome": res.Outcome,
		"data":    res.Task,
	})
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var in state.NewTask
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if len(in.Description) > maxTextSize {
		fail(c, http.StatusBadRequest, "description exceeds maximum size of 64KB")
		return
	}

	task, err := s.session.CreateTask(c.Request.Context(), in)
	if err != nil {
		fail(c, statusFor(err), err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"id":      task.ID,
		"data":    task,
	})
}

func (s *Server) handleGetTask(c *gin.Context) {
	st := s.session.State()
	task, ok := st.FindTask(c.Param("id"))
	if !ok {
		fail(c, http.StatusNotFound, "task not found")
		return
	}

	enriched := board.Enrich([]models.Task{task}, st.Snapshot.Clients, st.Snapshot.Projects)[0]
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       enriched,
		"dependency": state.Dependency(st, task),
		"candidates": board.DependencyCandidates(task, st.Snapshot.Tasks),
		"urgency":    board.DueDateUrgency(task.DueDate, s.session.Today()),
		"pending":    st.Pending(task.ID),
	})
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	var patch taskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if patch.Description != nil && len(*patch.Description) > maxTextSize {
		fail(c, http.StatusBadRequest, "description exceeds maximum size of 64KB")
		return
	}
	writeUpdate(c, s.session.EditTask(c.Request.Context(), c.Param("id"), patch.apply))
}

type moveRequest struct {
	Status models.Status `json:"status" binding:"required"`
}

func (s *Server) handleMoveTask(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	writeUpdate(c, s.session.MoveTask(c.Request.Context(), c.Param("id"), req.Status))
}

func (s *Server) handleToggleSubtask(c *gin.Context) {
	writeUpdate(c, s.session.ToggleSubtask(c.Request.Context(), c.Param("id"), c.Param("subtaskId")))
}

type commentRequest struct {
	User models.Assignee `json:"user"`
	Text string          `json:"text"`
}

func (s *Server) handleAddComment(c *gin.Context) {
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Text) > maxTextSize {
		fail(c, http.StatusBadRequest, "comment exceeds maximum size of 64KB")
		return
	}
	if strings.TrimSpace(req.User.Name) == "" {
		req.User.Name = "Anonymous"
	}
	writeUpdate(c, s.session.AddComment(c.Request.Context(), c.Param("id"), req.User, req.Text))
}

func (s *Server) handleSuggest(c *gin.Context) {
	sg, err := s.session.Suggest(c.Request.Context(), c.Param("id"))
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
		"data":    sg,
	})
}

func (s *Server) handleApplySuggestion(c *gin.Context) {
	var sg state.Suggestion
	if err := c.ShouldBindJSON(&sg); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	sg.TaskID = c.Param("id")
	writeUpdate(c, s.session.ApplySuggestion(c.Request.Context(), sg))
}
