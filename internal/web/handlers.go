package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/board"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/db"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/models"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/parser"
	"github.com/shekharraju04-ctrl/SRATASKMANAGEMENT2904/internal/state"
)

// fail writes the error envelope every handler uses
func fail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"success": false,
		"error":   message,
	})
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	var (
		validation   state.ValidationError
		notFound     state.TaskNotFoundError
		subNotFound  state.SubtaskNotFoundError
		blocked      state.BlockedError
		selfDep      board.SelfDependencyError
		missingDep   board.PrerequisiteNotFoundError
		crossDep     board.CrossProjectDependencyError
		cycle        board.DependencyCycleError
		clientAbsent db.ClientNotFoundError
		readOnly     db.ReadOnlyQueryError
	)
	switch {
	case errors.As(err, &notFound), errors.As(err, &subNotFound), errors.As(err, &clientAbsent):
		return http.StatusNotFound
	case errors.As(err, &blocked):
		return http.StatusConflict
	case errors.As(err, &validation), errors.As(err, &selfDep), errors.As(err, &missingDep),
		errors.As(err, &crossDep), errors.As(err, &cycle), errors.As(err, &readOnly):
		return http.StatusBadRequest
	case errors.Is(err, state.ErrAssistantDisabled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// viewFromQuery applies ?mode=&filter=&sort= to a copy of the session state.
// The shared selection is left untouched.
func (s *Server) viewFromQuery(c *gin.Context) (state.State, bool) {
	st := s.session.State()
	if v := c.Query("mode"); v != "" {
		mode, err := parser.ParseViewMode(v)
		if err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return st, false
		}
		st = state.Reduce(st, state.ViewModeChanged{Mode: mode})
	}
	if v := c.Query("filter"); v != "" {
		st = state.Reduce(st, state.FilterSelected{ID: v})
	}
	if v := c.Query("sort"); v != "" {
		sortBy, err := parser.ParseSortBy(v)
		if err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return st, false
		}
		st = state.Reduce(st, state.SortChanged{SortBy: sortBy})
	}
	return st, true
}

func (s *Server) handleSnapshot(c *gin.Context) {
	st := s.session.State()
	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"snapshot":          st.Snapshot,
		"view":              st.View,
		"filter_options":    st.FilterOptions(),
		"long_pending_days": st.LongPendingDays,
	})
}

func (s *Server) handleBoard(c *gin.Context) {
	st, ok := s.viewFromQuery(c)
	if !ok {
		return
	}
	b := state.Board(st)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    b,
		"count":   b.TaskCount(),
	})
}

func (s *Server) handleDashboard(c *gin.Context) {
	st := s.session.State()
	today := s.session.Today()
	resp := gin.H{
		"success": true,
		"data":    state.Dashboard(st, today),
	}

	if v := c.Query("stat"); v != "" {
		stat, err := parser.ParseStat(v)
		if err != nil {
			fail(c, http.StatusBadRequest, err.Error())
			return
		}
		tasks := state.StatTasks(state.Reduce(st, state.StatSelected{Stat: stat}), today)
		if tasks == nil {
			tasks = []board.TaskWithDetails{}
		}
		resp["stat"] = stat
		resp["tasks"] = tasks
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleGantt(c *gin.Context) {
	st, ok := s.viewFromQuery(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    state.Gantt(st),
	})
}

func (s *Server) handleTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    models.BuiltinTemplates(),
	})
}

type settingsRequest struct {
	LongPendingDays *int `json:"long_pending_days"`
}

func (s *Server) handleGetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"long_pending_days": s.session.State().LongPendingDays,
	})
}

func (s *Server) handleUpdateSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.LongPendingDays == nil {
		fail(c, http.StatusBadRequest, "long_pending_days is required")
		return
	}
	if err := s.session.SetLongPendingDays(c.Request.Context(), *req.LongPendingDays); err != nil {
		fail(c, statusFor(err), err.Error())
		return
	}
	s.handleGetSettings(c)
}
