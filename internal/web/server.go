package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"git.sr.ht/~jakintosh/sweep/internal/domain"
	"git.sr.ht/~jakintosh/sweep/internal/schedule"
)

type ServerOptions struct {
	Logger *zap.Logger
}

type Server struct {
	store        *schedule.Store
	router       *http.ServeMux
	presentation *Presentation
	log          *zap.Logger
}

func NewServer(store *schedule.Store, opts ServerOptions) (*Server, error) {
	pres, err := NewPresentation()
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		store:        store,
		router:       http.NewServeMux(),
		presentation: pres,
		log:          log,
	}
	s.routes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.router.ServeHTTP(w, r)
	s.log.Debug("request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Duration("took", time.Since(start)),
	)
}

func (s *Server) routes() {
	// Page Routes
	s.router.HandleFunc("GET /{$}", s.handleIndex)
	s.router.HandleFunc("POST /filter", s.handleSetFilter)

	// Task Routes
	s.router.HandleFunc("POST /tasks", s.handleCreateTask)
	s.router.HandleFunc("POST /tasks/restore", s.handleRestoreTask)
	s.router.HandleFunc("GET /tasks/{id}/edit", s.handleEditTaskForm)
	s.router.HandleFunc("POST /tasks/{id}", s.handleUpdateTask)
	s.router.HandleFunc("POST /tasks/{id}/toggle", s.handleToggleTask)
	s.router.HandleFunc("POST /tasks/{id}/delete", s.handleDeleteTask)
	s.router.HandleFunc("DELETE /tasks/{id}", s.handleDeleteTask)

	// JSON API
	s.router.HandleFunc("GET /api/tasks", s.handleListTasksJSON)
	s.router.HandleFunc("GET /api/summary", s.handleSummaryJSON)

	s.router.Handle("GET /metrics", promhttp.Handler())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if err := s.presentation.RenderIndex(w, NewPageView(s.store)); err != nil {
		s.renderFailed(w, err)
	}
}

func (s *Server) handleSetFilter(w http.ResponseWriter, r *http.Request) {
	ctx := parseRequestContext(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	room, err := domain.ParseRoom(r.FormValue("room"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.store.SetSelectedRoom(room)

	if ctx.redirectHome(w, r) {
		return
	}
	s.renderBoard(w)
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := parseRequestContext(r)
	input, err := parseTaskForm(r)
	if err != nil {
		s.rejectForm(w, "", input, err)
		return
	}

	task := s.store.Add(input)
	s.log.Info("task created", zap.String("id", task.ID), zap.String("name", task.Name))

	if ctx.redirectHome(w, r) {
		return
	}
	s.renderBoard(w)
}

func (s *Server) handleEditTaskForm(w http.ResponseWriter, r *http.Request) {
	task, ok := s.store.GetTask(r.PathValue("id"))
	if !ok {
		http.Error(w, "task not found", http.StatusNotFound)
		return
	}

	view := NewTaskFormView(task.ID, newTaskFrom(task), nil)
	if err := s.presentation.RenderTaskForm(w, view); err != nil {
		s.renderFailed(w, err)
	}
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	ctx := parseRequestContext(r)
	id := r.PathValue("id")

	input, err := parseTaskForm(r)
	if err != nil {
		s.rejectForm(w, id, input, err)
		return
	}

	// A task deleted while its form was open stays deleted.
	if existing, ok := s.store.GetTask(id); ok {
		updated := input.WithID(id)
		updated.Completed = existing.Completed
		s.store.Update(updated)
	}

	if ctx.redirectHome(w, r) {
		return
	}
	s.renderBoard(w)
}

func (s *Server) handleToggleTask(w http.ResponseWriter, r *http.Request) {
	ctx := parseRequestContext(r)
	s.store.ToggleCompletion(r.PathValue("id"))

	if ctx.redirectHome(w, r) {
		return
	}
	s.renderBoard(w)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := parseRequestContext(r)
	id := r.PathValue("id")
	s.store.Delete(id)
	s.log.Info("task deleted", zap.String("id", id))

	if r.Method == http.MethodDelete && !ctx.IsHTMX {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if ctx.redirectHome(w, r) {
		return
	}
	s.renderBoard(w)
}

func (s *Server) handleRestoreTask(w http.ResponseWriter, r *http.Request) {
	ctx := parseRequestContext(r)
	if !s.store.RecoverLastDeleted() {
		http.Error(w, "nothing to restore", http.StatusConflict)
		return
	}

	if ctx.redirectHome(w, r) {
		return
	}
	s.renderBoard(w)
}

func (s *Server) handleListTasksJSON(w http.ResponseWriter, r *http.Request) {
	room, err := domain.ParseRoom(r.URL.Query().Get("room"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, s.store.FilteredTasks(room))
}

func (s *Server) handleSummaryJSON(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, schedule.Summarize(s.store.Tasks()))
}

func (s *Server) renderBoard(w http.ResponseWriter) {
	if err := s.presentation.RenderBoard(w, NewBoardView(s.store)); err != nil {
		s.renderFailed(w, err)
	}
}

// rejectForm answers an invalid task form with the form itself, errors
// inline, and a 400.
func (s *Server) rejectForm(w http.ResponseWriter, id string, input domain.NewTask, err error) {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusBadRequest)
	if err := s.presentation.RenderTaskForm(w, NewTaskFormView(id, input, verr.Fields)); err != nil {
		s.log.Error("failed to render task form", zap.Error(err))
	}
}

func (s *Server) renderFailed(w http.ResponseWriter, err error) {
	s.log.Error("render failed", zap.Error(err))
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

func parseTaskForm(r *http.Request) (domain.NewTask, error) {
	input := domain.DefaultNewTask()
	if err := r.ParseForm(); err != nil {
		return input, err
	}

	input.Name = strings.TrimSpace(r.FormValue("name"))
	input.Description = strings.TrimSpace(r.FormValue("description"))
	if v := r.FormValue("room"); v != "" {
		input.Room = domain.Room(strings.ToLower(v))
	}
	if v := r.FormValue("day"); v != "" {
		input.Day = domain.Day(strings.ToLower(v))
	}
	if v := r.FormValue("notification_time"); v != "" {
		input.Notification.Time = domain.NotificationTime(v)
	}
	if v := r.FormValue("notification_method"); v != "" {
		input.Notification.Method = domain.NotificationMethod(v)
	}
	return input, input.Validate()
}

func newTaskFrom(t domain.CleaningTask) domain.NewTask {
	return domain.NewTask{
		Name:         t.Name,
		Description:  t.Description,
		Room:         t.Room,
		Day:          t.Day,
		Notification: t.Notification,
		Completed:    t.Completed,
	}
}
