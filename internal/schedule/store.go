// Package schedule owns the weekly cleaning schedule: the live task list, its
// mutations, and the durable mirror that keeps it across sessions.
//
// A Store is built once per process and handed to every consumer. Each
// mutation that changes the list rewrites the whole mirror before returning.
// Operations never fail: a missing task ID is a no-op, and a broken mirror is
// logged and replaced by an empty list.
package schedule

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"git.sr.ht/~jakintosh/sweep/internal/domain"
)

// DefaultKey is the slot name the task list is mirrored under.
const DefaultKey = "cleaningTasks"

type Store struct {
	mu    sync.Mutex
	slot  domain.Slot
	key   string
	log   *zap.Logger
	newID func() string
	tasks []domain.CleaningTask
	room  *domain.Room

	// lastDeleted holds the most recently deleted task until it is recovered.
	// Each Delete overwrites it; whatever was held before is gone for good.
	lastDeleted *domain.CleaningTask
}

type Option func(*Store)

func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithIDFunc replaces the UUID generator.
func WithIDFunc(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

func New(slot domain.Slot, opts ...Option) *Store {
	s := &Store{
		slot:  slot,
		key:   DefaultKey,
		log:   zap.NewNop(),
		newID: uuid.NewString,
		tasks: []domain.CleaningTask{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the live list with the mirror's contents. An absent mirror
// gives an empty list; an unreadable or malformed one is logged and also
// gives an empty list.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = []domain.CleaningTask{}
	defer func() { LiveTasks.Set(float64(len(s.tasks))) }()

	raw, ok, err := s.slot.Get(s.key)
	if err != nil {
		LoadsTotal.WithLabelValues("error").Inc()
		s.log.Error("failed to read saved tasks", zap.String("key", s.key), zap.Error(err))
		return
	}
	if !ok {
		LoadsTotal.WithLabelValues("empty").Inc()
		return
	}

	tasks, migrated, err := DecodeTasks(raw)
	if err != nil {
		LoadsTotal.WithLabelValues("malformed").Inc()
		s.log.Error("error parsing saved tasks", zap.String("key", s.key), zap.Error(err))
		return
	}

	if migrated > 0 {
		MigratedRecords.Add(float64(migrated))
		s.log.Info("migrated legacy tasks", zap.Int("count", migrated))
	}
	LoadsTotal.WithLabelValues("ok").Inc()
	s.tasks = tasks
	s.log.Debug("loaded tasks", zap.Int("count", len(tasks)))
}

// Tasks returns a copy of the live list in insertion order.
func (s *Store) Tasks() []domain.CleaningTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CleaningTask{}, s.tasks...)
}

func (s *Store) GetTask(id string) (domain.CleaningTask, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return domain.CleaningTask{}, false
}

// Add stores a new task under a freshly generated ID and returns it.
func (s *Store) Add(input domain.NewTask) domain.CleaningTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := input.WithID(s.newID())
	s.tasks = append(s.tasks, task)
	s.commit("add")
	return task
}

// Update replaces the task with the same ID, keeping its position. Edits to a
// task that no longer exists are dropped silently.
func (s *Store) Update(task domain.CleaningTask) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(task.ID)
	if i < 0 {
		return
	}
	s.tasks[i] = task
	s.commit("update")
}

// Delete removes the task and parks a copy in the holding slot.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	removed := s.tasks[i]
	s.lastDeleted = &removed

	next := make([]domain.CleaningTask, 0, len(s.tasks)-1)
	next = append(next, s.tasks[:i]...)
	next = append(next, s.tasks[i+1:]...)
	s.tasks = next
	s.commit("delete")
}

func (s *Store) ToggleCompletion(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.tasks[i].Completed = !s.tasks[i].Completed
	s.commit("toggle")
}

// RecoverLastDeleted appends the held task to the end of the list and empties
// the holding slot. It reports false when there was nothing to recover.
//
// The task comes back with its original ID. Only the latest delete is held,
// so nothing guards against that ID having been reused in the meantime.
func (s *Store) RecoverLastDeleted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastDeleted == nil {
		return false
	}
	s.tasks = append(s.tasks, *s.lastDeleted)
	s.lastDeleted = nil
	s.commit("recover")
	return true
}

// LastDeleted peeks at the holding slot.
func (s *Store) LastDeleted() (domain.CleaningTask, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastDeleted == nil {
		return domain.CleaningTask{}, false
	}
	return *s.lastDeleted, true
}

// FilteredTasks returns the tasks in room, or every task when room is nil.
func (s *Store) FilteredTasks(room *domain.Room) []domain.CleaningTask {
	s.mu.Lock()
	defer s.mu.Unlock()

	if room == nil {
		return append([]domain.CleaningTask{}, s.tasks...)
	}
	filtered := []domain.CleaningTask{}
	for _, t := range s.tasks {
		if t.Room == *room {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// SelectedRoom is the session's room filter. It is never persisted.
func (s *Store) SelectedRoom() *domain.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.room == nil {
		return nil
	}
	r := *s.room
	return &r
}

// SetSelectedRoom sets the room filter; nil shows every room.
func (s *Store) SetSelectedRoom(room *domain.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if room == nil {
		s.room = nil
		return
	}
	r := *room
	s.room = &r
}

func (s *Store) indexOf(id string) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// commit mirrors the full list to the slot. Must be called with mu held.
func (s *Store) commit(op string) {
	MutationsTotal.WithLabelValues(op).Inc()
	LiveTasks.Set(float64(len(s.tasks)))

	data, err := EncodeTasks(s.tasks)
	if err == nil {
		err = s.slot.Set(s.key, data)
	}
	if err != nil {
		MirrorWriteFailures.Inc()
		s.log.Error("failed to save tasks",
			zap.String("op", op),
			zap.String("key", s.key),
			zap.Error(err),
		)
	}
}
