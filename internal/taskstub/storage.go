package taskstub

import (
	"sort"
	"sync"
	"time"

	"github.com/KasumiMercury/primind-deadline-reminder/internal/clock"
	"github.com/KasumiMercury/primind-deadline-reminder/internal/domain"
)

type storedTask struct {
	ID       domain.TaskID
	Name     string
	Deadline time.Time
}

// Storage keeps seeded tasks and derives minutes_until from its clock at read
// time, the way the tasks server does.
type Storage struct {
	mu       sync.RWMutex
	clock    clock.Clock
	tasks    map[domain.TaskID]storedTask
	failWith int
	requests int
}

func NewStorage(clk clock.Clock) *Storage {
	return &Storage{
		clock: clk,
		tasks: make(map[domain.TaskID]storedTask),
	}
}

func (s *Storage) Put(id domain.TaskID, name string, deadline time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks[id] = storedTask{ID: id, Name: name, Deadline: deadline}
}

func (s *Storage) Remove(id domain.TaskID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.tasks[id]
	delete(s.tasks, id)
	return ok
}

func (s *Storage) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = make(map[domain.TaskID]storedTask)
	s.failWith = 0
	s.requests = 0
}

// FailWith makes subsequent upcoming requests answer with status. Zero restores
// normal responses.
func (s *Storage) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = status
}

func (s *Storage) Requests() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.requests
}

// Upcoming returns every stored task ordered by deadline, or the configured
// failure status.
func (s *Storage) Upcoming() ([]domain.Task, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests++
	if s.failWith != 0 {
		return nil, s.failWith
	}

	now := s.clock.Now()
	tasks := make([]domain.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, domain.Task{
			ID:           t.ID,
			Name:         t.Name,
			Deadline:     t.Deadline,
			MinutesUntil: int(t.Deadline.Sub(now) / time.Minute),
		})
	}

	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].Deadline.Before(tasks[j].Deadline)
	})

	return tasks, 0
}
