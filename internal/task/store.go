package task

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/jorge-barreto/tasklist/internal/datetime"
	"github.com/jorge-barreto/tasklist/internal/status"
)

// Store is the ordered task collection. Positions are 1-based and follow
// insertion order; removing a task shifts every later one down by one.
// A Store is owned by a single caller and is not safe for concurrent use.
type Store struct {
	tasks []Task
	now   func() time.Time
	zone  *time.Location
}

// NewStore returns an empty store. now supplies the clock used for overdue
// classification and zone is the fixed offset that defines "today". A nil
// now uses time.Now and a nil zone means UTC.
func NewStore(now func() time.Time, zone *time.Location) *Store {
	if now == nil {
		now = time.Now
	}
	if zone == nil {
		zone = time.UTC
	}
	return &Store{now: now, zone: zone}
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Today returns the current calendar day in the store's zone.
func (s *Store) Today() datetime.Date {
	return datetime.DateOf(s.now().In(s.zone))
}

// Add appends a new task and derives its overdue tag from when.
func (s *Store) Add(priority status.Tag, when time.Time, details []string) (Task, error) {
	if len(details) == 0 {
		return Task{}, ErrBlankTask
	}
	t := Task{
		ID:       uuid.New(),
		When:     when,
		Priority: priority,
		Overdue:  status.Classify(datetime.DateOf(when), s.Today()),
		Details:  slices.Clone(details),
	}
	s.tasks = append(s.tasks, t)
	return t, nil
}

// Restore appends a previously persisted task as-is. Its overdue tag is
// kept, not recomputed.
func (s *Store) Restore(t Task) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	t.Details = slices.Clone(t.Details)
	s.tasks = append(s.tasks, t)
}

// List returns the tasks with their display positions. The sequence may be
// ranged over any number of times. An empty store returns ErrNoTasks.
func (s *Store) List() (iter.Seq2[int, Task], error) {
	if len(s.tasks) == 0 {
		return nil, ErrNoTasks
	}
	return func(yield func(int, Task) bool) {
		for i, t := range s.tasks {
			if !yield(i+1, t) {
				return
			}
		}
	}, nil
}

// CheckIndex validates a 1-based position.
func (s *Store) CheckIndex(index int) error {
	if len(s.tasks) == 0 {
		return ErrNoTasks
	}
	if index < 1 || index > len(s.tasks) {
		return fmt.Errorf("%w: %d not in 1-%d", ErrInvalidIndex, index, len(s.tasks))
	}
	return nil
}

// At returns the task at a 1-based position.
func (s *Store) At(index int) (Task, error) {
	if err := s.CheckIndex(index); err != nil {
		return Task{}, err
	}
	return s.tasks[index-1], nil
}

// RemoveAt deletes the task at a 1-based position and returns it.
func (s *Store) RemoveAt(index int) (Task, error) {
	if err := s.CheckIndex(index); err != nil {
		return Task{}, err
	}
	t := s.tasks[index-1]
	s.tasks = slices.Delete(s.tasks, index-1, index)
	return t, nil
}

// EditAt replaces one attribute of the task at a 1-based position. A new
// date keeps the existing time-of-day and recomputes the overdue tag; a new
// time keeps the existing date.
func (s *Store) EditAt(index int, e Edit) (Task, error) {
	if err := s.CheckIndex(index); err != nil {
		return Task{}, err
	}
	t := &s.tasks[index-1]
	switch e.Field {
	case FieldPriority:
		t.Priority = e.Priority
	case FieldDate:
		when, err := e.Date.At(t.When.Hour(), t.When.Minute())
		if err != nil {
			return Task{}, err
		}
		t.When = when
		t.Overdue = status.Classify(e.Date, s.Today())
	case FieldTime:
		when, err := t.Date().At(e.Time.Hour(), e.Time.Minute())
		if err != nil {
			return Task{}, err
		}
		t.When = when
	case FieldDetails:
		if len(e.Details) == 0 {
			return Task{}, ErrBlankTask
		}
		t.Details = slices.Clone(e.Details)
	default:
		return Task{}, fmt.Errorf("%w: %q", ErrInvalidField, e.Field)
	}
	return *t, nil
}
