package task

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorge-barreto/tasklist/internal/datetime"
	"github.com/jorge-barreto/tasklist/internal/status"
)

var fixedNow = time.Date(2024, time.February, 29, 22, 0, 0, 0, time.UTC)

func newTestStore() *Store {
	return NewStore(func() time.Time { return fixedNow }, time.UTC)
}

func at(t *testing.T, y int, m time.Month, d, hh, mm int) time.Time {
	t.Helper()
	when, err := datetime.Date{Year: y, Month: m, Day: d}.At(hh, mm)
	require.NoError(t, err)
	return when
}

func collect(t *testing.T, s *Store) []Task {
	t.Helper()
	seq, err := s.List()
	require.NoError(t, err)
	var out []Task
	for i, task := range seq {
		require.Equal(t, len(out)+1, i)
		out = append(out, task)
	}
	return out
}

func TestStore_AddClassifies(t *testing.T) {
	s := newTestStore()

	past, err := s.Add(status.Of(status.Critical), at(t, 2024, time.February, 28, 9, 0), []string{"a"})
	require.NoError(t, err)
	today, err := s.Add(status.Of(status.High), at(t, 2024, time.February, 29, 9, 0), []string{"b"})
	require.NoError(t, err)
	future, err := s.Add(status.Of(status.Low), at(t, 2024, time.March, 1, 9, 0), []string{"c"})
	require.NoError(t, err)

	assert.Equal(t, status.Overdue, past.Overdue.Color)
	assert.Equal(t, status.DueToday, today.Overdue.Color)
	assert.Equal(t, status.Upcoming, future.Overdue.Color)
	assert.NotEqual(t, uuid.Nil, past.ID)
	assert.NotEqual(t, past.ID, today.ID)
	assert.Equal(t, 3, s.Len())
}

func TestStore_TodayUsesZone(t *testing.T) {
	plus3 := time.FixedZone("UTC+3", 3*60*60)
	s := NewStore(func() time.Time { return fixedNow }, plus3)
	assert.Equal(t, datetime.Date{Year: 2024, Month: time.March, Day: 1}, s.Today())
}

func TestStore_AddRejectsBlank(t *testing.T) {
	s := newTestStore()
	_, err := s.Add(status.Of(status.Normal), fixedNow, nil)
	assert.ErrorIs(t, err, ErrBlankTask)
	assert.Equal(t, 0, s.Len())
}

func TestStore_ListEmpty(t *testing.T) {
	s := newTestStore()
	_, err := s.List()
	assert.ErrorIs(t, err, ErrNoTasks)
}

func TestStore_ListRestartable(t *testing.T) {
	s := newTestStore()
	for _, d := range []string{"one", "two", "three"} {
		_, err := s.Add(status.Of(status.Normal), fixedNow, []string{d})
		require.NoError(t, err)
	}
	seq, err := s.List()
	require.NoError(t, err)

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}
	assert.Equal(t, 3, count())
	assert.Equal(t, 3, count())

	for i, task := range seq {
		if i == 2 {
			assert.Equal(t, []string{"two"}, task.Details)
			break
		}
	}
}

func TestStore_RemoveAtShifts(t *testing.T) {
	s := newTestStore()
	for _, d := range []string{"a", "b", "c", "d"} {
		_, err := s.Add(status.Of(status.Normal), fixedNow, []string{d})
		require.NoError(t, err)
	}

	removed, err := s.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, removed.Details)

	tasks := collect(t, s)
	require.Len(t, tasks, 3)
	assert.Equal(t, "a", tasks[0].Details[0])
	assert.Equal(t, "c", tasks[1].Details[0])
	assert.Equal(t, "d", tasks[2].Details[0])
}

func TestStore_InvalidIndex(t *testing.T) {
	s := newTestStore()
	_, err := s.RemoveAt(1)
	assert.ErrorIs(t, err, ErrNoTasks)

	_, err = s.Add(status.Of(status.Normal), fixedNow, []string{"a"})
	require.NoError(t, err)
	for _, i := range []int{0, -1, 2} {
		_, err := s.RemoveAt(i)
		assert.ErrorIs(t, err, ErrInvalidIndex, "index %d", i)
		_, err = s.EditAt(i, Edit{Field: FieldPriority})
		assert.ErrorIs(t, err, ErrInvalidIndex, "index %d", i)
	}
	assert.Equal(t, 1, s.Len())
}

func TestStore_EditDateKeepsTime(t *testing.T) {
	s := newTestStore()
	_, err := s.Add(status.Of(status.Normal), at(t, 2024, time.March, 5, 9, 5), []string{"a"})
	require.NoError(t, err)

	got, err := s.EditAt(1, Edit{Field: FieldDate, Date: datetime.Date{Year: 2024, Month: time.January, Day: 1}})
	require.NoError(t, err)
	assert.Equal(t, at(t, 2024, time.January, 1, 9, 5), got.When)
	assert.Equal(t, status.Overdue, got.Overdue.Color)

	got, err = s.EditAt(1, Edit{Field: FieldDate, Date: datetime.Date{Year: 2024, Month: time.February, Day: 29}})
	require.NoError(t, err)
	assert.Equal(t, status.DueToday, got.Overdue.Color)
}

func TestStore_EditTimeKeepsDate(t *testing.T) {
	s := newTestStore()
	_, err := s.Add(status.Of(status.Normal), at(t, 2024, time.March, 5, 9, 5), []string{"a"})
	require.NoError(t, err)

	got, err := s.EditAt(1, Edit{Field: FieldTime, Time: at(t, 1999, time.December, 31, 17, 45)})
	require.NoError(t, err)
	assert.Equal(t, at(t, 2024, time.March, 5, 17, 45), got.When)
	assert.Equal(t, status.Upcoming, got.Overdue.Color)
}

func TestStore_EditPriorityAndDetails(t *testing.T) {
	s := newTestStore()
	_, err := s.Add(status.Of(status.Normal), fixedNow, []string{"a"})
	require.NoError(t, err)

	got, err := s.EditAt(1, Edit{Field: FieldPriority, Priority: status.Of(status.Critical)})
	require.NoError(t, err)
	assert.Equal(t, status.Critical, got.Priority.Color)

	_, err = s.EditAt(1, Edit{Field: FieldDetails})
	assert.ErrorIs(t, err, ErrBlankTask)

	got, err = s.EditAt(1, Edit{Field: FieldDetails, Details: []string{"x", "y"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, got.Details)
	assert.Equal(t, status.Critical, got.Priority.Color)
}

func TestStore_RestoreKeepsOverdue(t *testing.T) {
	s := newTestStore()
	s.Restore(Task{
		When:     at(t, 2000, time.January, 1, 0, 0),
		Priority: status.Opaque("?"),
		Overdue:  status.Of(status.Upcoming),
		Details:  []string{"stale"},
	})
	tasks := collect(t, s)
	require.Len(t, tasks, 1)
	assert.Equal(t, status.Upcoming, tasks[0].Overdue.Color)
	assert.Equal(t, "?", tasks[0].Priority.Raw)
	assert.NotEqual(t, uuid.Nil, tasks[0].ID)
}
