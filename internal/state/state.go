// Package state reads and writes the task file.
package state

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/jorge-barreto/tasklist/internal/datetime"
	"github.com/jorge-barreto/tasklist/internal/task"
	"github.com/jorge-barreto/tasklist/internal/ux"
)

// DefaultFile is the task file name used when nothing else is configured.
const DefaultFile = "tasklist.json"

// ErrMalformed marks a task file that exists but cannot be decoded.
var ErrMalformed = errors.New("malformed task file")

// record is the on-disk shape of one task. Field order is the file's key order.
type record struct {
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Priority string   `json:"priority"`
	Overdue  string   `json:"overdue"`
	Details  []string `json:"details"`
}

// Load appends the tasks stored at path to s. A missing or empty file adds
// nothing. A malformed file adds nothing and returns an error wrapping
// ErrMalformed; callers treat that as an empty list.
func Load(path string, s *task.Store) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return Decode(data, s)
}

// Save writes s to path. An empty store is not written and any existing
// file is left alone; the returned bool reports whether a write happened.
func Save(path string, s *task.Store) (bool, error) {
	if s.Len() == 0 {
		return false, nil
	}
	data, err := Encode(s)
	if err != nil {
		return false, err
	}
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return false, err
	}
	return true, nil
}

// Encode serializes the store as a compact JSON array. Dates are zero
// padded (2023-05-01) while times are not (9:5).
func Encode(s *task.Store) ([]byte, error) {
	records := make([]record, 0, s.Len())
	if tasks, err := s.List(); err == nil {
		for _, t := range tasks {
			records = append(records, record{
				Date:     t.Date().String(),
				Time:     fmt.Sprintf("%d:%d", t.When.Hour(), t.When.Minute()),
				Priority: ux.Swatch(t.Priority),
				Overdue:  ux.Swatch(t.Overdue),
				Details:  t.Details,
			})
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Decode parses a task file and appends its tasks to s. Either every task
// is appended or none is. Tags are taken verbatim.
func Decode(data []byte, s *task.Store) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := checkShape(data); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	tasks := make([]task.Task, 0, len(records))
	for i, r := range records {
		t, err := r.task()
		if err != nil {
			return fmt.Errorf("%w: record %d: %v", ErrMalformed, i+1, err)
		}
		tasks = append(tasks, t)
	}
	for _, t := range tasks {
		s.Restore(t)
	}
	return nil
}

func (r record) task() (task.Task, error) {
	if len(r.Details) == 0 {
		return task.Task{}, task.ErrBlankTask
	}
	ymd, err := atois(r.Date, "-", 3)
	if err != nil {
		return task.Task{}, fmt.Errorf("date %q: %w", r.Date, err)
	}
	hm, err := atois(r.Time, ":", 2)
	if err != nil {
		return task.Task{}, fmt.Errorf("time %q: %w", r.Time, err)
	}
	d, err := datetime.NewDate(ymd[0], ymd[1], ymd[2])
	if err != nil {
		return task.Task{}, err
	}
	when, err := d.At(hm[0], hm[1])
	if err != nil {
		return task.Task{}, err
	}
	return task.Task{
		When:     when,
		Priority: ux.ParseSwatch(r.Priority),
		Overdue:  ux.ParseSwatch(r.Overdue),
		Details:  r.Details,
	}, nil
}

func atois(s, sep string, want int) ([]int, error) {
	parts := strings.Split(s, sep)
	if len(parts) != want {
		return nil, fmt.Errorf("want %d fields separated by %q", want, sep)
	}
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
