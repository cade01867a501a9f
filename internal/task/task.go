// Package task holds the task model and the ordered in-memory task store.
package task

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jorge-barreto/tasklist/internal/datetime"
	"github.com/jorge-barreto/tasklist/internal/status"
)

// DetailWidth is the maximum number of characters in one stored chunk.
const DetailWidth = 44

var (
	ErrBlankTask    = errors.New("the task is blank")
	ErrNoTasks      = errors.New("no tasks have been input")
	ErrInvalidIndex = errors.New("invalid task number")
	ErrInvalidField = errors.New("invalid field")
)

// Task is one entry of the list. ID is an in-memory handle only; it is
// never written to the task file.
type Task struct {
	ID       uuid.UUID
	When     time.Time
	Priority status.Tag
	Overdue  status.Tag
	Details  []string
}

// Date returns the calendar day the task is due.
func (t Task) Date() datetime.Date {
	return datetime.DateOf(t.When)
}

// SplitDetail trims a detail line and cuts it into chunks of at most
// DetailWidth characters, in order. Word boundaries are ignored.
func SplitDetail(line string) []string {
	runes := []rune(strings.Trim(line, " \t\n"))
	var chunks []string
	for len(runes) > DetailWidth {
		chunks = append(chunks, string(runes[:DetailWidth]))
		runes = runes[DetailWidth:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}
	return chunks
}

// Details chunks every line and returns ErrBlankTask when nothing is left.
func Details(lines ...string) ([]string, error) {
	var out []string
	for _, l := range lines {
		out = append(out, SplitDetail(l)...)
	}
	if len(out) == 0 {
		return nil, ErrBlankTask
	}
	return out, nil
}
