package ux

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jorge-barreto/tasklist/internal/datetime"
	"github.com/jorge-barreto/tasklist/internal/task"
)

// Prompts, one per console step.
const (
	PromptAction   = "Input an action (add, print, edit, delete, end):"
	PromptPriority = "Input the task priority (C, H, N, L):"
	PromptDate     = "Input the date (yyyy-mm-dd):"
	PromptTime     = "Input the time (hh:mm):"
	PromptDetails  = "Input a new task (enter a blank line to end):"
)

// PromptField lists the editable fields in the order they are offered.
func PromptField() string {
	names := make([]string, 0, len(task.Fields()))
	for _, f := range task.Fields() {
		names = append(names, string(f))
	}
	return fmt.Sprintf("Input a field to edit (%s):", strings.Join(names, ", "))
}

// Outcome lines.
const (
	TaskChanged = "The task is changed"
	TaskDeleted = "The task is deleted"
	Exiting     = "Tasklist exiting!"
)

// ErrInvalidAction is reported for an unrecognized top-level action.
var ErrInvalidAction = errors.New("invalid action")

// PromptTaskNumber asks for a position within the current numbering.
func PromptTaskNumber(size int) string {
	return fmt.Sprintf("Input the task number (1-%d):", size)
}

// Feedback returns the single user-facing line for a recoverable input
// error, or "" when the error has no line of its own.
func Feedback(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidAction):
		return "The input action is invalid"
	case errors.Is(err, datetime.ErrInvalidDate):
		return "The input date is invalid"
	case errors.Is(err, datetime.ErrInvalidTime):
		return "The input time is invalid"
	case errors.Is(err, task.ErrNoTasks):
		return "No tasks have been input"
	case errors.Is(err, task.ErrInvalidIndex):
		return "Invalid task number"
	case errors.Is(err, task.ErrInvalidField):
		return "Invalid field"
	case errors.Is(err, task.ErrBlankTask):
		return "The task is blank"
	}
	return ""
}
