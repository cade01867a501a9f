// Package console runs the interactive tasklist session: one prompt, one
// line of input, one operation at a time.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jorge-barreto/tasklist/internal/datetime"
	"github.com/jorge-barreto/tasklist/internal/state"
	"github.com/jorge-barreto/tasklist/internal/status"
	"github.com/jorge-barreto/tasklist/internal/task"
	"github.com/jorge-barreto/tasklist/internal/ux"
)

// Session owns the task store for the lifetime of the command loop.
type Session struct {
	Store    *task.Store
	DataFile string
	Out      io.Writer
	Log      *log.Logger

	in *LineReader
}

// NewSession wires a session to its input, output and task file.
func NewSession(store *task.Store, dataFile string, in io.Reader, out io.Writer, logger *log.Logger) *Session {
	return &Session{
		Store:    store,
		DataFile: dataFile,
		Out:      out,
		Log:      logger,
		in:       NewLineReader(in),
	}
}

// Load fills the store from the task file. Unreadable or malformed files
// are logged and otherwise treated as an empty list.
func (s *Session) Load() {
	if err := state.Load(s.DataFile, s.Store); err != nil {
		s.Log.Warn("ignoring unreadable task file", "path", s.DataFile, "err", err)
		return
	}
	s.Log.Debug("loaded tasks", "path", s.DataFile, "count", s.Store.Len())
}

// Run reads actions until "end" or until input runs out, then saves the
// store. Cancelling ctx abandons the session without saving.
func (s *Session) Run(ctx context.Context) error {
	defer s.in.Stop()
	for {
		action, err := s.ask(ctx, ux.PromptAction)
		if err != nil {
			return s.finish(err)
		}
		switch strings.TrimSpace(action) {
		case "add":
			err = s.add(ctx)
		case "print":
			ux.RenderTable(s.Out, s.Store)
		case "edit":
			err = s.edit(ctx)
		case "delete":
			err = s.delete(ctx)
		case "end":
			s.say(ux.Exiting)
			return s.save()
		default:
			s.reject(fmt.Errorf("%w: %q", ux.ErrInvalidAction, action))
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

func (s *Session) finish(err error) error {
	if errors.Is(err, io.EOF) {
		s.Log.Info("input closed, saving")
		return s.save()
	}
	return err
}

func (s *Session) save() error {
	wrote, err := state.Save(s.DataFile, s.Store)
	if err != nil {
		return fmt.Errorf("saving tasks to %s: %w", s.DataFile, err)
	}
	if wrote {
		s.Log.Info("saved tasks", "path", s.DataFile, "count", s.Store.Len())
	}
	return nil
}

func (s *Session) add(ctx context.Context) error {
	priority, err := retry(ctx, s, ux.PromptPriority, status.ParsePriority)
	if err != nil {
		return err
	}
	date, err := retry(ctx, s, ux.PromptDate, datetime.ParseDate)
	if err != nil {
		return err
	}
	when, err := retry(ctx, s, ux.PromptTime, func(line string) (time.Time, error) {
		return datetime.ParseTime(line, date)
	})
	if err != nil {
		return err
	}
	details, err := s.askDetails(ctx)
	if errors.Is(err, task.ErrBlankTask) {
		s.Log.Debug("discarded blank task")
		return nil
	}
	if err != nil {
		return err
	}
	t, err := s.Store.Add(priority, when, details)
	if err != nil {
		return err
	}
	s.Log.Debug("task added", "id", t.ID, "date", t.Date(), "chunks", len(t.Details))
	return nil
}

func (s *Session) delete(ctx context.Context) error {
	index, err := s.selectTask(ctx)
	if errors.Is(err, task.ErrNoTasks) {
		return nil
	}
	if err != nil {
		return err
	}
	removed, err := s.Store.RemoveAt(index)
	if err != nil {
		return err
	}
	s.say(ux.TaskDeleted)
	s.Log.Debug("task deleted", "id", removed.ID, "index", index)
	return nil
}

func (s *Session) edit(ctx context.Context) error {
	index, err := s.selectTask(ctx)
	if errors.Is(err, task.ErrNoTasks) {
		return nil
	}
	if err != nil {
		return err
	}
	current, err := s.Store.At(index)
	if err != nil {
		return err
	}
	field, err := retry(ctx, s, ux.PromptField(), task.ParseField)
	if err != nil {
		return err
	}

	e := task.Edit{Field: field}
	switch field {
	case task.FieldPriority:
		e.Priority, err = retry(ctx, s, ux.PromptPriority, status.ParsePriority)
	case task.FieldDate:
		e.Date, err = retry(ctx, s, ux.PromptDate, datetime.ParseDate)
	case task.FieldTime:
		e.Time, err = retry(ctx, s, ux.PromptTime, func(line string) (time.Time, error) {
			return datetime.ParseTime(line, current.Date())
		})
	case task.FieldDetails:
		for {
			e.Details, err = s.askDetails(ctx)
			if !errors.Is(err, task.ErrBlankTask) {
				break
			}
		}
	}
	if err != nil {
		return err
	}

	changed, err := s.Store.EditAt(index, e)
	if err != nil {
		return err
	}
	s.say(ux.TaskChanged)
	s.Log.Debug("task changed", "id", changed.ID, "field", field)
	return nil
}

// selectTask prints the table and asks for a position in that numbering.
// An empty store returns task.ErrNoTasks without prompting.
func (s *Session) selectTask(ctx context.Context) (int, error) {
	if err := ux.RenderTable(s.Out, s.Store); err != nil {
		return 0, err
	}
	return retry(ctx, s, ux.PromptTaskNumber(s.Store.Len()), func(line string) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", task.ErrInvalidIndex, line)
		}
		return n, s.Store.CheckIndex(n)
	})
}

// askDetails collects detail lines until an empty line. A line of only
// spaces also ends input; as the first line it makes the task blank.
// Lines that merely trim to nothing, such as a lone tab, add no chunks.
func (s *Session) askDetails(ctx context.Context) ([]string, error) {
	s.say(ux.PromptDetails)
	var lines []string
	for {
		line, err := s.in.ReadLine(ctx)
		if err != nil {
			return nil, err
		}
		if line == "" {
			break
		}
		if isBlankLine(line) {
			if len(lines) > 0 {
				s.reject(task.ErrBlankTask)
			}
			break
		}
		lines = append(lines, line)
	}
	details, err := task.Details(lines...)
	if err != nil {
		s.reject(err)
		return nil, err
	}
	return details, nil
}

func isBlankLine(line string) bool {
	return strings.Trim(line, " ") == ""
}

// retry prompts until parse accepts the answer. Only read errors end it.
func retry[T any](ctx context.Context, s *Session, prompt string, parse func(string) (T, error)) (T, error) {
	for {
		line, err := s.ask(ctx, prompt)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		s.reject(err)
	}
}

func (s *Session) ask(ctx context.Context, prompt string) (string, error) {
	s.say(prompt)
	return s.in.ReadLine(ctx)
}

func (s *Session) say(line string) {
	fmt.Fprintln(s.Out, line)
}

// reject reports a recoverable input error. Errors without a feedback
// line, such as a bad priority letter, just re-prompt.
func (s *Session) reject(err error) {
	s.Log.Debug("input rejected", "err", err)
	if msg := ux.Feedback(err); msg != "" {
		s.say(msg)
	}
}
