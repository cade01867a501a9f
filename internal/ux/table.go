package ux

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jorge-barreto/tasklist/internal/task"
)

const (
	tableRule   = "+----+------------+-------+---+---+--------------------------------------------+"
	tableHeader = "| N  |    Date    | Time  | P | D |                   Task                     |"
	blankCells  = "|    |            |       |   |   |"
)

// RenderTable prints every task in the store. An empty store prints the
// "no tasks" line instead and returns task.ErrNoTasks.
func RenderTable(w io.Writer, s *task.Store) error {
	tasks, err := s.List()
	if err != nil {
		fmt.Fprintln(w, Feedback(err))
		return err
	}

	fmt.Fprintln(w, tableRule)
	fmt.Fprintln(w, tableHeader)
	fmt.Fprintln(w, tableRule)
	for n, t := range tasks {
		for j, chunk := range t.Details {
			if j == 0 {
				fmt.Fprintf(w, "| %-2d | %d-%02d-%02d | %02d:%02d | %s | %s |%s|\n",
					n, t.When.Year(), int(t.When.Month()), t.When.Day(),
					t.When.Hour(), t.When.Minute(),
					Swatch(t.Priority), Swatch(t.Overdue), padDetail(chunk))
				continue
			}
			fmt.Fprintf(w, "%s%s|\n", blankCells, padDetail(chunk))
		}
		fmt.Fprintln(w, tableRule)
	}
	return nil
}

func padDetail(chunk string) string {
	n := task.DetailWidth - utf8.RuneCountInString(chunk)
	if n < 0 {
		n = 0
	}
	return chunk + strings.Repeat(" ", n)
}
