package docs

import (
	"fmt"
	"strings"
)

// Topic is one help article shown by "tasklist docs".
type Topic struct {
	Name    string
	Title   string
	Summary string
	Content string
}

// All returns the help topics, quickstart first.
func All() []Topic {
	return append([]Topic(nil), topics...)
}

// Get looks up a topic by name.
func Get(name string) (Topic, error) {
	names := make([]string, 0, len(topics))
	for _, t := range topics {
		if t.Name == name {
			return t, nil
		}
		names = append(names, t.Name)
	}
	return Topic{}, fmt.Errorf("unknown topic %q (have: %s)", name, strings.Join(names, ", "))
}
