package scaffold

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/tasklist/internal/ux"
)

// ConfigName is the file written by Init.
const ConfigName = ".tasklist.yaml"

var configTemplate = `# tasklist configuration. Every field is optional.

# Where tasks are saved when the session ends.
data-file: tasklist.json

# Diagnostics on stderr: debug, info, warn, or error.
log-level: warn

# Whole hours from UTC that define "today" for the due column.
utc-offset: 0
`

// Init writes a starter config file into targetDir. It refuses to replace
// an existing one.
func Init(w io.Writer, targetDir string) error {
	path := filepath.Join(targetDir, ConfigName)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists in %s", ConfigName, targetDir)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", ConfigName, err)
	}

	fmt.Fprintf(w, "\n%s%s✓ Initialized %s%s\n\n", ux.Bold, ux.Green, ConfigName, ux.Reset)
	fmt.Fprintf(w, "  Next steps:\n")
	fmt.Fprintf(w, "    1. Edit %s%s%s to choose the task file\n", ux.Cyan, ConfigName, ux.Reset)
	fmt.Fprintf(w, "    2. Run %stasklist%s to start a session\n\n", ux.Cyan, ux.Reset)
	return nil
}
