package util

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ComposeText opens $EDITOR on a draft file pre-filled with initial
// and returns its contents after the editor exits. The draft gets a
// unique name under the temp dir and is kept in place when the editor
// fails, so an aborted session can be recovered.
func ComposeText(initial string) (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	draft := filepath.Join(os.TempDir(), fmt.Sprintf("jira-draft-%s.md", uuid.NewString()))
	if err := os.WriteFile(draft, []byte(initial), 0o600); err != nil {
		return "", errors.Wrap(err, "failed to write draft file")
	}

	cmd := exec.Command(editor, draft)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, "editor exited with an error, draft kept at %s", draft)
	}

	data, err := os.ReadFile(draft)
	if err != nil {
		return "", errors.Wrap(err, "failed to read draft file")
	}
	_ = os.Remove(draft)

	return strings.TrimRight(string(data), "\n"), nil
}
