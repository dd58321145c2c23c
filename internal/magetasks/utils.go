package magetasks

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/magefile/mage/sh"
)

// Run prints a header for label and runs the command, streaming its output
// when mage is verbose.
func Run(label, cmd string, args ...string) error {
	PrintH2Header(label)
	if err := sh.RunV(cmd, args...); err != nil {
		if IsCommandNotFound(err) {
			return fmt.Errorf("%s: %w", cmd, exec.ErrNotFound)
		}
		PrintError(label + " failed")
		return err
	}
	PrintSuccess(label + " passed")
	return nil
}

// IsCommandNotFound checks if the error indicates the command was not found.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	// sh reports launch failures as formatted strings.
	errStr := err.Error()
	return strings.Contains(errStr, "executable file not found") ||
		strings.Contains(errStr, "no such file or directory")
}
