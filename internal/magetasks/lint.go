package magetasks

import (
	"errors"
	"fmt"
	"strings"
)

// golangciDisabled lists linters that fight the house style.
var golangciDisabled = []string{
	"exhaustruct", "varnamelen", "ireturn", "wrapcheck", "nlreturn",
	"gochecknoglobals", "mnd", "depguard", "tagalign",
}

// LintAll runs every linter. Staticcheck and golangci-lint are skipped with a
// warning when not installed.
func LintAll() error {
	var errs []error
	for _, lint := range []func() error{LintFormat, LintVet, LintStaticcheck, LintGolangci} {
		if err := lint(); err != nil && !IsCommandNotFound(err) {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	PrintSuccess("All linters passed")
	return nil
}

// LintFormat reformats the module's packages with go fmt.
func LintFormat() error {
	return Run("Go Format", "go", "fmt", "./...")
}

// LintVet runs go vet.
func LintVet() error {
	return Run("Go Vet", "go", "vet", "./...")
}

// LintStaticcheck runs staticcheck.
func LintStaticcheck() error {
	return optional("Staticcheck", "honnef.co/go/tools/cmd/staticcheck@latest",
		"staticcheck", "./...")
}

// LintGolangci runs golangci-lint.
func LintGolangci() error {
	return optional("Golangci-lint", golangciInstall, "golangci-lint", golangciArgs(false)...)
}

// LintGolangciFix runs golangci-lint with auto-fixes.
func LintGolangciFix() error {
	return optional("Golangci-lint Fix", golangciInstall, "golangci-lint", golangciArgs(true)...)
}

const golangciInstall = "github.com/golangci/golangci-lint/cmd/golangci-lint@latest"

func golangciArgs(fix bool) []string {
	args := []string{"run"}
	if fix {
		args = append(args, "--fix")
	}
	return append(args,
		"--disable="+strings.Join(golangciDisabled, ","),
		"--timeout=5m",
		"./...")
}

// optional runs a tool that may not be installed, printing how to install it
// when missing. The not-found error is still returned so callers can skip it.
func optional(label, install, cmd string, args ...string) error {
	if err := Run(label, cmd, args...); err != nil {
		if IsCommandNotFound(err) {
			PrintWarning(fmt.Sprintf("%s not found (install: go install %s)", label, install))
			return err
		}
		return fmt.Errorf("%s failed: %w", cmd, err)
	}
	return nil
}
