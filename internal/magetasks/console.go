package magetasks

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dkoosis/lastrun/pkg/design"
	"github.com/dkoosis/lastrun/pkg/runstatus"
)

// Output is where task progress is printed.
var Output io.Writer = os.Stdout

var theme = design.DefaultTheme()

// PrintH1Header prints a top-level header with decoration.
func PrintH1Header(title string) {
	const width = 80
	rule := strings.Repeat("=", width)
	padding := max((width-design.VisualWidth(title))/2, 0)
	fmt.Fprintf(Output, "\n%s\n%s%s\n%s\n\n", rule, strings.Repeat(" ", padding), theme.Styles.Header.Render(title), rule)
}

// PrintH2Header prints a section header.
func PrintH2Header(title string) {
	fmt.Fprintf(Output, "\n%s\n\n", theme.Styles.Header.Render("=== "+title+" ==="))
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) {
	printTone(runstatus.ToneSuccess, msg)
}

// PrintWarning prints a warning message.
func PrintWarning(msg string) {
	printTone(runstatus.ToneWarning, msg)
}

// PrintError prints an error message.
func PrintError(msg string) {
	printTone(runstatus.ToneFailure, msg)
}

func printTone(tone runstatus.Tone, msg string) {
	fmt.Fprintln(Output, theme.ToneStyle(tone).Render(theme.Icon(tone)+" "+msg))
}
