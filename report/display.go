package report

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	WarnColorFG  = pterm.FgYellow
	WarnStyleBG  = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG = pterm.FgRed
	ErrorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG  = pterm.FgLightGreen
	InfoStyleBG  = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
)

// displayError displays a user-facing lowering error.  If the error is a
// *LowerError carrying a span, the span is printed in `line:col` form so the
// host's output is clickable in most terminals.
func displayError(err error) {
	ErrorStyleBG.Print("Error")

	if le, ok := err.(*LowerError); ok && le.Span != nil {
		ErrorColorFG.Println(fmt.Sprintf(" (%d:%d) %s", le.Span.StartLine+1, le.Span.StartCol+1, le.Message))
	} else {
		ErrorColorFG.Println(" " + err.Error())
	}
}

// displayICE displays an internal compiler error message.
func displayICE(err error) {
	ErrorStyleBG.Print("Internal Error")
	ErrorColorFG.Println(" " + err.Error())
	fmt.Println("This error is a compiler bug: please open an issue on GitHub with the input that caused it.")
}

// displayWarning displays a lowering warning.
func displayWarning(msg string) {
	WarnStyleBG.Print("Warning")
	WarnColorFG.Println(" " + msg)
}

// displayInfo displays an informational message with a tag such as a phase
// name.
func displayInfo(tag, msg string) {
	InfoStyleBG.Print(tag)
	InfoColorFG.Println(" " + msg)
}
