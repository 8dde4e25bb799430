package session

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	exprStyle      = color.New(color.FgCyan)
	indicatorStyle = color.New(color.FgYellow, color.Bold)
	errorStyle     = color.New(color.FgRed, color.Bold)
)

// Display writes the current expression and its focus indicator to w,
// surrounded by blank lines for visual separation.
func (s *Session) Display(w io.Writer) {
	text, indicator := s.Render()
	fmt.Fprintln(w)
	exprStyle.Fprintln(w, text)
	indicatorStyle.Fprintln(w, indicator)
	fmt.Fprintln(w)
}

// DisplayError writes err to w in the uniform "Error: ..." form used for
// every error kind. All error messages in the program are written directly
// for user consumption.
func DisplayError(w io.Writer, err error) {
	fmt.Fprintln(w)
	errorStyle.Fprint(w, "Error: ")
	fmt.Fprintln(w, err.Error())
}
