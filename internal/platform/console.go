package platform

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// consoleDialog presents a dialog on a terminal. It is the dialog
// implementation of the portable adapter and the fallback for OS adapters
// whose native dialog helper is unavailable. It blocks reading answers
// until one matches the button set of the requested kind.
func consoleDialog(in io.Reader, out io.Writer, kind DialogKind, title, message string) DialogResult {
	kind = normalizeKind(kind)

	label := "INFO"
	switch kind {
	case DialogWarning:
		label = "WARNING"
	case DialogError:
		label = "ERROR"
	case DialogYesNo, DialogOkCancel:
		label = "QUESTION"
	}

	fmt.Fprintf(out, "%s: %s\n%s\n", label, title, message)

	switch kind {
	case DialogYesNo:
		return promptAnswer(in, out, "Enter 'yes' or 'no': ", map[string]DialogResult{
			"yes": ResultYes,
			"y":   ResultYes,
			"no":  ResultNo,
			"n":   ResultNo,
		})
	case DialogOkCancel:
		return promptAnswer(in, out, "Enter 'ok' or 'cancel': ", map[string]DialogResult{
			"ok":     ResultOk,
			"cancel": ResultCancel,
		})
	default:
		fmt.Fprint(out, "Press Enter to continue...")
		readLine(bufio.NewReader(in))
		return ResultOk
	}
}

// promptAnswer loops until the user enters one of the accepted answers.
// Input exhaustion resolves to ResultOk so a closed stdin cannot wedge
// the caller.
func promptAnswer(in io.Reader, out io.Writer, prompt string, answers map[string]DialogResult) DialogResult {
	r := bufio.NewReader(in)
	for {
		fmt.Fprint(out, prompt)
		line, ok := readLine(r)
		if !ok {
			return ResultOk
		}
		if result, found := answers[strings.ToLower(strings.TrimSpace(line))]; found {
			return result
		}
	}
}

// readLine reads one line, reporting false when the stream is exhausted.
func readLine(r *bufio.Reader) (string, bool) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return line, true
}
