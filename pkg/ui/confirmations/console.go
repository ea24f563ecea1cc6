// Package confirmations provides console implementations of the workflow's
// confirmation prompt and properties form.
package confirmations

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/johnmorse/rhinoinsertcommand/pkg/style"
	"github.com/johnmorse/rhinoinsertcommand/pkg/types"
)

// ConsoleDialog implements types.ConfirmationPrompt on a line oriented
// console.
type ConsoleDialog struct {
	in  *bufio.Reader
	out io.Writer

	// AssumeYes answers every question with yes without reading input
	AssumeYes bool
}

// NewConsoleDialog creates a dialog reading answers from in
func NewConsoleDialog(in io.Reader, out io.Writer) *ConsoleDialog {
	return &ConsoleDialog{in: bufio.NewReader(in), out: out}
}

// AskYesNoCancel prints the request and reads y, n or c. An empty answer
// takes the request default; end of input cancels.
func (d *ConsoleDialog) AskYesNoCancel(req types.ConfirmationRequest) (types.Decision, error) {
	d.printf("\n%s\n", style.WarningStyle.Render(req.Title))
	if req.Description != "" {
		d.printf("%s\n", req.Description)
	}
	if len(req.Items) > 0 {
		if len(req.Items) <= 3 {
			d.printf("└── %s\n", strings.Join(req.Items, ", "))
		} else {
			d.printf("└── %s and %d more\n", strings.Join(req.Items[:3], ", "), len(req.Items)-3)
		}
	}

	if d.AssumeYes {
		d.printf("%s yes\n", choices(req.Default))
		return types.DecisionYes, nil
	}

	for {
		d.printf("%s: ", choices(req.Default))
		answer, eof, err := d.readLine()
		if err != nil {
			return types.DecisionCancel, fmt.Errorf("failed to read user input for confirmation %s: %w", req.ID, err)
		}
		if answer == "" && eof {
			return types.DecisionCancel, nil
		}
		switch strings.ToLower(answer) {
		case "":
			return req.Default, nil
		case "y", "yes":
			return types.DecisionYes, nil
		case "n", "no":
			return types.DecisionNo, nil
		case "c", "cancel":
			return types.DecisionCancel, nil
		}
		if eof {
			return types.DecisionCancel, nil
		}
		d.printf("Please answer y, n or c\n")
	}
}

// Notify prints the message
func (d *ConsoleDialog) Notify(title, message string) error {
	_, err := fmt.Fprintf(d.out, "%s %s: %s\n", style.WarningIndicator, style.Bold(title), message)
	return err
}

func (d *ConsoleDialog) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(d.out, format, args...)
}

// readLine returns the next trimmed line and whether input ended
func (d *ConsoleDialog) readLine() (string, bool, error) {
	return readLine(d.in)
}

func readLine(r *bufio.Reader) (string, bool, error) {
	line, err := r.ReadString('\n')
	if err == io.EOF {
		return strings.TrimSpace(line), true, nil
	}
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(line), false, nil
}

func choices(def types.Decision) string {
	switch def {
	case types.DecisionYes:
		return "[Y/n/c]"
	case types.DecisionNo:
		return "[y/N/c]"
	default:
		return "[y/n/C]"
	}
}
