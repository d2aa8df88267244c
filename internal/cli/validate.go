package cli

import (
	"errors"
	"fmt"
	"io"

	"quizkit/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := newFlagSet(cmd, stderr)
		bankPath := flags.String("bank", "", "Path to a YAML or JSON question bank (default: built-in bank)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		bank, err := question.LoadBank(*bankPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		if err := question.Validate(bank); err != nil {
			var validationErr *question.ValidationError
			if errors.As(err, &validationErr) {
				fmt.Fprintln(stderr, "Validation failed:")
				for _, issue := range validationErr.Issues {
					fmt.Fprintf(stderr, "  %s: %s\n", issue.Field, issue.Message)
				}
				return ExitError
			}
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		fmt.Fprintf(stdout, "Bank OK (%d questions)\n", len(bank.Questions))
		return ExitOK
	}
}
