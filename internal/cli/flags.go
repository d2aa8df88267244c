package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"quizkit/internal/quiz"
)

// newFlagSet creates a flag set that reports parse errors to stderr.
func newFlagSet(cmd *Command, stderr io.Writer) *flag.FlagSet {
	flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	return flags
}

// parseFlags parses args and reports the exit code to use when parsing fails.
func parseFlags(cmd *Command, flags *flag.FlagSet, args []string, stdout, stderr io.Writer) (int, bool) {
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if flags.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}

// loadForm renders the bank for a command, printing the diagnostic on failure.
func loadForm(bankPath string, stderr io.Writer) (*quiz.Form, bool) {
	form, err := quiz.LoadForm(bankPath, false)
	if err != nil {
		var malformed *quiz.MalformedBankError
		if errors.As(err, &malformed) {
			fmt.Fprintln(stderr, "Quiz data could not be loaded.")
			if malformed.Diagnostic != "" {
				fmt.Fprintln(stderr, malformed.Diagnostic)
			}
			return nil, false
		}
		fmt.Fprintf(stderr, "Load failed: %v\n", err)
		return nil, false
	}
	return form, true
}

// evaluatorFor parses the unsupported policy flag.
func evaluatorFor(policy string, stderr io.Writer) (quiz.Evaluator, bool) {
	parsed, err := quiz.ParseUnsupportedPolicy(policy)
	if err != nil {
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		return quiz.Evaluator{}, false
	}
	return quiz.NewEvaluator(quiz.WithUnsupportedPolicy(parsed)), true
}
