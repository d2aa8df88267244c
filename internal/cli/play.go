package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"quizkit/internal/quiz"
	"quizkit/internal/ui/play"
)

// playQuiz is a test seam for running the terminal quiz.
var playQuiz = play.Run

// stdin is a test seam for the terminal input stream.
var stdin io.Reader = os.Stdin

// runPlay builds the handler for the play command.
func runPlay(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := newFlagSet(cmd, stderr)
		bankPath := flags.String("bank", "", "Path to a YAML or JSON question bank (default: built-in bank)")
		noColor := flags.Bool("no-color", false, "Disable colors")
		policy := flags.String("unsupported", "block", "Unsupported question policy: block or exclude")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}
		evaluator, ok := evaluatorFor(*policy, stderr)
		if !ok {
			return ExitUsage
		}
		if !isTerminal(stdout) {
			fmt.Fprintln(stderr, "quizkit play needs a terminal; use \"quizkit check\" for files")
			return ExitError
		}

		form, ok := loadForm(*bankPath, stderr)
		if !ok {
			return ExitError
		}
		result, err := playQuiz(context.Background(), form, play.Options{NoColor: *noColor, Evaluator: evaluator}, stdin, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "Play failed: %v\n", err)
			return ExitError
		}
		if result != nil {
			printSummary(stdout, form, *result)
		}
		return ExitOK
	}
}

// printSummary writes the final score after the terminal quiz exits.
func printSummary(w io.Writer, form *quiz.Form, result quiz.ScoreResult) {
	fmt.Fprintln(w, result.ScoreLine())
	fmt.Fprintln(w, result.Tier.Message(form.Feedback))
}
