package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"quizkit/internal/page"
	"quizkit/internal/quiz"
)

// runRender builds the handler for the render command.
func runRender(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := newFlagSet(cmd, stderr)
		bankPath := flags.String("bank", "", "Path to a YAML or JSON question bank (default: built-in bank)")
		outPath := flags.String("out", "", "Write HTML to this file instead of stdout")
		action := flags.String("action", "", "Submit answers to this URL (default: preview only, no submit form)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		form, ok := loadForm(*bankPath, stderr)
		if !ok {
			return ExitError
		}
		html, err := page.Render(context.Background(), page.QuizPage(page.View{
			Form:   form,
			State:  quiz.NewState(form),
			Action: *action,
		}))
		if err != nil {
			fmt.Fprintf(stderr, "Render failed: %v\n", err)
			return ExitError
		}

		if *outPath == "" {
			fmt.Fprintln(stdout, html)
			return ExitOK
		}
		if err := os.WriteFile(*outPath, []byte(html+"\n"), 0o644); err != nil {
			fmt.Fprintf(stderr, "Write failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", *outPath)
		return ExitOK
	}
}
