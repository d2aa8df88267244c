package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"quizkit/internal/config"
	"quizkit/internal/logger"
	"quizkit/internal/server"
)

// serveQuiz is a test seam for running the HTTP server.
var serveQuiz = server.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := newFlagSet(cmd, stderr)
		addr := flags.String("addr", "", "Address to listen on (default: SERVER_ADDR or :8080)")
		bankPath := flags.String("bank", "", "Path to a YAML or JSON question bank (default: QUIZ_BANK or built-in bank)")
		strict := flags.Bool("strict", false, "Refuse banks that fail validation (default: QUIZ_STRICT)")
		policy := flags.String("unsupported", "", "Unsupported question policy: block or exclude (default: QUIZ_UNSUPPORTED_POLICY)")
		envFile := flags.String("env", "", "Load environment from this file (default: .env)")
		if code, ok := parseFlags(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		var cfg *config.Config
		if *envFile != "" {
			cfg = config.Load(*envFile)
		} else {
			cfg = config.Load()
		}
		if *addr != "" {
			cfg.ServerAddr = *addr
		}
		if *bankPath != "" {
			cfg.BankPath = *bankPath
		}
		if *strict {
			cfg.Strict = true
		}
		if *policy != "" {
			cfg.UnsupportedPolicy = *policy
		}
		if err := config.Validate(cfg); err != nil {
			fmt.Fprintf(stderr, "Config invalid:\n%v\n", err)
			return ExitUsage
		}

		log := logger.Setup(stderr, cfg.LogLevel, cfg.LogFormat)
		log.Info().
			Str("addr", cfg.ServerAddr).
			Str("mode", cfg.GinMode).
			Str("log_level", cfg.LogLevel).
			Msg("starting quizkit")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Fprintf(stdout, "Serving quiz at http://%s\n", displayAddr(cfg.ServerAddr))
		err := serveQuiz(ctx, server.Config{
			Addr:              cfg.ServerAddr,
			BankPath:          cfg.BankPath,
			Strict:            cfg.Strict,
			UnsupportedPolicy: cfg.Policy(),
			GinMode:           cfg.GinMode,
			AllowedOrigins:    cfg.AllowedOrigins,
			Logger:            log,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}

// displayAddr turns a bare ":port" into a clickable local address.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
