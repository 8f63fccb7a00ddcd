package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kino-avatar/kino/internal/config"
	"github.com/kino-avatar/kino/internal/model/avatar"
	"github.com/kino-avatar/kino/internal/model/persona"
	"github.com/kino-avatar/kino/internal/service/ai"
)

// Global flag values.
var (
	verbose bool
	timeout time.Duration
)

// responder is what the root command needs from the AI layer.
type responder interface {
	Generate(ctx context.Context, userInput string) (avatar.Payload, error)
}

// newResponder builds the generator from the environment. Tests swap it.
var newResponder = func(ctx context.Context) (responder, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		cfg.AI.Timeout = timeout
	}

	chatModel, err := cfg.AI.NewChatModel(ctx)
	if err != nil {
		return nil, err
	}
	return ai.NewGenerator(chatModel, persona.Seed()[0], cfg.AI), nil
}

// rootCmd is the base command for kino.
var rootCmd = &cobra.Command{
	Use:   "kino [text]",
	Short: "Ask Kino for an animated avatar reply",
	Long: `Kino sends one line of text to a hosted chat model and prints the reply as
a JSON payload of avatar messages, each carrying spoken text, a facial
expression and an animation. Failures are reported inside the payload.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		setupLogging(cmd.ErrOrStderr(), verbose)
	},
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "request deadline (0 uses the client default)")
	// register -h/--help now so guardInput can see it
	rootCmd.InitDefaultHelpFlag()
}

func setupLogging(w io.Writer, verbose bool) {
	if verbose {
		log.SetOutput(w)
		log.SetPrefix("kino: ")
		return
	}
	log.SetOutput(io.Discard)
}

func runRoot(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		if err := printPayload(out, avatar.Placeholder()); err != nil {
			return err
		}
		return exitError(ExitMissingInput, "")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	gen, err := newResponder(ctx)
	if err != nil {
		log.Printf("[kino] ai unavailable: %v", err)
		return printPayload(out, avatar.Fallback(err.Error()))
	}

	payload, err := gen.Generate(ctx, args[0])
	if err != nil {
		var genErr *ai.Error
		if errors.As(err, &genErr) {
			log.Printf("[kino] %s failure absorbed into payload", genErr.Kind)
		}
	}
	return printPayload(out, payload)
}

// printPayload writes payload as one JSON line. Spoken text keeps <, > and &
// as typed.
func printPayload(w io.Writer, payload avatar.Payload) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}
	return nil
}

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. An empty msg keeps stderr quiet;
// the payload on stdout already explains what happened.
func exitError(code int, format string, args ...any) *exitCodeError {
	return &exitCodeError{code: code, msg: fmt.Sprintf(format, args...)}
}
