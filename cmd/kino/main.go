package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/kino-avatar/kino/internal/model/avatar"
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the root command and maps the outcome to an exit code.
// stdout always ends up holding exactly one payload.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	// a nil slice would make cobra fall back to os.Args
	guarded := append([]string{}, guardInput(args)...)
	rootCmd.SetArgs(guarded)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	var ece *exitCodeError
	if errors.As(err, &ece) {
		if ece.msg != "" {
			fmt.Fprintln(stderr, ece.msg)
		}
		return ece.code
	}

	// Bad flag values end up here; they are reported like any other failure.
	if perr := printPayload(stdout, avatar.Fallback(err.Error())); perr != nil {
		fmt.Fprintln(stderr, perr.Error())
		return ExitOutputFailed
	}
	return ExitOK
}

// guardInput inserts "--" before the first argument that is not one of the
// command's own flags, so text like "-5 plus 3?" is never parsed as a flag.
func guardInput(args []string) []string {
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			return args
		}
		known, takesValue := flagArity(args[i])
		if !known {
			guarded := make([]string, 0, len(args)+1)
			guarded = append(guarded, args[:i]...)
			guarded = append(guarded, "--")
			return append(guarded, args[i:]...)
		}
		if takesValue {
			i++
		}
	}
	return args
}

// flagArity reports whether arg names a flag of rootCmd and whether that
// flag consumes the next argument as its value.
func flagArity(arg string) (known, takesValue bool) {
	switch {
	case strings.HasPrefix(arg, "--") && len(arg) > 2:
		name, _, inline := strings.Cut(arg[2:], "=")
		f := rootCmd.Flag(name)
		if f == nil {
			return false, false
		}
		return true, !inline && f.NoOptDefVal == ""
	case len(arg) == 2 && arg[0] == '-' && arg[1] != '-':
		f := rootCmd.Flags().ShorthandLookup(arg[1:])
		if f == nil {
			f = rootCmd.PersistentFlags().ShorthandLookup(arg[1:])
		}
		if f == nil {
			return false, false
		}
		return true, f.NoOptDefVal == ""
	default:
		return false, false
	}
}
