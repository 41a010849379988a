// Package cli implements randcred's command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/zarlcorp/core/pkg/zstyle"

	"github.com/zarlcorp/randcred/internal/credential"
	"github.com/zarlcorp/randcred/internal/generate"
	"github.com/zarlcorp/randcred/internal/logger"
	"github.com/zarlcorp/randcred/internal/output"
)

const appName = "randcred"

// Result summarizes a completed run.
type Result struct {
	Records int
	Path    string // empty when printing to the terminal
	Bytes   int
}

// Execute runs the command with args and returns the process exit code.
// Interruption through ctx is not an error.
func Execute(ctx context.Context, version string, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}

	cmd := NewCommand(version, stdout)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return 0
	default:
		fmt.Fprintln(stderr, zstyle.StatusErr.Render(appName+": "+err.Error()))
		return 1
	}
}

// NewCommand builds the root command. Credentials are written to stdout.
func NewCommand(version string, stdout io.Writer) *cobra.Command {
	opts := DefaultOptions()

	cmd := &cobra.Command{
		Use:   appName + " [-u <len>] [-p <len>] [-w] [-W <file>] [-n <n>] [-l <label>]",
		Short: "Generate random usernames and passwords",
		Long: `randcred generates random usernames and passwords from a
cryptographically secure source. Results are printed, or appended to a file
with --write.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.ToFile = cmd.Flags().Changed("write")
			if err := opts.Validate(); err != nil {
				return err
			}

			if err := logger.Init(logger.Config{
				AppName: appName,
				Level:   opts.LogLevel,
				Out:     cmd.ErrOrStderr(),
			}); err != nil {
				return err
			}

			_, err := Run(cmd.Context(), opts, stdout)
			return err
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.UsernameLen, "unamelen", "u", opts.UsernameLen,
		fmt.Sprintf("username length to use, between %d and %d", MinLength, MaxLength))
	f.IntVarP(&opts.PasswordLen, "passwdlen", "p", opts.PasswordLen,
		fmt.Sprintf("password length to use, between %d and %d", MinLength, MaxLength))
	f.BoolVarP(&opts.NoPunctuation, "without-punctuation", "w", false,
		"exclude special characters from the password charset")
	f.StringVarP(&opts.Path, "write", "W", "",
		"append the result to a file instead of displaying it (empty for a random name)")
	f.IntVarP(&opts.Pool, "pool", "n", opts.Pool, "create <n> credentials")
	f.StringVarP(&opts.Label, "label", "l", "",
		"an account name or some label (ignored when --pool is above 1)")
	f.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "diagnostic log level")

	cmd.AddCommand(newVersionCommand(version))

	return cmd
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the randcred version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", appName, version)
		},
	}
}

// Run generates opts.Pool credentials and prints them to w, or appends them
// to a file when opts.ToFile is set. Records already written stay on disk
// when ctx is cancelled mid-batch.
func Run(ctx context.Context, opts Options, w io.Writer) (Result, error) {
	g := generate.New()
	label := opts.RecordLabel()
	pal := newPalette(w)

	var res Result
	if opts.ToFile {
		res.Path = output.ResolvePath(opts.Path, g)
	}

	for i := range opts.Pool {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		c := g.Credential(opts.usernameRequest(), opts.passwordRequest())
		log.Debug().Int("index", i).Int("username_len", len(c.Username)).
			Int("password_len", len(c.Password)).Msg("generated credential")

		if opts.ToFile {
			n, err := output.Append(res.Path, c.Record(label))
			res.Bytes += n
			if err != nil {
				log.Debug().Err(err).Str("path", res.Path).Int("index", i).Msg("append failed")
				return res, err
			}
			res.Records++
			continue
		}

		printCredential(w, pal, c, label)
		res.Records++
		if i != opts.Pool-1 {
			fmt.Fprintln(w)
		}
	}

	if opts.ToFile {
		log.Info().Str("path", res.Path).Int("bytes", res.Bytes).Msg("results written")
		fmt.Fprintf(w, "  + Results have been written to %s (%d bytes)\n", pal.path.Render(res.Path), res.Bytes)
	}

	return res, nil
}

func printCredential(w io.Writer, pal palette, c credential.Credential, label string) {
	if label != "" {
		fmt.Fprintf(w, "%s:\n", pal.label.Render(label))
	}
	fmt.Fprintf(w, "  -- %s: %s\n", pal.key.Render("Username"), pal.strong.Render(c.Username))
	fmt.Fprintf(w, "  -- %s: %s\n", pal.key.Render("Password"), pal.password(c.Password))
}
