package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/dhamidi/jcomb/workspace"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var watch bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Check that documents parse",
		Long: `Check that every .json and .jsonc document parses.

Directories are searched recursively, skipping hidden directories. Without
arguments the current directory is checked. With --watch the first directory
is polled and each changed document is reported until interrupted.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}

			if watch {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()
				return watchDir(ctx, args[0], interval, cmd.OutOrStdout())
			}

			failed := 0
			for _, path := range args {
				n, err := checkPath(path, cmd.OutOrStdout())
				if err != nil {
					return err
				}
				failed += n
			}
			if failed > 0 {
				return fmt.Errorf("%d document(s) failed to parse", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "keep polling for changes")
	cmd.Flags().DurationVar(&interval, "interval", time.Second, "poll interval for --watch")

	return cmd
}

func checkPath(path string, out io.Writer) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat: %w", err)
	}

	ws := workspace.New(path)
	if info.IsDir() {
		if err := ws.ScanAll(); err != nil {
			return 0, fmt.Errorf("scan %s: %w", path, err)
		}
	} else if err := ws.ScanFile(path); err != nil {
		return 0, fmt.Errorf("scan %s: %w", path, err)
	}

	failed := ws.Failed()
	for _, f := range failed {
		fmt.Fprintln(out, f.ParseErr)
	}
	return len(failed), nil
}

func watchDir(ctx context.Context, dir string, interval time.Duration, out io.Writer) error {
	ws := workspace.New(dir)
	w := workspace.NewWatcher(ws,
		workspace.WithInterval(interval),
		workspace.OnChange(func(f *workspace.File) {
			if f.OK() {
				fmt.Fprintf(out, "ok %s\n", f.Path)
			} else {
				fmt.Fprintln(out, f.ParseErr)
			}
		}),
		workspace.OnRemove(func(path string) {
			fmt.Fprintf(out, "removed %s\n", path)
		}),
	)
	w.Start()
	defer w.Stop()

	<-ctx.Done()
	return nil
}
