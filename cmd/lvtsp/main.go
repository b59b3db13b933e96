// Command lvtsp solves Traveling Salesman instances under a time budget.
//
//	lvtsp solve --instance cities.yaml --algo bnb --time-limit 10s
//	lvtsp solve --instance cities.yaml --algo all --metrics
//	lvtsp version
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "lvtsp",
		Short: "Time-bounded Traveling Salesman solver",
		Long: `lvtsp computes tours for Traveling Salesman instances.

Four strategies are available: a random baseline, a multi-start greedy
nearest-neighbor constructor, a multi-start cheapest-insertion constructor,
and a best-first branch-and-bound search driven by a reduced-cost-matrix
lower bound. Every strategy returns the
best tour found when its time budget runs out.`,
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(newSolveCmd(), newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lvtsp version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lvtsp %s\n", version)
		},
	}
}
