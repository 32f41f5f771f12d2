package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/basiclang/gobasic/internal/host"
	"github.com/basiclang/gobasic/internal/interp"
	"github.com/spf13/cobra"
)

var replTimeoutMs int

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive BASIC session",
	Long: `Start an interactive session: a line beginning with a line number is
stored into the program; any other line runs immediately. Type RUN to
execute the stored program, LIST to view it, and NEW to clear it.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().IntVar(&replTimeoutMs, "timeout", 10000, "wall-clock execution budget per line, in milliseconds")
}

func runRepl(_ *cobra.Command, _ []string) error {
	h := host.NewStdHost(os.Stdout, os.Stdin, "")
	it := interp.New(h)

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Fprint(os.Stdout, "] ")
	for scanner.Scan() {
		line := scanner.Text()
		stmt, err := interp.ParseLine(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "?SYNTAX ERROR: %s\n", err)
			fmt.Fprint(os.Stdout, "] ")
			continue
		}
		if stmt.LineNumber() != nil {
			it.InsertLine(stmt)
			fmt.Fprint(os.Stdout, "] ")
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(replTimeoutMs)*time.Millisecond)
		if err := it.Immediate(ctx, stmt); err != nil {
			fmt.Fprintf(os.Stderr, "?%s\n", err)
		}
		cancel()
		fmt.Fprint(os.Stdout, "] ")
	}
	fmt.Fprintln(os.Stdout)
	return scanner.Err()
}
