package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/basiclang/gobasic/internal/host"
	"github.com/basiclang/gobasic/internal/interp"
	"github.com/spf13/cobra"
)

var (
	evalExpr   string
	trace      bool
	timeoutMs  int
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a BASIC program",
	Long: `Load a line-numbered BASIC program from a file and RUN it.

Examples:
  # Run a program file
  basic run game.bas

  # Evaluate a single inline statement
  basic run -e "PRINT 2 + 2"

  # Bound execution to 5 seconds of wall-clock time
  basic run --timeout 5000 game.bas`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run a single inline statement instead of reading a file")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace execution (TRON) from the start")
	runCmd.Flags().IntVar(&timeoutMs, "timeout", 10000, "wall-clock execution budget in milliseconds (§5 cooperative cancellation)")
}

func runProgram(_ *cobra.Command, args []string) error {
	h := host.NewStdHost(os.Stdout, os.Stdin, "")
	it := interp.New(h)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutMs)*time.Millisecond)
	defer cancel()

	if evalExpr != "" {
		stmt, err := interp.ParseLine(evalExpr)
		if err != nil {
			return fmt.Errorf("parse error: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "[running inline statement]\n")
		}
		return it.Immediate(ctx, stmt)
	}

	if len(args) != 1 {
		return fmt.Errorf("either provide a file path or use -e for inline code")
	}

	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	h.Dir = filepath.Dir(filename)
	if err := it.LoadSource(string(content)); err != nil {
		return fmt.Errorf("failed to load %s: %w", filename, err)
	}

	if trace {
		stmt, _ := interp.ParseLine("TRON")
		if err := it.Immediate(ctx, stmt); err != nil {
			return err
		}
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[running %s]\n", filename)
	}

	return it.Run(ctx)
}
