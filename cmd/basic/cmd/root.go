package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "basic",
	Short: "A line-numbered BASIC interpreter",
	Long: `basic runs and edits line-numbered BASIC programs: LET, PRINT, INPUT,
IF/THEN/ELSE, FOR/NEXT, GOTO/GOSUB/RETURN, ON...GOTO/GOSUB, DATA/READ/
RESTORE, DEF FN, DIM'd arrays, and a small GRAPHICS/DRAW/BOX surface.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
