package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "brewin",
	Short: "Brewin' interpreter",
	Long: `brewin runs programs written in Brewin', the small dynamically-typed
teaching language used in CS131: closures and lambdas, by-reference
parameters, arity-based function overloading, and prototype-less objects.

brewin implements the tree-walking evaluator only; it reads an already
assembled program (see the ast package) and never itself parses source
text.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var configPath string

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "brewin.yaml", "path to an optional brewin.yaml")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
