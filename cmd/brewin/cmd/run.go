package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/brewin-lang/brewin/ast"
	"github.com/brewin-lang/brewin/internal/config"
	"github.com/brewin-lang/brewin/internal/host"
	"github.com/brewin-lang/brewin/internal/interp"
	"github.com/brewin-lang/brewin/internal/interp/errors"
)

var (
	dialectVersion int
	trace          bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a JSON-encoded Brewin' program",
	Long: `Execute a Brewin' program whose AST has already been assembled into the
JSON shape ast.DecodeProgram understands.

Examples:
  # Run a program
  brewin run program.json

  # Run under the v1 dialect (no lambdas, refargs, overloads, or objects)
  brewin run --interpreter 1 program.json

  # Run with execution tracing on stderr
  brewin run --trace program.json`,
	Args: cobra.ExactArgs(1),
	RunE: runProgram,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVar(&dialectVersion, "interpreter", 4, "Brewin' dialect version (1-4)")
	runCmd.Flags().BoolVar(&trace, "trace", false, "trace execution on stderr")
}

func runProgram(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", configPath, err)
	}
	if !cmd.Flags().Changed("interpreter") {
		dialectVersion = cfg.DialectVersion
	}

	if dialectVersion < 1 || dialectVersion > 4 {
		exitWithError("--interpreter must be 1, 2, 3, or 4, got %d", dialectVersion)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	program, err := ast.DecodeProgram(data)
	if err != nil {
		return fmt.Errorf("failed to decode program: %w", err)
	}

	h := host.NewBuffered(os.Stdin)
	evaluator := interp.New(h, interp.Config{
		Trace:             trace || cfg.Trace,
		TraceWriter:       os.Stderr,
		MaxRecursionDepth: cfg.MaxCallDepth,
		DialectVersion:    dialectVersion,
	})

	runErr := evaluator.Run(program)
	for _, line := range h.Lines() {
		fmt.Println(line)
	}
	if runErr != nil {
		if ierr, ok := runErr.(*errors.Error); ok {
			return fmt.Errorf("%s: %s", ierr.Category, ierr.Message)
		}
		return runErr
	}
	return nil
}
