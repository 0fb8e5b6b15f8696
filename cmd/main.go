package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amaiorano/TinyCompiler/pkg"
)

/*
 *                  LISP                      C
 *
 *   2 + 2          (add 2 2)                 add(2, 2)
 *   4 - 2          (subtract 4 2)            subtract(4, 2)
 *   2 + (4 - 2)    (add 2 (subtract 4 2))    add(2, subtract(4, 2))
 */
const sampleProgram = "(add 2 (subtract 4 2))"

var (
	emit  string
	trace bool
)

var rootCmd = &cobra.Command{
	Use:   "tinycompiler [file]",
	Short: "Compiles a tiny Lisp-like call language into C-style calls",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := sampleProgram
		if len(args) == 1 {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			source = string(data)
		}

		c := tinycompiler.NewCompiler()
		if trace {
			c.SetTrace(os.Stderr)
		}

		var out string
		var err error
		switch emit {
		case "c":
			out, err = c.Compile(source)
		case "llvm":
			out, err = c.CompileLLVM(source)
		default:
			return fmt.Errorf("unknown emit target %q", emit)
		}
		if err != nil {
			return err
		}

		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&emit, "emit", "c", "Output format: c or llvm")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "Dump the intermediate trees to stderr")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
