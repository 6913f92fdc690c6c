package cmd

import (
	"fmt"

	"github.com/danirod-live/pascal2go/internal/ast"
	"github.com/danirod-live/pascal2go/internal/lexer"
	"github.com/danirod-live/pascal2go/internal/parser"
	"github.com/spf13/cobra"
)

var parseEvalExpr string

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a source file and dump the resulting AST",
	Long: `Parse a Pascal program and print its abstract syntax tree.

On any parse error, pascalc reports the offending token and position
and exits non-zero; there is no error recovery.

Examples:
  pascalc parse program.pas
  pascalc parse -e "1 + 2 * 3"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseEvalExpr, "eval", "e", "", "parse an inline expression instead of a whole program")
}

func runParse(cmd *cobra.Command, args []string) error {
	src, err := readSource(parseEvalExpr, args)
	if err != nil {
		return err
	}

	s := lexer.New(src)
	p := parser.New()
	p.Load(s)

	var node *ast.Node
	if parseEvalExpr != "" {
		node, err = p.Expression()
	} else {
		node, err = p.Program()
	}
	if err != nil {
		return err
	}

	fmt.Print(ast.Dump(node))
	return nil
}
