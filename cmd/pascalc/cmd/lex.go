package cmd

import (
	"fmt"
	"os"

	"github.com/danirod-live/pascal2go/internal/lexer"
	"github.com/danirod-live/pascal2go/pkg/token"
	"github.com/spf13/cobra"
)

var lexEvalExpr string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a source file and print the resulting tokens",
	Long: `Tokenize a Pascal source file and print one line per token.

Each line is the token's kind, its literal text in quotes (when it has
one), and its line:column position.

Examples:
  pascalc lex program.pas
  pascalc lex -e "x := 1 + 2"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline source instead of reading from a file")
}

func runLex(cmd *cobra.Command, args []string) error {
	src, err := readSource(lexEvalExpr, args)
	if err != nil {
		return err
	}

	s := lexer.New(src)
	for {
		tok := s.Next()
		fmt.Println(tok)
		if tok.Type == token.EOF {
			break
		}
	}

	if errs := s.Errors(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "lex error: %s at %s\n", e.Message, e.Pos)
		}
		return fmt.Errorf("found %d lexical error(s)", len(errs))
	}
	return nil
}

// readSource resolves the source bytes from -e or a file argument.
func readSource(evalExpr string, args []string) ([]byte, error) {
	if evalExpr != "" {
		return []byte(evalExpr), nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("either provide a file path or use -e for inline source")
}
