package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroman/numeral"
)

// errUnknownOperator is returned for an operator calc does not recognize.
var errUnknownOperator = errors.New("unknown operator")

// operators lists what calc accepts, for help text and error messages.
var operators = []string{"+", "-", "*", "/", "//", "%", "**", "divmod", "==", "!=", "<", "<=", ">", ">="}

func newCalcCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calc [A OP B]",
		Short: "Evaluate a binary expression over numerals and numbers",
		Long: fmt.Sprintf(`calc evaluates A OP B, where A and B are numerals or numbers and OP is one of
  %s
Arithmetic prints the resulting numeral, comparisons print true or false.
Quote operators the shell would expand, e.g. roman calc X '*' 3.
Without arguments, calc reads one expression per line from standard input.`, strings.Join(operators, " ")),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 3 {
				return fmt.Errorf("calc takes no arguments or exactly 3 (A OP B), got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 3 {
				out, err := evaluate(args[0], args[1], args[2])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}
			return a.repl(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// repl evaluates each non-empty input line. A failing line is logged and
// reported on the output; evaluation continues with the next line.
func (a *app) repl(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			a.log.Warn().Int("line", line).Str("input", sc.Text()).Msg("expected A OP B")
			fmt.Fprintln(out, "error: expected A OP B")
			continue
		}
		res, err := evaluate(fields[0], fields[1], fields[2])
		if err != nil {
			a.log.Warn().Int("line", line).Err(err).Msg("evaluation failed")
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, res)
	}

	return sc.Err()
}

// evaluate parses both operands and applies op.
func evaluate(lhs, op, rhs string) (string, error) {
	a, err := parseOperand(lhs)
	if err != nil {
		return "", err
	}
	b, err := parseOperand(rhs)
	if err != nil {
		return "", err
	}

	switch a.kind {
	case kindInt:
		return evalRight(op, a.i, b)
	case kindReal:
		return evalRight(op, a.f, b)
	}
	return evalRight(op, a.n, b)
}

// evalRight fixes the type of the right operand.
func evalRight[A numeral.Operand](op string, a A, b operand) (string, error) {
	switch b.kind {
	case kindInt:
		return apply(op, a, b.i)
	case kindReal:
		return apply(op, a, b.f)
	}
	return apply(op, a, b.n)
}

func apply[A, B numeral.Operand](op string, a A, b B) (string, error) {
	var arith func(A, B) (numeral.Numeral, error)
	switch op {
	case "+":
		arith = numeral.Add[A, B]
	case "-":
		arith = numeral.Sub[A, B]
	case "*":
		arith = numeral.Mul[A, B]
	case "/":
		arith = numeral.TrueDiv[A, B]
	case "//":
		arith = numeral.FloorDiv[A, B]
	case "%":
		arith = numeral.Mod[A, B]
	case "**":
		arith = numeral.Pow[A, B]
	case "divmod":
		q, r, err := numeral.DivMod(a, b)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s %s (%d, %d)", q, r, q.Int(), r.Int()), nil
	case "==":
		return fmt.Sprint(numeral.Equal(a, b)), nil
	case "!=":
		return fmt.Sprint(numeral.NotEqual(a, b)), nil
	case "<":
		return fmt.Sprint(numeral.Less(a, b)), nil
	case "<=":
		return fmt.Sprint(numeral.LessOrEqual(a, b)), nil
	case ">":
		return fmt.Sprint(numeral.Greater(a, b)), nil
	case ">=":
		return fmt.Sprint(numeral.GreaterOrEqual(a, b)), nil
	default:
		return "", fmt.Errorf("%w %q, want one of %s", errUnknownOperator, op, strings.Join(operators, " "))
	}

	n, err := arith(a, b)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s (%d)", n, n.Int()), nil
}
