package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroman/numeral"
)

// errInvalidInput is returned by validate when at least one argument fails.
var errInvalidInput = errors.New("one or more inputs are not valid numerals")

func newParseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse NUMERAL...",
		Short: "Print the value of each numeral",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range args {
				n, err := numeral.Parse(s)
				if err != nil {
					return err
				}
				a.log.Debug().Str("input", s).Int("value", n.Int()).Msg("parsed")
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %d\n", n, n.Int())
			}
			return nil
		},
	}
}

func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode NUMBER...",
		Short: "Print the canonical numeral for each number",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range args {
				f, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return fmt.Errorf("%q is not a number: %w", s, err)
				}
				n, err := numeral.FromFloat(f)
				if err != nil {
					return err
				}
				a.log.Debug().Str("input", s).Str("numeral", n.String()).Msg("encoded")
				fmt.Fprintf(cmd.OutOrStdout(), "%d = %s\n", n.Int(), n)
			}
			return nil
		},
	}
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate STRING...",
		Short: "Report whether each string is a well-formed numeral",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bad := 0
			for _, s := range args {
				if err := numeral.Validate(s); err != nil {
					a.log.Debug().Err(err).Msg("rejected")
					fmt.Fprintf(cmd.OutOrStdout(), "%q invalid\n", s)
					bad++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%q valid\n", s)
			}
			if bad > 0 {
				return fmt.Errorf("%d of %d: %w", bad, len(args), errInvalidInput)
			}
			return nil
		},
	}
}

func newPlacesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "places VALUE",
		Short: "Split a numeral or number into thousands, hundreds, tens and ones",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := parseOperand(args[0])
			if err != nil {
				return err
			}
			n, err := op.toNumeral()
			if err != nil {
				return err
			}
			p := n.ByPlaceValue()
			names := []string{"thousands", "hundreds", "tens", "ones"}
			for i, slot := range p.Values() {
				fmt.Fprintf(cmd.OutOrStdout(), "%-9s %-5s %d\n", names[i], slot, slot.Int())
			}
			a.log.Debug().Stringer("places", p).Msg("decomposed")
			return nil
		},
	}
}
