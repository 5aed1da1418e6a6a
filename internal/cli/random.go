package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroman/numeral"
)

func newRandomCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print uniformly random numerals",
		Long: `random prints --count numerals drawn uniformly from [--min, --max].
A non-zero --seed makes the sequence reproducible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc := a.cfg.Random
			if err := rc.Validate(); err != nil {
				return err
			}
			var opts []numeral.RandomOption
			if rc.Seed != 0 {
				opts = append(opts, numeral.WithSeed(rc.Seed))
			}
			gen := numeral.NewGenerator(opts...)
			a.log.Debug().Int("min", rc.Min).Int("max", rc.Max).Int64("seed", rc.Seed).Int("count", rc.Count).Msg("drawing")

			for i := 0; i < rc.Count; i++ {
				n, err := gen.Numeral(rc.Min, rc.Max)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %d\n", n, n.Int())
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("min", numeral.DefaultRandomMin, "inclusive lower bound")
	flags.Int("max", numeral.DefaultRandomMax, "inclusive upper bound")
	flags.Int64("seed", 0, "random seed (0 = time-seeded)")
	flags.Int("count", 1, "number of numerals to print")
	for key, name := range map[string]string{
		"random.min":   "min",
		"random.max":   "max",
		"random.seed":  "seed",
		"random.count": "count",
	} {
		a.bindFlag(key, flags, name)
	}

	return cmd
}
