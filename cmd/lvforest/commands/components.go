package commands

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvforest/dsu"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newComponentsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "components [file]",
		Short: "Print the connected components of an edge list, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runComponents(cmd, v, args)
		},
	}
	cmd.Flags().String("union", dsu.ByRank.String(), "union heuristic: rank or size")

	return cmd
}

func runComponents(cmd *cobra.Command, v *viper.Viper, args []string) error {
	log, err := newLogger(cmd, v)
	if err != nil {
		return err
	}
	in, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	mode, err := dsu.ParseMode(v.GetString("union"))
	if err != nil {
		return err
	}

	d, err := dsu.New(in.n, dsu.WithMode(mode))
	if err != nil {
		return err
	}
	merges := 0
	for _, e := range in.edges {
		merged, err := d.Union(e.From, e.To)
		if err != nil {
			return err
		}
		if merged {
			merges++
		}
	}
	log.Debug("unions done", "edges", len(in.edges), "merges", merges, "components", d.ComponentCount())

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "components: %d\n", d.ComponentCount())
	for _, set := range d.Sets() {
		fmt.Fprintln(w, strings.Trim(fmt.Sprint(set), "[]"))
	}

	return nil
}
