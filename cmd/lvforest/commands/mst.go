package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/lvforest/dsu"
	"github.com/katalvlaran/lvforest/prim_kruskal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrBadFormat indicates an unknown --format value.
var ErrBadFormat = errors.New("lvforest: unknown output format")

func newMSTCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mst [file]",
		Short: "Print the minimum (or maximum) spanning tree of an edge list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMST(cmd, v, args)
		},
	}

	cmd.Flags().String("method", prim_kruskal.MethodKruskal, "algorithm: kruskal or prim")
	cmd.Flags().Int("root", 0, "start vertex for prim")
	cmd.Flags().String("union", dsu.ByRank.String(), "union heuristic for kruskal: rank or size")
	cmd.Flags().Bool("max", false, "build a maximum spanning tree")
	cmd.Flags().Bool("forest", false, "accept disconnected graphs and print their spanning forest")
	cmd.Flags().String("format", "text", "output format: text or json")

	return cmd
}

func runMST(cmd *cobra.Command, v *viper.Viper, args []string) error {
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
	opts := prim_kruskal.MSTOptions{
		Method:  v.GetString("method"),
		Root:    v.GetInt("root"),
		Maximum: v.GetBool("max"),
		Forest:  v.GetBool("forest"),
		Union:   mode,
	}
	log.Debug("computing spanning tree",
		"method", opts.Method, "union", mode, "maximum", opts.Maximum,
		"vertices", in.n, "edges", len(in.edges))

	f, err := prim_kruskal.Compute(in.edges, in.n, opts)
	var de *prim_kruskal.DisconnectedError
	switch {
	case errors.As(err, &de):
		// Still print what was found before failing.
		log.Warn("graph is disconnected", "vertices", de.Vertices, "components", de.Components)
	case err != nil:
		return err
	}

	if werr := writeForest(cmd.OutOrStdout(), v.GetString("format"), opts, f); werr != nil {
		return werr
	}

	return err
}

// forestJSON is the json shape of a Forest.
type forestJSON struct {
	Method     string              `json:"method"`
	Maximum    bool                `json:"maximum"`
	Edges      []prim_kruskal.Edge `json:"edges"`
	Total      float64             `json:"total"`
	Vertices   int                 `json:"vertices"`
	Components int                 `json:"components"`
	Spanning   bool                `json:"spanning"`
}

func writeForest(w io.Writer, format string, opts prim_kruskal.MSTOptions, f prim_kruskal.Forest) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(forestJSON{
			Method:     opts.Method,
			Maximum:    opts.Maximum,
			Edges:      f.Edges,
			Total:      f.Total,
			Vertices:   f.Vertices,
			Components: f.Components,
			Spanning:   f.Spanning(),
		})
	case "text":
		kind := "minimum"
		if opts.Maximum {
			kind = "maximum"
		}
		shape := "tree"
		if !f.Spanning() {
			shape = "forest"
		}
		fmt.Fprintf(w, "%s %s spanning %s\n", opts.Method, kind, shape)
		for _, e := range f.Edges {
			fmt.Fprintf(w, "%d %d %g\n", e.From, e.To, e.Weight)
		}
		fmt.Fprintf(w, "total: %g\n", f.Total)
		fmt.Fprintf(w, "vertices: %d, components: %d\n", f.Vertices, f.Components)

		return nil
	default:
		return fmt.Errorf("%w: %q", ErrBadFormat, format)
	}
}

// readInput parses the file named by args[0], or stdin.
func readInput(cmd *cobra.Command, args []string) (graphInput, error) {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	rc, err := openInput(cmd.InOrStdin(), path)
	if err != nil {
		return graphInput{}, err
	}
	defer rc.Close()

	return parseEdgeList(rc)
}
