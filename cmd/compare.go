package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/mazerunner/engine"
	"github.com/katalvlaran/mazerunner/grid"
	"github.com/katalvlaran/mazerunner/search"
)

// Result summarises one algorithm's run on a maze.
type Result struct {
	Algorithm  string       `json:"algorithm"`
	Found      bool         `json:"found"`
	PathLength int          `json:"path_length"`
	Expanded   int          `json:"expanded"`
	Discovered int          `json:"discovered"`
	Path       []grid.Coord `json:"path,omitempty"`
}

// Comparison is the full compare report.
type Comparison struct {
	Rows      int      `json:"rows"`
	Cols      int      `json:"cols"`
	Start     [2]int   `json:"start"`
	Goal      [2]int   `json:"goal"`
	Reachable bool     `json:"reachable"`
	Results   []Result `json:"results"`
}

// Compare runs every algorithm to completion on its own copy of g.
// limit > 0 caps the steps per algorithm.
func Compare(g *grid.Grid, limit int) (Comparison, error) {
	cmp := Comparison{
		Rows:      g.Rows(),
		Cols:      g.Cols(),
		Start:     [2]int{g.Start().Row, g.Start().Col},
		Goal:      [2]int{g.Goal().Row, g.Goal().Col},
		Reachable: g.Connected(g.Start(), g.Goal()),
	}
	for _, algo := range engine.Algorithms() {
		run, err := engine.NewRun(algo, g, search.Hooks{})
		if err != nil {
			return cmp, errors.Wrapf(err, "start %s", algo)
		}
		st, err := search.Run(run, limit)
		if err != nil {
			return cmp, errors.Wrapf(err, "run %s", algo)
		}

		discovered := 0
		for i := 0; i < g.Rows()*g.Cols(); i++ {
			if run.Reached(g.Coordinate(i)) {
				discovered++
			}
		}
		cmp.Results = append(cmp.Results, Result{
			Algorithm:  algo.String(),
			Found:      st.Outcome == search.Found,
			PathLength: len(st.Path),
			Expanded:   st.Index,
			Discovered: discovered,
			Path:       st.Path,
		})
	}
	return cmp, nil
}

// RenderTable writes cmp as an aligned table.
func RenderTable(w io.Writer, cmp Comparison) error {
	fmt.Fprintf(w, "maze %dx%d  start (%d,%d)  goal (%d,%d)  reachable: %t\n\n",
		cmp.Rows, cmp.Cols, cmp.Start[0], cmp.Start[1], cmp.Goal[0], cmp.Goal[1], cmp.Reachable)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tFOUND\tPATH\tEXPANDED\tDISCOVERED")
	for _, r := range cmp.Results {
		fmt.Fprintf(tw, "%s\t%t\t%d\t%d\t%d\n", r.Algorithm, r.Found, r.PathLength, r.Expanded, r.Discovered)
	}
	return tw.Flush()
}

// RenderJSON writes cmp as indented JSON.
func RenderJSON(w io.Writer, cmp Comparison) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(cmp)
}

func newCompareCommand(a *app) *cobra.Command {
	var (
		format string
		limit  int
	)
	c := &cobra.Command{
		Use:   "compare",
		Short: "Run A*, BFS and DFS on the same maze and tabulate the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.makeGrid()
			if err != nil {
				return err
			}
			cmp, err := Compare(g, limit)
			if err != nil {
				return err
			}
			a.log.Debug("comparison done", "reachable", cmp.Reachable, "algorithms", len(cmp.Results))

			switch format {
			case FormatText:
				return RenderTable(cmd.OutOrStdout(), cmp)
			case FormatJSON:
				return RenderJSON(cmd.OutOrStdout(), cmp)
			default:
				return errors.Errorf("unknown format: %s (must be text or json)", format)
			}
		},
	}
	c.Flags().StringVar(&format, "format", FormatText, "Output format: text, json")
	c.Flags().IntVar(&limit, "limit", 0, "Maximum steps per algorithm, 0 for none")
	return c
}
