// Space commands for the discrete CLI.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/discrete/catalog"
	"github.com/katalvlaran/discrete/natural"
	"github.com/katalvlaran/discrete/space"
)

func (a *app) countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count SPACE DIM",
		Short: "Print the number of positions",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, dim, err := open(args[0], args[1])
			if err != nil {
				return err
			}
			n, err := s.Count(dim)
			if err != nil {
				return err
			}
			return a.emit(cmd, a.number(n))
		},
	}
}

func (a *app) zeroCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zero SPACE DIM",
		Short: "Print the first position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, dim, err := open(args[0], args[1])
			if err != nil {
				return err
			}
			pos, err := s.Zero(dim)
			if err != nil {
				return err
			}
			return a.emit(cmd, codecOf(s).EncodePos(pos))
		},
	}
}

func (a *app) posCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pos SPACE DIM INDEX",
		Short: "Print the position with the given index",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, dim, err := open(args[0], args[1])
			if err != nil {
				return err
			}
			i, err := parseIndex(args[2])
			if err != nil {
				return err
			}
			pos, err := s.Pos(dim, i)
			if err != nil {
				return err
			}
			return a.emit(cmd, codecOf(s).EncodePos(pos))
		},
	}
}

func (a *app) indexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index SPACE DIM POS",
		Short: "Print the index of a position",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, dim, err := open(args[0], args[1])
			if err != nil {
				return err
			}
			n, err := catalog.ParseValue(args[2])
			if err != nil {
				return fmt.Errorf("position: %w", err)
			}
			pos, err := codecOf(s).DecodePos(n)
			if err != nil {
				return err
			}
			i, err := s.ToIndex(dim, pos)
			if err != nil {
				return err
			}
			return a.emit(cmd, a.number(i))
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	var from string
	var limit int
	cmd := &cobra.Command{
		Use:   "list SPACE DIM",
		Short: "Print positions in index order",
		Long: `Print positions in index order, starting at --from. At most --limit
rows are printed (config key "limit"); a limit of 0 prints all of them.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, dim, err := open(args[0], args[1])
			if err != nil {
				return err
			}
			count, err := s.Count(dim)
			if err != nil {
				return err
			}
			start, err := parseIndex(from)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = a.limit
			}
			end := count
			if limit > 0 {
				end = start.Add(natural.NewBig(uint64(limit)))
			}

			c := codecOf(s)
			rows := []*yaml.Node{}
			for i, pos := range space.Range[any, any, natural.Big](c, dim, start, end) {
				rows = append(rows, a.row(c, i, pos))
			}
			return a.emitRows(cmd, rows)
		},
	}
	cmd.Flags().StringVar(&from, "from", "0", "first index")
	cmd.Flags().IntVar(&limit, "limit", defaultLimit, "maximum number of rows, 0 for all")
	return cmd
}

func (a *app) sampleCmd() *cobra.Command {
	var k int
	var seed int64
	cmd := &cobra.Command{
		Use:   "sample SPACE DIM",
		Short: "Print positions drawn uniformly at random",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, dim, err := open(args[0], args[1])
			if err != nil {
				return err
			}
			if _, err = s.Count(dim); err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			c := codecOf(s)
			indices, err := catalog.Sample[any, any](c, dim, k, catalog.WithSeed(seed))
			if err != nil {
				return err
			}
			rows := make([]*yaml.Node, len(indices))
			for j, i := range indices {
				rows[j] = a.row(c, i, space.Pos[any, any, natural.Big](c, dim, i))
			}
			return a.emitRows(cmd, rows)
		},
	}
	cmd.Flags().IntVarP(&k, "count", "n", 1, "number of draws")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default: time based)")
	return cmd
}

func (a *app) spacesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spaces",
		Short: "List the space names usable in descriptors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			str := func(v string) *yaml.Node { return &yaml.Node{Kind: yaml.ScalarNode, Value: v} }
			var rows []*yaml.Node
			for _, e := range catalog.Entries() {
				rows = append(rows, &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{
					str("name"), str(e.Name),
					str("inner"), str(strconv.Itoa(e.Inner)),
					str("dim"), {Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: e.Dim},
					str("pos"), {Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: e.Pos},
					str("summary"), str(e.Summary),
				}})
			}
			return a.emitRows(cmd, rows)
		},
	}
}
