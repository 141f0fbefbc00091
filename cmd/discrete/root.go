// Root command and shared helpers for the discrete CLI.
package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/discrete/catalog"
	"github.com/katalvlaran/discrete/natural"
	"github.com/katalvlaran/discrete/space"
)

// app holds the flag values and the settings resolved from them.
type app struct {
	configFile string
	human      bool

	format catalog.Format
	limit  int
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "discrete",
		Short: "Count, rank and unrank positions of discrete spaces",
		Long: `discrete maps every position of a finite combinatorial space to a
unique index and back. Spaces are given as descriptors such as
"pair", "power-set(pair)" or "product(permutation, context)"; run
"discrete spaces" for the list. Dimensions and positions are YAML or
JSON values.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default: ./discrete.yaml)")
	pf.String(cfgKeyFormat, defaultFormat, "output format: json or yaml")
	pf.BoolVar(&a.human, "human", false, "print counts and indices with thousands separators")

	root.AddCommand(
		a.countCmd(),
		a.zeroCmd(),
		a.posCmd(),
		a.indexCmd(),
		a.listCmd(),
		a.sampleCmd(),
		a.spacesCmd(),
		versionCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	v, err := loadConfig(a.configFile, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	if a.format, err = catalog.ParseFormat(v.GetString(cfgKeyFormat)); err != nil {
		return err
	}
	a.limit = v.GetInt(cfgKeyLimit)
	return nil
}

// open builds the space named by desc and decodes its dimension.
func open(desc, dimText string) (space.Checked[any, any, natural.Big], any, error) {
	s, err := catalog.Parse(desc)
	if err != nil {
		return space.Checked[any, any, natural.Big]{}, nil, err
	}
	n, err := catalog.ParseValue(dimText)
	if err != nil {
		return space.Checked[any, any, natural.Big]{}, nil, fmt.Errorf("dimension: %w", err)
	}
	dim, err := s.DecodeDim(n)
	if err != nil {
		return space.Checked[any, any, natural.Big]{}, nil, err
	}
	return space.NewChecked[any, any, natural.Big](s), dim, nil
}

// codecOf returns the catalog space inside a checked wrapper.
func codecOf(c space.Checked[any, any, natural.Big]) catalog.Space {
	return c.Space.(catalog.Space)
}

func parseIndex(text string) (natural.Big, error) {
	i, err := natural.ParseBig(text)
	if err != nil {
		return natural.Big{}, fmt.Errorf("index: %w", err)
	}
	return i, nil
}

func (a *app) number(v natural.Big) *yaml.Node {
	if a.human {
		return &yaml.Node{Kind: yaml.ScalarNode, Value: humanize.BigComma(v.Int())}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v.String()}
}

func (a *app) row(s catalog.Space, index natural.Big, pos any) *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle, Content: []*yaml.Node{
		{Kind: yaml.ScalarNode, Value: "index"}, a.number(index),
		{Kind: yaml.ScalarNode, Value: "pos"}, s.EncodePos(pos),
	}}
}

func (a *app) emit(cmd *cobra.Command, n *yaml.Node) error {
	return catalog.Render(cmd.OutOrStdout(), a.format, n)
}

// emitRows writes one JSON value per line, or a single YAML sequence.
func (a *app) emitRows(cmd *cobra.Command, rows []*yaml.Node) error {
	if a.format == catalog.FormatYAML {
		return a.emit(cmd, &yaml.Node{Kind: yaml.SequenceNode, Content: rows})
	}
	for _, r := range rows {
		if err := a.emit(cmd, r); err != nil {
			return err
		}
	}
	return nil
}
