package main

import (
	"os"

	"github.com/spf13/cobra"

	"treecompare/internal/compare"
	"treecompare/internal/pattern"
	"treecompare/internal/snapshot"
)

type compareOpts struct {
	*rootOpts
	skip       []string
	relative   bool
	configPath string
}

func newCompare(parent *rootOpts) *compareOpts {
	return &compareOpts{rootOpts: parent}
}

func (opts *compareOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare DUMP_A DUMP_B",
		Short: "Compare two directory scan dumps.",
		Args:  cobra.ExactArgs(2),
		RunE:  opts.RunE,
	}
	cmd.Flags().StringArrayVarP(&opts.skip, "skip", "s", nil, skipHelp)
	cmd.Flags().BoolVar(&opts.relative, "relative", false,
		"Work with paths relative to the scan root."+
			" Note that --skip patterns should then also be relative.")
	cmd.Flags().StringVar(&opts.configPath, "config", "",
		"YAML file with additional skip patterns.")
	return cmd
}

func (opts *compareOpts) RunE(_ *cobra.Command, args []string) error {
	a, err := snapshot.Load(args[0])
	if err != nil {
		return err
	}
	b, err := snapshot.Load(args[1])
	if err != nil {
		return err
	}

	if opts.relative {
		if a, err = snapshot.Unwrap(a); err != nil {
			return err
		}
		if b, err = snapshot.Unwrap(b); err != nil {
			return err
		}
	}

	skips, err := collectSkips(opts.skip, opts.configPath)
	if err != nil {
		return err
	}

	records := compare.Compare(a, b, "", pattern.Compile(skips))
	return compare.WriteReport(os.Stdout, records)
}
