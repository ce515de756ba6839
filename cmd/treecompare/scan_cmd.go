package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"treecompare/internal/pattern"
	"treecompare/internal/scanner"
)

type scanOpts struct {
	*rootOpts
	skip       []string
	depth      int
	configPath string
}

func newScan(parent *rootOpts) *scanOpts {
	return &scanOpts{rootOpts: parent}
}

func (opts *scanOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [DIR]",
		Short: "Scan directory contents and dump them as JSON.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  opts.RunE,
	}
	cmd.Flags().StringArrayVarP(&opts.skip, "skip", "s", nil, skipHelp)
	cmd.Flags().IntVarP(&opts.depth, "depth", "d", -1,
		"Maximum directory recursion depth; negative means unbounded.")
	cmd.Flags().StringVar(&opts.configPath, "config", "",
		"YAML file with additional skip patterns.")
	return cmd
}

func (opts *scanOpts) RunE(_ *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	skips, err := collectSkips(opts.skip, opts.configPath)
	if err != nil {
		return err
	}

	s := scanner.New(os.Stdout, pattern.Compile(skips), opts.logger)
	if err := s.Scan(dir, opts.depth); err != nil {
		return errors.Wrapf(err, "scanning %s", dir)
	}
	return nil
}
