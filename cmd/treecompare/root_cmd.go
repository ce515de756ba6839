package main

import (
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/spf13/cobra"

	"treecompare/internal/config"
)

type rootOpts struct {
	logger log.Logger
}

func newRoot(logger log.Logger) *rootOpts {
	return &rootOpts{logger: logger}
}

var rootLongHelp = strings.TrimSpace(`
treecompare takes structural snapshots of directory trees and compares them.

A snapshot records names, file sizes and nesting as a JSON document; no file
contents are read. Comparing two snapshots reports drift between two copies
of a tree (backups, deployments, mirrors) one line per difference.

Workflow:
  treecompare scan /data > before.json          # snapshot a tree
  treecompare scan /backup/data > after.json    # snapshot the copy
  treecompare compare before.json after.json    # report the drift
`)

func (opts *rootOpts) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "treecompare",
		Short:        "Snapshot and compare directory tree structures.",
		Long:         rootLongHelp,
		SilenceUsage: true,
	}

	cmd.AddCommand(
		newScan(opts).Command(),
		newCompare(opts).Command(),
	)

	return cmd
}

const skipHelp = "Directory path pattern to skip (repeatable)." +
	" Supports shell-style wildcards '*' and '?'." +
	" If the pattern doesn't start with '*', '?' or '/', it is prepended with '*/'." +
	" Examples: '.git' skips every directory named '.git';" +
	" '/home/john/tmp' skips that particular directory;" +
	" '*temp*' skips all folders having 'temp' in their name."

// collectSkips merges --skip flags with patterns from an optional --config
// file.
func collectSkips(flags []string, configPath string) ([]string, error) {
	if configPath == "" {
		return flags, nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return append(flags, cfg.Skip...), nil
}
