package main

import (
	"os"

	"github.com/go-kit/kit/log"
)

func main() {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	rootCmd := newRoot(logger).Command()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
