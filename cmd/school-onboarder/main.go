// Package main provides the CLI entrypoint for school-onboarder.
//
// school-onboarder reads a school's student spreadsheet, reconciles its
// columns against the Parent, Student and Payment import schemas and writes
// the three tables to a workbook:
//   - process: reconcile a file and write the result
//   - inspect: show how the columns would be mapped
//   - keywords: print the keyword dictionaries as YAML
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
