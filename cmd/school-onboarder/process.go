package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"school-onboarder/internal/reconcile"
	"school-onboarder/internal/sheet"
	"school-onboarder/internal/table"
)

// outputSuffix is appended to the input name when no output is configured.
const outputSuffix = "_onboarded.xlsx"

func newProcessCmd(a *app) *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "process <input>",
		Short: "Reconcile a spreadsheet and write the Parent, Student and Payment sheets",
		Example: `  school-onboarder process roster.xlsx
  school-onboarder process roster.csv -o onboarding.xlsx --dictionary keywords.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runProcess(args[0], dump)
		},
	}

	cmd.Flags().StringP("output", "o", "", "output workbook (default is <input>"+outputSuffix+")")
	cmd.Flags().Int64("password-seed", 0, "seed for generated passwords, 0 for random")
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the resolved column mappings")

	return cmd
}

func (a *app) runProcess(input string, dump bool) error {
	_, res, err := a.reconcile(input)
	if err != nil {
		return err
	}

	printNotifications(a, res)

	if dump {
		spew.Fdump(a.out, res.Mappings, res.Extraction)
	}

	output := a.cfg.Output
	if output == "" {
		output = defaultOutput(input)
	}

	if err := sheet.WriteResult(output, res); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Wrote %s: %d parents, %d students, %d payments.\n",
		output, res.Parents.Len(), res.Students.Len(), res.Payments.Len())

	a.logger.Info().Str("run_id", res.RunID.String()).Str("output", output).Msg("workbook written")

	return nil
}

// reconcile reads input and runs the engine on it.
func (a *app) reconcile(input string) (*table.Table, *reconcile.Result, error) {
	e, err := a.engine()
	if err != nil {
		return nil, nil, err
	}

	raw, err := sheet.Read(input)
	if err != nil {
		return nil, nil, err
	}

	a.logger.Debug().Str("input", input).Int("rows", raw.Len()).Int("columns", raw.Width()).Msg("input read")

	return raw, e.Process(raw), nil
}

// printNotifications lists informational notifications first, then
// warnings.
func printNotifications(a *app, res *reconcile.Result) {
	for _, n := range res.Notifications.Infos() {
		fmt.Fprintln(a.out, n)
	}

	for _, n := range res.Notifications.Warnings() {
		fmt.Fprintln(a.out, n)
	}
}

func defaultOutput(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + outputSuffix
}
