package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"school-onboarder/internal/match"
	"school-onboarder/internal/schema"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <input>",
		Short: "Show how the columns of a spreadsheet map onto each entity",
		Long: `Show how the columns of a spreadsheet map onto each entity without
writing anything. Unmapped fields list the closest header, if any, as a hint
for extending the keyword dictionary.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, res, err := a.reconcile(args[0])
			if err != nil {
				return err
			}

			set, err := a.dictionary()
			if err != nil {
				return err
			}

			if ext := res.Extraction; len(ext.Consumed) > 0 {
				fmt.Fprintf(a.out, "Installment columns: %s (%d payments, keyed on %s)\n",
					strings.Join(ext.Consumed, ", "), ext.Rows, strings.Join(ext.References, ", "))
			}

			columns := slices.DeleteFunc(raw.Names(), func(c string) bool {
				return slices.Contains(res.Extraction.Consumed, c)
			})

			for _, en := range schema.Entities {
				m := res.Mappings[en]
				hints := match.Suggest(m, set.For(en), columns, match.DefaultSuggestionScore)

				fmt.Fprintf(a.out, "\n%s\n", en)

				for _, field := range schema.For(en).Fields {
					if column, ok := m.Column(field); ok {
						fmt.Fprintf(a.out, "  %-18s %s\n", field, column)
						continue
					}

					if hint, ok := hints[field]; ok {
						fmt.Fprintf(a.out, "  %-18s - (closest: %q, %.0f%% like %q)\n",
							field, hint.Column, hint.Score*100, hint.Synonym)
						continue
					}

					fmt.Fprintf(a.out, "  %-18s -\n", field)
				}
			}

			return nil
		},
	}
}
