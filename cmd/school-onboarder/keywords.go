package main

import (
	"github.com/spf13/cobra"

	"school-onboarder/internal/keywords"
)

func newKeywordsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "Print the keyword dictionaries in use as YAML",
		Long: `Print the keyword dictionaries in use as YAML. The output is a valid
--dictionary file and a starting point for custom synonyms.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, err := a.dictionary()
			if err != nil {
				return err
			}

			data, err := keywords.Marshal(set)
			if err != nil {
				return err
			}

			_, err = a.out.Write(data)

			return err
		},
	}
}
