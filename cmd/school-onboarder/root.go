package main

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"school-onboarder/internal/clean"
	"school-onboarder/internal/config"
	"school-onboarder/internal/keywords"
	"school-onboarder/internal/logging"
	"school-onboarder/internal/reconcile"
)

// app carries what every subcommand needs once the root has run.
type app struct {
	out    io.Writer
	errOut io.Writer

	configFile string

	cfg    *config.Config
	logger zerolog.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "school-onboarder",
		Short: "Reconcile school spreadsheets into Parent, Student and Payment tables",
		Long: `school-onboarder maps the columns of an arbitrary school export onto the
Parent, Student and Payment import schemas using keyword dictionaries.

Wide installment columns such as "Term 1" become payment records, combined
"parent/student" identifiers are split, missing parent passwords are
generated and duplicate records are dropped. Every decision is reported as a
notification.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.SetOut(out)
	root.SetErr(errOut)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default is ./"+config.FileName+".yaml)")
	flags.String("dictionary", "", "keyword dictionary YAML file (default is the built-in dictionary)")
	flags.String("log-level", "", "log level: trace, debug, info, warn, error or off")
	flags.String("log-format", "", "log format: auto, json or console")
	flags.Bool("no-color", false, "disable colored console logs")

	root.AddCommand(newProcessCmd(a), newInspectCmd(a), newKeywordsCmd(a))

	return root
}

// setup loads configuration and the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.Options{ConfigFile: a.configFile, Flags: cmd.Flags()})
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging, a.errOut)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger

	if cfg.ConfigFile != "" {
		a.logger.Debug().Str("file", cfg.ConfigFile).Msg("using config file")
	}

	return nil
}

// dictionary returns the configured keyword dictionaries.
func (a *app) dictionary() (keywords.Set, error) {
	if a.cfg.Dictionary == "" {
		return keywords.Default(), nil
	}

	set, err := keywords.LoadFile(a.cfg.Dictionary)
	if err != nil {
		return keywords.Set{}, err
	}

	a.logger.Debug().Str("file", a.cfg.Dictionary).Msg("loaded keyword dictionary")

	return set, nil
}

func (a *app) engine() (*reconcile.Engine, error) {
	set, err := a.dictionary()
	if err != nil {
		return nil, err
	}

	return reconcile.New(
		reconcile.WithDictionary(set),
		reconcile.WithPasswordGenerator(clean.NewFakerPasswords(a.cfg.PasswordSeed)),
		reconcile.WithLogger(a.logger),
	)
}
