// Package config loads command line configuration from flags, the
// environment, .env files and an optional YAML config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"school-onboarder/internal/logging"
)

const (
	// EnvPrefix prefixes every environment variable, e.g. ONBOARD_LOG_LEVEL.
	EnvPrefix = "ONBOARD"
	// FileName is the config file searched for when none is given.
	FileName = ".school-onboarder"
)

// Keys.
const (
	KeyDictionary   = "dictionary"
	KeyOutput       = "output"
	KeyLogLevel     = "log_level"
	KeyLogFormat    = "log_format"
	KeyNoColor      = "no_color"
	KeyPasswordSeed = "password_seed"
)

// envFiles are loaded in this order; a variable already present in the
// environment is never overwritten, so .env.local wins over .env.
var envFiles = []string{".env.local", ".env"}

// Config is the resolved configuration.
type Config struct {
	// Dictionary is a keyword dictionary file; empty means built-in.
	Dictionary string
	// Output is the workbook written by process; empty means derived from
	// the input name.
	Output string
	// PasswordSeed makes generated passwords reproducible when non-zero.
	PasswordSeed int64

	Logging logging.Config

	// ConfigFile is the config file actually read, if any.
	ConfigFile string
}

// Options tells Load where to look.
type Options struct {
	// Dir holds .env files and the default config file. Empty means the
	// working directory.
	Dir string
	// ConfigFile is an explicit config file. Unlike the default file it
	// must exist.
	ConfigFile string
	// Flags are bound by key; a flag named "log-level" binds log_level.
	Flags *pflag.FlagSet
}

// Load resolves configuration. Precedence, highest first: flags set on
// the command line, environment, .env files, config file, defaults.
func Load(opts Options) (*Config, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	if err := loadEnvFiles(dir); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	defaults := logging.DefaultConfig()
	v.SetDefault(KeyLogLevel, defaults.Level)
	v.SetDefault(KeyLogFormat, defaults.Format)
	v.SetDefault(KeyNoColor, defaults.NoColor)

	if err := bindFlags(v, opts.Flags); err != nil {
		return nil, err
	}

	if err := readConfigFile(v, dir, opts.ConfigFile); err != nil {
		return nil, err
	}

	return &Config{
		Dictionary:   v.GetString(KeyDictionary),
		Output:       v.GetString(KeyOutput),
		PasswordSeed: v.GetInt64(KeyPasswordSeed),
		Logging: logging.Config{
			Level:   v.GetString(KeyLogLevel),
			Format:  v.GetString(KeyLogFormat),
			NoColor: v.GetBool(KeyNoColor),
		},
		ConfigFile: v.ConfigFileUsed(),
	}, nil
}

func loadEnvFiles(dir string) error {
	for _, name := range envFiles {
		path := filepath.Join(dir, name)

		err := godotenv.Load(path)
		if err != nil && !isNotExist(err) {
			return fmt.Errorf("load %s: %w", path, err)
		}
	}

	return nil
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if flags == nil {
		return nil
	}

	for _, key := range []string{KeyDictionary, KeyOutput, KeyLogLevel, KeyLogFormat, KeyNoColor, KeyPasswordSeed} {
		f := flags.Lookup(strings.ReplaceAll(key, "_", "-"))
		if f == nil {
			continue
		}

		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", f.Name, err)
		}
	}

	return nil
}

func readConfigFile(v *viper.Viper, dir, explicit string) error {
	if explicit != "" {
		v.SetConfigFile(explicit)

		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", explicit, err)
		}

		return nil
	}

	v.AddConfigPath(dir)
	v.SetConfigName(FileName)
	v.SetConfigType("yaml")

	err := v.ReadInConfig()

	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("read config: %w", err)
	}

	return nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
