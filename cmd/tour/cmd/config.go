package cmd

import (
	"fmt"

	"github.com/GoCodeAlone/demokit"
	"github.com/GoCodeAlone/demokit/feeders"
	"github.com/spf13/cobra"
)

// feederFunc adapts a function to demokit.Feeder.
type feederFunc func(target any) error

func (f feederFunc) Feed(target any) error { return f(target) }

// loadConfig layers the config file, the environment and the flags the user
// actually set, then applies defaults and validates.
func loadConfig(cmd *cobra.Command) (*demokit.Config, error) {
	var sources []demokit.Feeder

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if path != "" {
		file, err := feeders.ForFile(path)
		if err != nil {
			return nil, err
		}
		sources = append(sources, file)
	}

	sources = append(sources, feeders.NewAffixedEnvFeeder(envPrefix, ""), flagFeeder(cmd))

	cfg := &demokit.Config{}
	if err := demokit.LoadConfig(cfg, sources...); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func flagFeeder(cmd *cobra.Command) demokit.Feeder {
	return feederFunc(func(target any) error {
		cfg, ok := target.(*demokit.Config)
		if !ok {
			return fmt.Errorf("%w: %T", demokit.ErrConfigNotStruct, target)
		}

		flags := cmd.Flags()
		var err error
		if flags.Changed("log-level") {
			if cfg.LogLevel, err = flags.GetString("log-level"); err != nil {
				return err
			}
		}
		if flags.Changed("log-format") {
			if cfg.LogFormat, err = flags.GetString("log-format"); err != nil {
				return err
			}
		}
		if flags.Changed("delay-scale") {
			if cfg.DelayScale, err = flags.GetFloat64("delay-scale"); err != nil {
				return err
			}
		}
		return nil
	})
}
