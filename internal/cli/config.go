package cli

import (
	"fmt"
	"os"

	"github.com/critique-dev/critique/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage critique configuration",
}

func init() {
	configCmd.AddCommand(
		&cobra.Command{
			Use:   "init",
			Short: "Write a config file with the default settings",
			RunE:  runConfigInit,
		},
		&cobra.Command{
			Use:   "set <key> <value>",
			Short: "Set one configuration value in the config file",
			Args:  cobra.ExactArgs(2),
			RunE:  runConfigSet,
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration as YAML",
			RunE:  runConfigShow,
		},
	)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(os.Stderr, "Config file already exists at %s\n", path)
		return nil
	}
	if err := config.Save(config.Default()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	// No config file yet means we edit a fresh default one.
	cfg, err := config.LoadFile()
	if err != nil {
		cfg = config.Default()
	}
	if err := config.SetField(&cfg, key, value); err != nil {
		return err
	}
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Set %s = %s\n", key, value)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(nil)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stdout, string(data))
	return nil
}
