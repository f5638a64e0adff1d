// Package configure implements Contemplate CLI configuration loading.
package configure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/tenheadedlion/contemplate/cli/cmdcontext"
	"github.com/tenheadedlion/contemplate/cli/config"
	"github.com/tenheadedlion/contemplate/cli/util"
)

// ConfigName is a default name of the Contemplate CLI configuration file.
const ConfigName = "contemplate.yaml"

// GetDefaultCliOpts returns `CliOpts` filled with default values.
func GetDefaultCliOpts() *config.CliOpts {
	return &config.CliOpts{
		Templates: []config.TemplateOpts{},
		Remotes:   map[string]string{},
	}
}

// Cli performs initial CLI configuration: locates the configuration
// file and fills the CLI context. A missing configuration file is not
// an error, defaults are used in that case.
func Cli(cmdCtx *cmdcontext.CmdCtx) error {
	if cmdCtx.Cli.ConfigPath != "" {
		if _, err := os.Stat(cmdCtx.Cli.ConfigPath); err != nil {
			return fmt.Errorf("specified path to the configuration file is invalid: %s", err)
		}
		configPath, err := filepath.Abs(cmdCtx.Cli.ConfigPath)
		if err != nil {
			return fmt.Errorf("failed to get absolute path to configuration file: %s", err)
		}
		cmdCtx.Cli.ConfigPath = configPath
		cmdCtx.Cli.ConfigDir = filepath.Dir(configPath)
		return nil
	}

	configPath, err := findConfigFile()
	if err != nil {
		return err
	}
	cmdCtx.Cli.ConfigPath = configPath
	if configPath != "" {
		cmdCtx.Cli.ConfigDir = filepath.Dir(configPath)
	}

	return nil
}

// findConfigFile searches for the configuration file in the current
// working directory and in the user configuration directory. Returns
// an empty string if no configuration file is found.
func findConfigFile() (string, error) {
	workingDir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	inCwd := filepath.Join(workingDir, ConfigName)
	if util.IsRegularFile(inCwd) {
		return inCwd, nil
	}

	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		// No home directory: proceed with defaults.
		return "", nil
	}
	inUserConfig := filepath.Join(userConfigDir, "contemplate", ConfigName)
	if util.IsRegularFile(inUserConfig) {
		return inUserConfig, nil
	}

	return "", nil
}

// decodeConfig decodes a raw configuration map into CliOpts.
func decodeConfig(rawConfigOpts map[string]interface{}, cfg *config.CliOpts) error {
	parsedConfig := config.Config{CliConfig: cfg}
	if err := mapstructure.Decode(rawConfigOpts, &parsedConfig); err != nil {
		return err
	}

	return nil
}

// GetCliOpts loads Contemplate CLI configuration from the configPath file.
// Empty configPath means no configuration file, defaults are returned.
func GetCliOpts(configPath string) (*config.CliOpts, error) {
	cfg := GetDefaultCliOpts()
	if configPath == "" {
		return cfg, nil
	}

	rawConfigOpts, err := util.ParseYAML(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Contemplate CLI configuration: %s", err)
	}

	if err := decodeConfig(rawConfigOpts, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse Contemplate CLI configuration: %s", err)
	}

	configDir, err := filepath.Abs(filepath.Dir(configPath))
	if err != nil {
		return nil, err
	}

	// Template search paths are relative to the configuration file location.
	for i := range cfg.Templates {
		if !filepath.IsAbs(cfg.Templates[i].Path) {
			cfg.Templates[i].Path = filepath.Join(configDir, cfg.Templates[i].Path)
		}
	}
	if cfg.Remotes == nil {
		cfg.Remotes = map[string]string{}
	}

	return cfg, nil
}
