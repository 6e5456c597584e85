package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Manager loads a Config through Viper.
type Manager struct {
	Viper *viper.Viper

	configFile      string
	configFileFound bool
}

// NewManager creates a Manager. When configFile is empty, .docdiff.yaml is
// searched for in the working directory and then in the user's home directory.
func NewManager(configFile string) *Manager {
	return &Manager{
		Viper:      InitializeViper(configFile),
		configFile: configFile,
	}
}

// InitializeViper returns a Viper instance with docdiff defaults, search paths
// and environment handling configured.
func InitializeViper(configFile string) *viper.Viper {
	viperInstance := viper.New()

	viperInstance.SetEnvPrefix(EnvPrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viperInstance.AutomaticEnv()

	defaults := NewConfig()
	viperInstance.SetDefault(KeyEditor, defaults.Editor)
	viperInstance.SetDefault(KeyDiffFlag, defaults.DiffFlag)
	viperInstance.SetDefault(KeyOrigRoot, defaults.OrigRoot)
	viperInstance.SetDefault(KeyDocDir, defaults.DocDir)
	viperInstance.SetDefault(KeyExtension, defaults.Extension)
	viperInstance.SetDefault(KeyWait, defaults.Wait)
	viperInstance.SetDefault(KeyDryRun, defaults.DryRun)
	viperInstance.SetDefault(KeyVerbose, defaults.Verbose)

	if configFile != "" {
		viperInstance.SetConfigFile(configFile)

		return viperInstance
	}

	viperInstance.SetConfigName(FileName)
	viperInstance.SetConfigType(FileType)
	viperInstance.AddConfigPath(".")

	home, err := os.UserHomeDir()
	if err == nil {
		viperInstance.AddConfigPath(home)
	}

	return viperInstance
}

// Keys lists every configuration key in flag order.
func Keys() []string {
	return []string{
		KeyEditor,
		KeyDiffFlag,
		KeyOrigRoot,
		KeyDocDir,
		KeyExtension,
		KeyWait,
		KeyDryRun,
		KeyVerbose,
	}
}

// BindFlags binds the flags named after configuration keys. Flags unknown to
// the configuration are ignored.
func (m *Manager) BindFlags(flags *pflag.FlagSet) error {
	for _, key := range Keys() {
		flag := flags.Lookup(key)
		if flag == nil {
			continue
		}

		err := m.Viper.BindPFlag(key, flag)
		if err != nil {
			return fmt.Errorf("bind flag %q: %w", key, err)
		}
	}

	return nil
}

// Load reads the config file (if any), environment variables and bound flags
// into a Config. A missing config file is not an error unless it was named
// explicitly.
func (m *Manager) Load() (*Config, error) {
	err := m.readConfig()
	if err != nil {
		return nil, err
	}

	cfg := NewConfig()

	err = m.Viper.Unmarshal(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.ErrorUnused = true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	cfg.Editor = Expand(cfg.Editor)
	cfg.DiffFlag = Expand(cfg.DiffFlag)
	cfg.OrigRoot = Expand(cfg.OrigRoot)
	cfg.DocDir = Expand(cfg.DocDir)
	cfg.Extension = Expand(cfg.Extension)

	return cfg, nil
}

// ConfigFileUsed returns the path of the config file read by Load, or "" when
// none was found.
func (m *Manager) ConfigFileUsed() string {
	if !m.configFileFound {
		return ""
	}

	return m.Viper.ConfigFileUsed()
}

func (m *Manager) readConfig() error {
	err := m.Viper.ReadInConfig()
	if err == nil {
		m.configFileFound = true

		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if m.configFile == "" && errors.As(err, &configFileNotFoundError) {
		m.configFileFound = false

		return nil
	}

	return fmt.Errorf("failed to read config file: %w", err)
}
