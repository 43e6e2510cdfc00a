package config

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Type for a key, to make things more typesafe
type ViperKey string

// Constants used by viper to lookup configuration
const (
	LauncherLibrary      ViperKey = "launcher.library"
	LauncherReport       ViperKey = "launcher.report"
	LauncherReportFormat ViperKey = "launcher.report_format"

	LogLevel ViperKey = "log.level"
)

func init() {
	SetDefaults()
}

// SetDefaults registers the default of every key that has one. Keys without
// a default must be set by a flag, the environment or the config file.
func SetDefaults() {
	viper.SetDefault(string(LauncherReport), "")
	viper.SetDefault(string(LauncherReportFormat), DefaultReportFormat)
	viper.SetDefault(string(LogLevel), DefaultLogLevel)
}

func GetString(key ViperKey) string {
	if !viper.IsSet(string(key)) {
		log.Panicf("The key '%v' was not set and does not have a default value", key)
	}
	return viper.GetString(string(key))
}

// LookupString is GetString for keys that may legitimately be unset.
func LookupString(key ViperKey) (string, bool) {
	if !viper.IsSet(string(key)) {
		return "", false
	}
	return viper.GetString(string(key)), true
}

func BindPFlag(key ViperKey, flag *pflag.Flag) {
	viper.BindPFlag(string(key), flag)
}

// InitConfig reads the config file and enables VGRL_ environment overrides.
// Only an explicitly requested config file has to exist.
func InitConfig() error {
	viper.SetEnvPrefix("vgrl")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if CfgFile != "" {
		viper.SetConfigFile(CfgFile)
	} else {
		viper.AddConfigPath("$HOME")
		viper.SetConfigName(".vgrl")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if CfgFile == "" && errors.As(err, &notFound) {
			log.Debug("No config file found, using defaults")
			return nil
		}
		return fmt.Errorf("Cannot read config: %v", err)
	}

	log.WithField("file", viper.ConfigFileUsed()).Debug("Using config file")
	return nil
}
