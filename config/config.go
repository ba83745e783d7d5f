package config

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/vipad/terminal"
)

// EnvPrefix namespaces environment overrides, e.g. VIPAD_DEBUG or VIPAD_LOG_FILE
const EnvPrefix = "VIPAD"

// Flag and key names
const (
	KeyDebug       = "debug"
	KeyLogFile     = "log-file"
	KeyReadTimeout = "read-timeout"
)

// Config holds runtime settings resolved from flags and environment
type Config struct {
	Debug       bool
	LogFile     string
	ReadTimeout time.Duration
}

// BindFlags registers the command's flags and binds them, plus VIPAD_* environment variables, to v
func BindFlags(cmd *cobra.Command, v *viper.Viper) error {
	flags := cmd.Flags()
	flags.Bool(KeyDebug, false, "enable debug logging")
	flags.String(KeyLogFile, "", "log file path (default ~/.config/vipad/vipad.log)")
	flags.Duration(KeyReadTimeout, terminal.DefaultReadTimeout, "key read timeout, 100ms to 200ms")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{KeyDebug, KeyLogFile, KeyReadTimeout} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return err
		}
	}
	v.SetDefault(KeyReadTimeout, terminal.DefaultReadTimeout)
	return nil
}

// Load resolves the configuration. The read timeout is clamped to the supported range.
func Load(v *viper.Viper) Config {
	return Config{
		Debug:       v.GetBool(KeyDebug),
		LogFile:     v.GetString(KeyLogFile),
		ReadTimeout: terminal.ClampReadTimeout(v.GetDuration(KeyReadTimeout)),
	}
}
