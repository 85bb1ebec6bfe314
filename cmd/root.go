// Package cmd contains the commands of the linear binary.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/g-m-twostay/go-linear/internal/logger"
)

const (
	logFormatFlag = "log-format"
	logFormatConf = "log.format"
	logLevelFlag  = "log-level"
	logLevelConf  = "log.level"
)

// NewRootCommand lets every child command read its settings from CLI flags or from environment
// variables prefixed with LINEAR, in that order.
func NewRootCommand() *cobra.Command {
	viper.SetEnvPrefix("LINEAR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	viper.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "linear",
		Short: "Linear containers and the stack based expression tools built on them",
		Long: `Linear containers and the stack based expression tools built on them.

balance, postfix and eval work on arithmetic expressions; triage runs a hospital triage desk.`,
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.String(logFormatFlag, "text", "log format: 'text' or 'json'")
	flags.String(logLevelFlag, "none", "log level: 'none', 'debug', 'info', 'warn' or 'error'")
	MustBindPFlag(logFormatConf, flags.Lookup(logFormatFlag))
	MustBindPFlag(logLevelConf, flags.Lookup(logLevelFlag))

	return cmd
}

// MustBindPFlag binds key to flag and panics if that fails.
func MustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}

func newLogger() (*zap.Logger, error) {
	return logger.NewLogger(viper.GetString(logFormatConf), viper.GetString(logLevelConf))
}
