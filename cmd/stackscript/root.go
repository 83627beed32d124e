package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = ".stackscript"
	envPrefix  = "STACKSCRIPT"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	v      *viper.Viper
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zerolog.Nop()}
	root := &cobra.Command{
		Use:     "stackscript",
		Short:   "Parse stackscript source into stack-machine instructions",
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),

		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.String("config", "", "config file (default is ~/.stackscript.yaml)")
	flags.Bool("no-color", false, "Disable colored output")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	root.AddCommand(a.parseCmd(), a.tokensCmd(), a.verifyCmd())
	return root
}

// init loads configuration for the command being run. Precedence is flags,
// then environment, then the config file.
func (a *app) init(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindEnv("no-color", envPrefix+"_NO_COLOR", "NO_COLOR"); err != nil {
		return err
	}

	if err := a.readConfig(); err != nil {
		return err
	}
	a.processGlobalFlags()
	a.logger = newLogger(cmd.ErrOrStderr(), a.v.GetBool("verbose"), a.useColor(cmd.ErrOrStderr()))
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug().Str("file", used).Msg("loaded config")
	}
	return nil
}

func (a *app) readConfig() error {
	if cfgFile := a.v.GetString("config"); cfgFile != "" {
		a.v.SetConfigFile(cfgFile)
		return a.v.ReadInConfig()
	}
	home, err := homedir.Dir()
	if err != nil {
		// No home directory means no default config.
		return nil
	}
	a.v.AddConfigPath(home)
	a.v.SetConfigName(configName)
	a.v.SetConfigType("yaml")
	err = a.v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

// Reads global flags from Viper and adjusts the environment accordingly.
func (a *app) processGlobalFlags() {
	if a.v.GetBool("no-color") {
		color.NoColor = true
	}
}

func (a *app) useColor(w io.Writer) bool {
	return !a.v.GetBool("no-color") && shouldColorize(w)
}
