// Package cmd implements the sftpwalk CLI, built with
// github.com/spf13/cobra for command/flag parsing and
// github.com/spf13/viper for layered flag/env/config-file precedence.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "sftpwalk",
	Short: "Walk a remote directory tree over SFTP v3",
	Long: `sftpwalk dials an SSH server, opens an SFTP v3 session, and walks a
remote directory tree, printing a find-style listing. It exercises the
sftpwire codec end to end, including the limits and expand-path
OpenSSH-portable extensions where the server advertises them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runWalk,
}

func init() {
	flags := rootCmd.Flags()
	flags.String("host", "", "SSH server host (required)")
	flags.Int("port", 22, "SSH server port")
	flags.String("user", os.Getenv("USER"), "SSH username")
	flags.String("identity", filepath.Join(os.Getenv("HOME"), ".ssh", "id_rsa"), "private key path")
	flags.String("remote-path", "/", "remote directory to walk")
	flags.String("log-level", "info", "log level: trace, debug, info, warn, error")

	_ = viper.BindPFlag("host", flags.Lookup("host"))
	_ = viper.BindPFlag("port", flags.Lookup("port"))
	_ = viper.BindPFlag("user", flags.Lookup("user"))
	_ = viper.BindPFlag("identity", flags.Lookup("identity"))
	_ = viper.BindPFlag("remote-path", flags.Lookup("remote-path"))
	_ = viper.BindPFlag("log-level", flags.Lookup("log-level"))

	viper.SetEnvPrefix("SFTPWALK")
	viper.AutomaticEnv()

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetConfigName(".sftpwalk")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			logrus.WithError(err).Warn("failed to read config file")
		}
	}
}

// Execute runs the root command. It is the single entry point main calls.
func Execute() error {
	return rootCmd.Execute()
}

func configureLogging() error {
	level, err := logrus.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		return fmt.Errorf("parsing --log-level: %w", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}
