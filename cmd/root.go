/*
	Copyright 2023 Markus Papenbrock
*/

package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	calendarCmd "github.com/f1board/f1board/pkg/cmd/calendar"
	checkCmd "github.com/f1board/f1board/pkg/cmd/check"
	migrateCmd "github.com/f1board/f1board/pkg/cmd/migrate"
	scheduleCmd "github.com/f1board/f1board/pkg/cmd/schedule"
	"github.com/f1board/f1board/pkg/cmd/server"
	"github.com/f1board/f1board/pkg/config"
	"github.com/f1board/f1board/version"
)

const envPrefix = "F1B"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "f1board",
	Short:   "Race weekend schedules in the viewer's or the track's timezone",
	Long:    ``,
	Version: version.FullVersion,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:funlen // flag definitions
func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.f1board.yml)")

	rootCmd.PersistentFlags().StringVar(&config.DB, "db",
		"",
		"Connection string for the database (optional)")
	rootCmd.PersistentFlags().StringVar(&config.WaitForServices,
		"wait-for-services",
		"15s",
		"Duration to wait for other services to be ready")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel,
		"log-level",
		"info",
		"controls the log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().StringVar(&config.SQLLogLevel,
		"sql-log-level",
		"info",
		"controls the log level for sql methods")
	rootCmd.PersistentFlags().StringVar(&config.LogFormat,
		"log-format",
		"text",
		"controls the log output format (text, json)")
	rootCmd.PersistentFlags().StringVar(&config.LogFilter,
		"log-filter",
		"",
		"zapfilter rules, e.g. \"*:* debug:schedule*\"")
	rootCmd.PersistentFlags().StringVar(&config.LookupFile,
		"lookup-file",
		"",
		"yaml file with additional timezone, team and country entries")
	rootCmd.PersistentFlags().IntSliceVar(&config.LocationRounds,
		"location-rounds",
		nil,
		"rounds displayed by location instead of country (default 0,6,7,22)")
	rootCmd.PersistentFlags().StringVar(&config.DateStyle,
		"date-style",
		"month-day",
		"date label style (month-day, day-month)")
	rootCmd.PersistentFlags().StringVar(&config.LocalZone,
		"local-zone",
		"",
		"IANA zone used for mode \"my\" (default host zone)")

	// add commands here
	rootCmd.AddCommand(scheduleCmd.NewScheduleCmd())
	rootCmd.AddCommand(calendarCmd.NewCalendarCmd())
	rootCmd.AddCommand(checkCmd.NewCheckCmd())
	rootCmd.AddCommand(server.NewServerCmd())
	rootCmd.AddCommand(migrateCmd.NewMigrateCmd())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".f1board" (without extension).
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".f1board")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	bindFlags(rootCmd, viper.GetViper())
	for _, cmd := range rootCmd.Commands() {
		bindFlags(cmd, viper.GetViper())
	}
}

// Bind each cobra flag to its associated viper configuration
// (config file and environment variable)
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their
		// equivalent keys with underscores, e.g. --favorite-color to STING_FAVORITE_COLOR
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name,
				fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				fmt.Fprintf(os.Stderr, "Could not bind env var %s: %v", f.Name, err)
			}
		}
		// Apply the viper config value to the flag when the flag is not set and viper
		// has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := fmt.Sprintf("%v", v.Get(f.Name))
			if items, ok := v.Get(f.Name).([]any); ok {
				// yaml lists, e.g. location-rounds: [0, 6, 7, 22]
				val = strings.Join(strings.Fields(fmt.Sprint(items...)), ",")
			}
			if err := cmd.Flags().Set(f.Name, val); err != nil {
				fmt.Fprintf(os.Stderr, "Could set flag value for %s: %v", f.Name, err)
			}
		}
	})
}
