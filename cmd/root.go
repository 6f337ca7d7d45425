package cmd

import (
	"fmt"
	"os"

	"github.com/haystacksec/kustodian/internal/message"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	outputDir   string
	outFile     string
	jqFilter    string
	quietFlag   bool
	noColorFlag bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "kustodian",
	Short:         "Kustodian is a CLI tool for KQL query generation and NIST 800-171 compliance assessment.",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		message.Banner()
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		message.Error("%s", err.Error())
		os.Exit(exitCode(err))
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.kustodian.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "directory to write output files to")
	rootCmd.PersistentFlags().StringVar(&outFile, "outfile", "", "output file name (default is derived from the command)")
	rootCmd.PersistentFlags().StringVar(&jqFilter, "jq", "", "jq filter applied to structured output")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "suppress informational messages")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
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

		// Search config in home directory with name ".kustodian" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".kustodian")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	message.SetQuiet(quietFlag)
	if noColorFlag || !isatty.IsTerminal(os.Stdout.Fd()) {
		message.SetNoColor(true)
	}
}
