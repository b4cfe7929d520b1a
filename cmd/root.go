package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/disc0nn3ct/SAST-RPA/common"
	"github.com/disc0nn3ct/SAST-RPA/pretty"
	"github.com/disc0nn3ct/SAST-RPA/settings"
)

var (
	debugFlag      bool
	traceFlag      bool
	silentFlag     bool
	outputOption   string
	settingsOption string
)

var rootCmd = &cobra.Command{
	Use:   "sastrpa",
	Short: "sastrpa pulls embedded code and dependency SBOMs out of robot release documents.",
	Long: `sastrpa is a one-shot analysis tool for vendor robot release XML
documents. It extracts embedded source code into per-stage files and
generates a CycloneDX SBOM from the referenced and imported libraries.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		common.DefineVerbosity(viper.GetBool("silent"), viper.GetBool("debug"), viper.GetBool("trace"))
		pretty.Setup()
		_, err := settings.SummonSettings(viper.GetString("settings"))
		pretty.Guard(err == nil, 1, "Could not load settings: %v", err)
	},
}

// outputDir resolves the output directory from the flag or SASTRPA_OUTPUT.
func outputDir() string {
	return viper.GetString("output")
}

func Execute() {
	defer common.WaitLogs()
	if err := rootCmd.Execute(); err != nil {
		common.Fatal("sastrpa", err)
		common.WaitLogs()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "", false, "Turn on debugging output.")
	rootCmd.PersistentFlags().BoolVarP(&traceFlag, "trace", "", false, "Turn on tracing output.")
	rootCmd.PersistentFlags().BoolVarP(&silentFlag, "silent", "", false, "Be less verbose on output.")
	rootCmd.PersistentFlags().StringVarP(&outputOption, "output", "o", "artifacts", "Directory where extracted code and sbom.json are written.")
	rootCmd.PersistentFlags().StringVarP(&settingsOption, "settings", "", "", "Path to custom settings YAML file.")

	viper.SetEnvPrefix("SASTRPA")
	viper.AutomaticEnv()
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("trace", rootCmd.PersistentFlags().Lookup("trace"))
	viper.BindPFlag("silent", rootCmd.PersistentFlags().Lookup("silent"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("settings", rootCmd.PersistentFlags().Lookup("settings"))
}
