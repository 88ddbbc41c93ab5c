// Package cmd implements the command-line interface for anihelper.
package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/anihelper/anihelper/constant"
	"github.com/anihelper/anihelper/key"
	"github.com/anihelper/anihelper/log"
	"github.com/anihelper/anihelper/tool"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.SetOut(os.Stdout)
}

// rootCmd defines the entry point for the anihelper application.
var rootCmd = &cobra.Command{
	Use:   constant.Anihelper,
	Short: "A command-line interface for anime and manga discovery over Anilist and Jikan",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// dispatcher builds the tool surface from the live configuration. Built per
// invocation so config set takes effect without restarting anything.
func dispatcher() *tool.Dispatcher {
	return tool.Default()
}

// emit writes one envelope as indented JSON to the command's output stream.
func emit(cmd *cobra.Command, envelope any) {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	handleErr(encoder.Encode(envelope))
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s\n", errorTitle(strings.Trim(err.Error(), " \n")))
		os.Exit(1)
	}
}

// stringsFlag reads a repeatable string slice flag.
func stringsFlag(cmd *cobra.Command, name string) []string {
	return lo.Must(cmd.Flags().GetStringSlice(name))
}
