package cmd

import (
	"os"

	"github.com/anihelper/anihelper/tool"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(aboutCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(guideCmd)

	guideCmd.Flags().BoolP("text", "t", false, "Emit the plain-text rendition instead of the JSON catalog")

	healthCmd.SetOut(os.Stdout)
	aboutCmd.SetOut(os.Stdout)
	schemaCmd.SetOut(os.Stdout)
	guideCmd.SetOut(os.Stdout)
}

// healthCmd reports the configured sources.
var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Report the configured sources",
	Run: func(cmd *cobra.Command, args []string) {
		emit(cmd, dispatcher().Health(cmd.Context()))
	},
}

// aboutCmd reports process metadata: endpoints, limits and versions.
var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Report endpoints, limits and versions",
	Run: func(cmd *cobra.Command, args []string) {
		emit(cmd, dispatcher().About(cmd.Context()))
	},
}

// guideCmd emits the tool catalog with replayable examples.
var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the tool catalog with usage examples",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("text")) {
			emit(cmd, dispatcher().HelpText(cmd.Context()))
			return
		}
		emit(cmd, dispatcher().Help(cmd.Context()))
	},
}

// schemaCmd generates the JSON schema of every tool's argument object.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for the tool argument objects",
	Run: func(cmd *cobra.Command, args []string) {
		emit(cmd, tool.Schemas())
	},
}
