package cmd

import (
	"os"
	"runtime"

	"github.com/anihelper/anihelper/constant"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
}

// versionCmd displays application version and build metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		cmd.Printf("%s %s\n\n", header(constant.Anihelper), bold(constant.Version))
		cmd.Printf("  %s  %s\n", faint("Schema  "), bold(constant.SchemaVersion))
		cmd.Printf("  %s  %s/%s\n", faint("Platform"), bold(runtime.GOOS), bold(runtime.GOARCH))
	},
}
