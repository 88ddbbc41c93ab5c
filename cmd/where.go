package cmd

import (
	"os"

	"github.com/anihelper/anihelper/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// whereTarget pairs a localized filesystem resource with its CLI flag.
type whereTarget struct {
	name     string
	where    func() string
	argLong  string
	argShort mo.Option[string]
}

var wherePaths = []*whereTarget{
	{"Config", where.Config, "config", mo.Some("c")},
	{"Logs", where.Logs, "logs", mo.Some("l")},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, target := range wherePaths {
		if target.argShort.IsPresent() {
			whereCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, target.name+" path")
		} else {
			whereCmd.Flags().Bool(target.argLong, false, target.name+" path")
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(wherePaths, func(t *whereTarget, _ int) string {
		return t.argLong
	})...)

	whereCmd.SetOut(os.Stdout)
}

// whereCmd displays localized filesystem paths for application resources.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Display the filesystem paths for application-specific resources",
	Run: func(cmd *cobra.Command, args []string) {
		for _, target := range wherePaths {
			if lo.Must(cmd.Flags().GetBool(target.argLong)) {
				cmd.Println(target.where())
				return
			}
		}

		for i, target := range wherePaths {
			cmd.Printf("%s %s\n", header(target.name+"?"), fg(colorYellow)("--"+target.argLong))
			cmd.Println(target.where())

			if i < len(wherePaths)-1 {
				cmd.Println()
			}
		}
	},
}
