package cmd

import (
	"os"
	"strings"

	"github.com/anihelper/anihelper/tool"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringP("kind", "k", "", "Media kind (ANIME or MANGA)")
	searchCmd.Flags().StringP("source", "S", "", "Source queried first (anilist or jikan)")
	searchCmd.Flags().IntP("limit", "l", 0, "Maximum number of results")
	searchCmd.SetOut(os.Stdout)
}

// searchCmd searches for media by title and emits the result envelope as JSON.
var searchCmd = &cobra.Command{
	Use:     "search <query>",
	Short:   "Search for anime or manga by title",
	Example: "  anihelper search \"one piece\" --kind ANIME --limit 5",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		emit(cmd, dispatcher().SearchMedia(cmd.Context(), tool.SearchArgs{
			Query:  strings.Join(args, " "),
			Kind:   lo.Must(cmd.Flags().GetString("kind")),
			Source: lo.Must(cmd.Flags().GetString("source")),
			Limit:  lo.Must(cmd.Flags().GetInt("limit")),
		}))
	},
}
