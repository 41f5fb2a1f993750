// Package taxonomy handles taxonomy inspection commands
package taxonomy

import (
	"eladk/pension-match/cmd/root"

	"github.com/spf13/cobra"
)

var (
	category string
	company  string
)

// Cmd represents the taxonomy command
var Cmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Inspect the loaded product taxonomy",
	Long: `Inspect the loaded taxonomy: list categories and companies, or drill
down with --category and --company to list investment tracks.`,
	Run: taxonomyFunc,
}

func taxonomyFunc(cmd *cobra.Command, args []string) {
	index := root.App.GetIndex()
	root.Log.Infof("Taxonomy loaded: %d rows", index.Len())

	if category != "" && company != "" {
		tracks := index.TracksFor(category, company)
		root.Log.Infof("Tracks for %s / %s:", category, company)
		for _, track := range tracks {
			root.Log.Infof("  %s", track)
		}
		return
	}

	if category != "" {
		root.Log.Infof("Sub-categories of %s:", category)
		for _, sub := range index.SubCategories(category) {
			root.Log.Infof("  %s", sub)
		}
		return
	}

	root.Log.Info("Categories:")
	for _, cat := range index.Categories() {
		root.Log.Infof("  %s", cat)
	}
	root.Log.Info("Companies:")
	for _, comp := range index.Companies() {
		root.Log.Infof("  %s", comp)
	}
}

func init() {
	Cmd.Flags().StringVarP(&category, "category", "c", "", "Category to drill into")
	Cmd.Flags().StringVarP(&company, "company", "m", "", "Company to list tracks for (requires --category)")
}
