package cmd

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/haystacksec/kustodian/internal/registry"
	"github.com/spf13/cobra"
)

var listModulesCmd = &cobra.Command{
	Use:   "list-modules",
	Short: "Display available Kustodian tools in a tree structure",
	Run: func(cmd *cobra.Command, args []string) {
		displayToolTree()
	},
}

func displayToolTree() {
	hierarchy := registry.GetHierarchy()

	bold := color.New(color.Bold)
	if noColorFlag {
		color.NoColor = true
	}

	platforms := make([]string, 0, len(hierarchy))
	for platform := range hierarchy {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)

	for i, platform := range platforms {
		fmt.Printf("\n%s\n", bold.Sprint(platform))

		categories := make([]string, 0, len(hierarchy[platform]))
		for category := range hierarchy[platform] {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		for _, category := range categories {
			fmt.Printf("├─ %s\n", category)
			names := append([]string{}, hierarchy[platform][category]...)
			sort.Strings(names)
			for _, name := range names {
				entry, _ := registry.GetRegistryEntry(name)
				fmt.Printf("  ├─ %s - %s\n", name, entry.Tool.Description)
			}
		}

		if i < len(platforms)-1 {
			fmt.Println()
		}
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(listModulesCmd)
}
