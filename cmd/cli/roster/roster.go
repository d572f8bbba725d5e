package roster

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/parkdui/LG-Thingo/internal/characters"
	"github.com/parkdui/LG-Thingo/internal/models"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "roster",
	Title: "Character catalog operations",
}

// List prints the character catalog, optionally narrowed to one product group.
var List = &cobra.Command{
	Use:     "list [productGroup]",
	GroupID: "roster",
	Short:   "List characters",
	Long:    `Lists the product characters with their ids and greetings.`,
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		catalog := characters.NewCatalog()

		groups := catalog.Groups()
		if len(args) == 1 {
			groups = []models.ProductGroup{models.ProductGroup(args[0])}
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, group := range groups {
			for _, profile := range catalog.Group(group) {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", profile.ID, profile.Nickname, profile.InitialGreeting)
			}
		}
		_ = w.Flush()
	},
}

// Prompt prints the system prompt a character chats with.
var Prompt = &cobra.Command{
	Use:     "prompt [characterId]",
	GroupID: "roster",
	Short:   "Show a character's system prompt",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		catalog := characters.NewCatalog()
		if !catalog.Contains(args[0]) {
			_, _ = fmt.Fprintf(os.Stderr, "unknown character %q, showing the fallback profile\n", args[0])
		}
		fmt.Println(catalog.Resolve(args[0]).SystemPrompt)
	},
}
