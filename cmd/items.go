// Package cmd implements the command-line interface for framecast.
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/framecast-cli/framecast/auth"
	"github.com/framecast-cli/framecast/catalog"
	"github.com/framecast-cli/framecast/color"
	"github.com/framecast-cli/framecast/icon"
	"github.com/framecast-cli/framecast/style"
	"github.com/framecast-cli/framecast/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(itemsCmd)

	itemsCmd.Flags().StringP("search", "s", "", "Fuzzy-search items by name")
	itemsCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	itemsCmd.Flags().BoolP("fresh", "f", false, "Bypass the on-disk catalog snapshot")

	itemsCmd.SetOut(os.Stdout)
}

// itemsCmd lists the catalog entries the slideshow cycles through.
var itemsCmd = &cobra.Command{
	Use:   "items",
	Short: "List the catalog entries the slideshow cycles through",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			query  = lo.Must(cmd.Flags().GetString("search"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			fresh  = lo.Must(cmd.Flags().GetBool("fresh"))
		)

		items, err := listItems(fresh)
		handleErr(err)

		if query != "" {
			items = catalog.Search(items, query)
		}

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			lo.Must0(encoder.Encode(items))
			return
		}

		for _, item := range items {
			fmt.Printf(
				"%s %s %s\n",
				style.Fg(color.Purple)(string(item.Kind)),
				item.Name,
				style.Faint(fmt.Sprintf("(%s)", item.Layout())),
			)
		}

		fmt.Printf("\n%s %s\n", icon.Get(icon.Success), util.Quantify(len(items), "item", "items"))
	},
}

// listItems returns the catalog, preferring the on-disk snapshot unless a
// fresh fetch is forced.
func listItems(fresh bool) ([]catalog.Item, error) {
	if !fresh {
		if items, ok := catalog.CachedSnapshot().Get(); ok {
			return items, nil
		}
	}

	record, err := auth.LoadRecord()
	if err != nil {
		return nil, err
	}

	token, err := auth.GetToken()
	if err != nil {
		return nil, err
	}

	items, err := catalog.New(record.Address, token, record.UserID).AllItems(context.Background())
	if err != nil {
		return nil, err
	}

	if err := catalog.SaveSnapshot(items); err != nil {
		return nil, err
	}
	return items, nil
}
