package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/jerrychoi/bookroad/pkg/aladin"
)

var (
	searchPage int
	searchAll  bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Keyword search against the catalog",
	Long:  "Runs a paged ItemSearch Keyword query. --page fetches one page; --all follows the paging until a short page signals the end of the results.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		api, cleanup, err := newCatalogClient()
		if err != nil {
			return err
		}
		defer cleanup()

		pageSize := cfg.Aladin.MaxResults
		page := searchPage
		total := 0
		for {
			env, err := api.SearchItems(cmd.Context(), query, aladin.QueryTypeKeyword, page, pageSize)
			if err != nil {
				return err
			}

			for _, b := range env.Item {
				line := b.Title
				if b.Author != "" {
					line += " / " + b.Author
				}
				if b.Publisher != "" {
					line += " / " + b.Publisher
				}
				if isbn := b.BestISBN(); isbn != "" {
					line += " [" + isbn + "]"
				}
				cmd.Println(line)
			}
			total += len(env.Item)

			// A short page means the listing is exhausted.
			if !searchAll || len(env.Item) < pageSize {
				break
			}
			page++
		}

		cmd.Printf("\n%d result(s)\n", total)
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchPage, "page", 1, "1-based result page to fetch")
	searchCmd.Flags().BoolVar(&searchAll, "all", false, "follow paging to the end of the results")
	rootCmd.AddCommand(searchCmd)
}
