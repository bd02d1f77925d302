package main

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/jerrychoi/bookroad/internal/library"
	"github.com/jerrychoi/bookroad/pkg/aladin"
)

func openLibrary() (*library.Store, error) {
	if err := cfg.Validate("library"); err != nil {
		return nil, err
	}
	return library.Open(cfg.Library.Path)
}

// lookupFirst resolves a query to its top Keyword search hit.
func lookupFirst(cmd *cobra.Command, query string) (*aladin.Book, func(), error) {
	api, cleanup, err := newCatalogClient()
	if err != nil {
		return nil, nil, err
	}

	env, err := api.SearchItems(cmd.Context(), query, aladin.QueryTypeKeyword, 1, cfg.Aladin.MaxResults)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	if len(env.Item) == 0 {
		cleanup()
		return nil, nil, eris.Errorf("no catalog result for %q", query)
	}
	return &env.Item[0], cleanup, nil
}

var favoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage saved books",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved books, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openLibrary()
		if err != nil {
			return err
		}
		defer store.Close()

		favs, err := store.ListFavorites(cmd.Context())
		if err != nil {
			return err
		}
		if len(favs) == 0 {
			cmd.Println("no favorites yet")
			return nil
		}
		for _, f := range favs {
			line := f.Title
			if f.Author != "" {
				line += " / " + f.Author
			}
			if f.ISBN13 != "" {
				line += " [" + f.ISBN13 + "]"
			}
			cmd.Println(line)
		}
		return nil
	},
}

var favoritesToggleCmd = &cobra.Command{
	Use:   "toggle <query>",
	Short: "Save the top search hit for a query, or remove it if saved",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		book, cleanup, err := lookupFirst(cmd, strings.Join(args, " "))
		if err != nil {
			return err
		}
		defer cleanup()

		store, err := openLibrary()
		if err != nil {
			return err
		}
		defer store.Close()

		added, err := store.ToggleFavorite(cmd.Context(), *book)
		if err != nil {
			return err
		}
		if added {
			cmd.Printf("saved: %s (%s)\n", book.Title, book.Author)
		} else {
			cmd.Printf("removed: %s (%s)\n", book.Title, book.Author)
		}
		return nil
	},
}

func init() {
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesToggleCmd)
	rootCmd.AddCommand(favoritesCmd)
}
