package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	chiTransport "github.com/kailas-cloud/docsearch/internal/transport/chi"
	"github.com/kailas-cloud/docsearch/internal/version"
)

var (
	searchQuery       string
	searchContentType string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the configured collection if it does not exist",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		res, err := app.Facade.Init(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, chiTransport.NewInitResponse(res))
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the demo documents into the collection",
	Long: `Ensures the collection and admits the five built-in demo documents.
Running seed twice stores the documents twice.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		res, err := app.Facade.Seed(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd, chiTransport.NewSeedResponse(res))
	},
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the collection",
	Long: `Runs a keyword search over title and content, title weighted twice,
and prints up to 50 hits as JSON.

Examples:
  docsearch search -q "поиск"
  docsearch search -q "пароль" --content-type faq`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer app.Close()

		results, err := app.Facade.Search(cmd.Context(), searchQuery, searchContentType)
		if err != nil {
			return err
		}
		return printJSON(cmd, chiTransport.NewSearchHits(results))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	// Skips config loading.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "docsearch %s\n", version.String())
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "search query (required)")
	searchCmd.Flags().StringVar(&searchContentType, "content-type", "", "filter: article, blog, news or faq")
	_ = searchCmd.MarkFlagRequired("query")

	rootCmd.AddCommand(initCmd, seedCmd, searchCmd, versionCmd)
}
