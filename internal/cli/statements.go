package cli

import (
	"fmt"

	"github.com/fiosdk/fiogo"
	"github.com/spf13/cobra"
)

var (
	statementsYear   string
	statementsID     string
	statementsFormat string
)

var statementsCmd = &cobra.Command{
	Use:   "statements",
	Short: "Download an official account statement by year and number",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		if statementsFormat != "" {
			body, err := client.StatementsRaw(ctx, statementsYear, statementsID, fiogo.ExportFormat(statementsFormat))
			if err != nil {
				return err
			}
			fmt.Println(body)
			return nil
		}

		st, err := client.Statements(ctx, statementsYear, statementsID)
		if err != nil {
			return err
		}
		return printJSON(st)
	},
}

var lastStatementIDCmd = &cobra.Command{
	Use:   "last-statement-id",
	Short: "Print the year and number of the newest official statement",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		id, err := client.LastStatementID(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("year=%s id=%s\n", id.Year, id.ID)
		return nil
	},
}

func init() {
	statementsCmd.Flags().StringVar(&statementsYear, "year", "", "statement year (YYYY)")
	statementsCmd.Flags().StringVar(&statementsID, "id", "", "statement number within the year")
	statementsCmd.Flags().StringVar(&statementsFormat, "format", "", "raw export format (pdf, sta, cba_xml, ...)")
	statementsCmd.MarkFlagRequired("year")
	statementsCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(statementsCmd)
	rootCmd.AddCommand(lastStatementIDCmd)
}
