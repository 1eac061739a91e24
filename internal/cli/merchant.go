package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	merchantStart string
	merchantEnd   string
)

var merchantCmd = &cobra.Command{
	Use:   "merchant",
	Short: "Download merchant card transactions for a period (XML only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		body, err := client.MerchantTransactionsRaw(cmd.Context(), merchantStart, merchantEnd)
		if err != nil {
			return err
		}
		fmt.Println(body)
		return nil
	},
}

func init() {
	merchantCmd.Flags().StringVar(&merchantStart, "start", "", "period start (YYYY-MM-DD)")
	merchantCmd.Flags().StringVar(&merchantEnd, "end", "", "period end (YYYY-MM-DD)")
	merchantCmd.MarkFlagRequired("start")
	merchantCmd.MarkFlagRequired("end")
	rootCmd.AddCommand(merchantCmd)
}
