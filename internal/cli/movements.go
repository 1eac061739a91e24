package cli

import (
	"encoding/json"
	"fmt"

	"github.com/fiosdk/fiogo"
	"github.com/spf13/cobra"
)

var (
	movementsStart  string
	movementsEnd    string
	movementsFormat string
)

var movementsCmd = &cobra.Command{
	Use:   "movements",
	Short: "Download account movements",
	Long: `Downloads account movements. With --start and --end the selected period
is fetched; without them the movements since the last download are fetched
and the server-side bookmark advances.

With --format the bank's raw export is printed unparsed; otherwise the JSON
response is decoded and re-printed indented.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		period := movementsStart != "" || movementsEnd != ""

		if movementsFormat != "" {
			format := fiogo.ExportFormat(movementsFormat)
			var body string
			if period {
				body, err = client.MovementsInPeriodRaw(ctx, movementsStart, movementsEnd, format)
			} else {
				body, err = client.MovementsSinceLastRaw(ctx, format)
			}
			if err != nil {
				return err
			}
			fmt.Println(body)
			return nil
		}

		st, err := func() (any, error) {
			if period {
				return client.MovementsInPeriod(ctx, movementsStart, movementsEnd)
			}
			return client.MovementsSinceLast(ctx)
		}()
		if err != nil {
			return err
		}
		return printJSON(st)
	},
}

func init() {
	movementsCmd.Flags().StringVar(&movementsStart, "start", "", "period start (YYYY-MM-DD)")
	movementsCmd.Flags().StringVar(&movementsEnd, "end", "", "period end (YYYY-MM-DD)")
	movementsCmd.Flags().StringVar(&movementsFormat, "format", "", "raw export format (xml, csv, gpc, html, ofx, ...)")
	rootCmd.AddCommand(movementsCmd)
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
