package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	bookmarkID   string
	bookmarkDate string
)

var setBookmarkCmd = &cobra.Command{
	Use:   "set-bookmark",
	Short: "Move the server-side download bookmark",
	Long: `Moves the cursor that movements-since-last downloads resume from, either
just past a movement id (--id) or to a date (--date, YYYY-MM-DD).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (bookmarkID == "") == (bookmarkDate == "") {
			return errors.New("exactly one of --id or --date is required")
		}
		client, err := newClient()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		if bookmarkID != "" {
			if err := client.SetLastID(ctx, bookmarkID); err != nil {
				return err
			}
			fmt.Printf("bookmark set past movement %s\n", bookmarkID)
			return nil
		}
		if err := client.SetLastDate(ctx, bookmarkDate); err != nil {
			return err
		}
		fmt.Printf("bookmark set to %s\n", bookmarkDate)
		return nil
	},
}

func init() {
	setBookmarkCmd.Flags().StringVar(&bookmarkID, "id", "", "movement id to resume after")
	setBookmarkCmd.Flags().StringVar(&bookmarkDate, "date", "", "date to resume from (YYYY-MM-DD)")
	rootCmd.AddCommand(setBookmarkCmd)
}
