package cmd

import (
	"fmt"
	"os"

	"github.com/gjutils/gjutil/controller"
	"github.com/gjutils/gjutil/progress"
	"github.com/spf13/cobra"
)

var listBucket string

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listBucket, "bucket", "", "bucket to list")
	_ = listCmd.MarkFlagRequired("bucket")
	addS3Flags(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the name of every object in a bucket",
	Long: `List walks the whole bucket and prints one object name per line, in the order the storage
	service returns them. Progress is written to stderr so the output can be piped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		store, closeStore, err := newCloudStorage(ctx, appConfig)
		if err != nil {
			return err
		}
		defer closeStore()

		reporter := progress.Multi(progress.NewConsoleReporter(os.Stderr), progress.LogReporter{})
		names, err := controller.ListBucketFilenames(ctx, store, listBucket, reporter)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, name := range names {
			fmt.Fprintln(out, name)
		}
		return nil
	},
}
