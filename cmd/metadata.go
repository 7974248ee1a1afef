package cmd

import (
	"fmt"
	"sort"

	"github.com/gjutils/gjutil/controller"
	"github.com/spf13/cobra"
)

var metadataBucket, metadataObject string

func init() {
	rootCmd.AddCommand(metadataCmd)

	metadataCmd.Flags().StringVar(&metadataBucket, "bucket", "", "bucket holding the object")
	metadataCmd.Flags().StringVar(&metadataObject, "object", "", "name of the object")
	_ = metadataCmd.MarkFlagRequired("bucket")
	_ = metadataCmd.MarkFlagRequired("object")
	addS3Flags(metadataCmd)
}

var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Print the custom metadata of one object",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		store, closeStore, err := newCloudStorage(ctx, appConfig)
		if err != nil {
			return err
		}
		defer closeStore()

		metadata, err := controller.GetFileMetadata(ctx, store, metadataBucket, metadataObject)
		if err != nil {
			return err
		}

		printMetadata(cmd, metadata)
		return nil
	},
}

func printMetadata(cmd *cobra.Command, metadata map[string]string) {
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := cmd.OutOrStdout()
	for _, k := range keys {
		fmt.Fprintf(out, "%s: %s\n", k, metadata[k])
	}
}
