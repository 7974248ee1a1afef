package cmd

import (
	"fmt"

	"github.com/gjutils/gjutil/mount"
	"github.com/gjutils/gjutil/util"
	zErrors "github.com/gjutils/gjutil/zErrors"
	"github.com/spf13/cobra"
)

var (
	mountBucket, mountPath string
	implicitDirs, removeDir bool
)

func init() {
	rootCmd.AddCommand(mountCmd)
	rootCmd.AddCommand(unmountCmd)

	mountCmd.Flags().StringVar(&mountBucket, "bucket", "", "bucket to mount")
	mountCmd.Flags().StringVar(&mountPath, "path", "", "existing local directory to mount the bucket on")
	mountCmd.Flags().BoolVar(&implicitDirs, "implicit-dirs", false, "show directories implied by object names (overrides config)")
	_ = mountCmd.MarkFlagRequired("bucket")
	_ = mountCmd.MarkFlagRequired("path")

	unmountCmd.Flags().StringVar(&mountPath, "path", "", "mounted directory")
	unmountCmd.Flags().BoolVar(&removeDir, "remove-dir", false, "remove the directory after un-mounting")
	_ = unmountCmd.MarkFlagRequired("path")
}

var mountCmd = &cobra.Command{
	Use:   "mount",
	Short: "Mount a bucket on a local directory with gcsfuse",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		implicit := appConfig.Mount.ImplicitDirs
		if cmd.Flags().Changed("implicit-dirs") {
			implicit = implicitDirs
		}

		mounter := mount.NewMounter(util.Exec, appConfig.Mount.Helper)
		res, err := mounter.Mount(ctx, mountBucket, mountPath, implicit)
		res.Print(cmd.OutOrStdout())
		return err
	},
}

var unmountCmd = &cobra.Command{
	Use:   "unmount",
	Short: "Un-mount a directory mounted with gcsfuse",
	Long: `Unmount tries fusermount -u first and umount when that fails. With --remove-dir the directory
	is removed afterwards even if neither tool could un-mount it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := commandContext()
		defer cancel()

		unmounter := mount.NewUnmounter(util.Exec, util.Fs).WithTools(parseUnmountTools(appConfig.Mount.UnmountTools)...)
		res, err := unmounter.Unmount(ctx, mountPath, removeDir)
		if zErrors.IsUnmountFailedError(err) {
			fmt.Fprintln(cmd.OutOrStdout(), "Unable to un-mount drive")
		} else if res.Tool != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Un-mounted %s with %s\n", res.Directory, res.Tool)
		}
		return err
	},
}
