package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gjutils/gjutil/migration"
	"github.com/gjutils/gjutil/model"
	"github.com/gjutils/gjutil/progress"
	"github.com/gjutils/gjutil/util"
	"github.com/go-yaml/yaml"
	"github.com/spf13/cobra"
)

var (
	srcBucket, destBucket       string
	srcFile, destFile, manifest string
	copyTool, missingOut        string
)

func init() {
	rootCmd.AddCommand(copyCmd)

	copyCmd.Flags().StringVar(&srcBucket, "src-bucket", "", "bucket to copy from (overrides manifest)")
	copyCmd.Flags().StringVar(&destBucket, "dest-bucket", "", "bucket to copy to (overrides manifest)")
	copyCmd.Flags().StringVar(&manifest, "manifest", "", "yaml file with src_bucket, dest_bucket and a list of src/dest object names")
	copyCmd.Flags().StringVar(&srcFile, "src-file", "", "file with one source object name per line")
	copyCmd.Flags().StringVar(&destFile, "dest-file", "", "file with one destination object name per line, matching --src-file")
	copyCmd.Flags().StringVar(&copyTool, "tool", "", "gsutil runs gsutil cp per object, api asks the service to copy (overrides config)")
	copyCmd.Flags().StringVar(&missingOut, "missing-out", "", "write the names that could not be copied to this yaml file")
	addS3Flags(copyCmd)
}

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy objects from one bucket to another under new names",
	Long: `Copy takes a list of source object names and a list of destination names of the same length and
	copies each source object to its destination name, one at a time. Objects that could not be copied
	are printed at the end and, with --missing-out, saved to a yaml report.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadCopyInput(manifest, srcFile, destFile)
		if err != nil {
			return err
		}
		if srcBucket != "" {
			m.SrcBucket = srcBucket
		}
		if destBucket != "" {
			m.DestBucket = destBucket
		}
		if m.SrcBucket == "" || m.DestBucket == "" {
			return errors.New("source and destination buckets are required")
		}

		tool, err := resolveCopyTool(appConfig.Copy.Tool, copyTool)
		if err != nil {
			return err
		}

		ctx, cancel := commandContext()
		defer cancel()

		var copier migration.ObjectCopier
		switch tool {
		case model.CopyToolGsutil:
			copier = migration.NewGsutilCopier(util.Exec, "")
		case model.CopyToolAPI:
			store, closeStore, err := newCloudStorage(ctx, appConfig)
			if err != nil {
				return err
			}
			defer closeStore()
			copier = migration.NewStorageCopier(store)
		}

		missing, copyErr := migration.CopyBetweenBuckets(ctx, &migration.CopyConfig{
			SrcBucket:     m.SrcBucket,
			SrcFilenames:  m.Src,
			DestBucket:    m.DestBucket,
			DestFilenames: m.Dest,
			Copier:        copier,
			Reporter:      progress.Multi(progress.NewConsoleReporter(os.Stderr), progress.LogReporter{}),
		})
		if missing == nil {
			return copyErr
		}

		out := cmd.OutOrStdout()
		if len(missing) > 0 {
			fmt.Fprintf(out, "%d of %d objects could not be copied:\n", len(missing), len(m.Src))
			for _, name := range missing {
				fmt.Fprintln(out, name)
			}
		}

		if missingOut != "" {
			report := model.MissingReport{SrcBucket: m.SrcBucket, DestBucket: m.DestBucket, Missing: missing}
			if err := writeMissingReport(missingOut, report); err != nil {
				return errors.Join(copyErr, err)
			}
		}
		return copyErr
	},
}

// resolveCopyTool prefers the --tool flag over the configured tool.
func resolveCopyTool(configured, flag string) (string, error) {
	tool := configured
	if strings.TrimSpace(flag) != "" {
		tool = flag
	}

	tool = normalize(tool)
	switch tool {
	case model.CopyToolGsutil, model.CopyToolAPI:
		return tool, nil
	}
	return "", fmt.Errorf("%w: %v", ErrInvalidCopyTool, tool)
}

type copyInput struct {
	SrcBucket, DestBucket string
	Src, Dest             []string
}

// loadCopyInput reads the object names either from a manifest or from a pair
// of line files.
func loadCopyInput(manifestPath, srcPath, destPath string) (*copyInput, error) {
	if manifestPath != "" {
		data, err := os.ReadFile(manifestPath)
		if err != nil {
			return nil, err
		}
		var m model.CopyManifest
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadParsing, err)
		}
		src, dest := m.Names()
		return &copyInput{SrcBucket: m.SrcBucket, DestBucket: m.DestBucket, Src: src, Dest: dest}, nil
	}

	if srcPath == "" || destPath == "" {
		return nil, errors.New("either --manifest or both --src-file and --dest-file are required")
	}

	src, err := util.ReadLines(srcPath)
	if err != nil {
		return nil, err
	}
	dest, err := util.ReadLines(destPath)
	if err != nil {
		return nil, err
	}

	return &copyInput{Src: src, Dest: dest}, nil
}

func writeMissingReport(path string, report model.MissingReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
