package controller

import (
	"context"
	"fmt"
	"time"

	zlogger "github.com/gjutils/gjutil/logger"
	"github.com/gjutils/gjutil/progress"
	"github.com/gjutils/gjutil/types"
	zErrors "github.com/gjutils/gjutil/zErrors"
)

// listReportEvery is how many names are drained between progress reports.
const listReportEvery = 1000

// ListBucketFilenames returns the name of every object in bucket, in the
// order the service lists them. An empty bucket gives an empty slice.
func ListBucketFilenames(ctx context.Context, store types.CloudStorageI, bucket string, reporter progress.Reporter) ([]string, error) {
	if reporter == nil {
		reporter = progress.Discard
	}

	exists, err := store.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("looking up bucket %s: %w", bucket, err)
	}
	if !exists {
		return nil, zErrors.NewBucketNoExistError(bucket)
	}

	timeStart := time.Now()
	names := make([]string, 0)

	objCh, errCh := store.ListFiles(ctx, bucket)
	for obj := range objCh {
		names = append(names, obj.Key)
		if len(names)%listReportEvery == 0 {
			reporter.Report(progress.Progress{Done: len(names), Elapsed: time.Since(timeStart)})
		}
	}

	if err := <-errCh; err != nil {
		return nil, fmt.Errorf("listing bucket %s: %w", bucket, err)
	}

	reporter.Report(progress.Progress{Done: len(names), Elapsed: time.Since(timeStart)})
	zlogger.Logger.Info("Listed ", len(names), " objects in bucket ", bucket)
	return names, nil
}

// GetFileMetadata returns the metadata of one object exactly as the service
// stores it.
func GetFileMetadata(ctx context.Context, store types.CloudStorageI, bucket, filename string) (map[string]string, error) {
	metadata, err := store.GetFileMetadata(ctx, bucket, filename)
	if err != nil {
		return nil, fmt.Errorf("fetching metadata for %s/%s: %w", bucket, filename, err)
	}
	return metadata, nil
}
