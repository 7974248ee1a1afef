package migration

import (
	"context"
	"errors"
	"time"

	zlogger "github.com/gjutils/gjutil/logger"
	"github.com/gjutils/gjutil/progress"
	"github.com/gjutils/gjutil/types"
	zErrors "github.com/gjutils/gjutil/zErrors"
)

var ErrNoCopier = errors.New("no object copier configured")

// CopyBetweenBuckets copies every source object to its destination name, one
// at a time and in order. Objects that fail are collected and returned in
// the order they failed; a failure never stops the remaining copies.
//
// If ctx is cancelled the names not yet attempted are added to the missing
// list and ctx.Err() is returned with it.
func CopyBetweenBuckets(ctx context.Context, cfg *CopyConfig) ([]string, error) {
	if len(cfg.SrcFilenames) != len(cfg.DestFilenames) {
		return nil, zErrors.NewLengthMismatchError(len(cfg.SrcFilenames), len(cfg.DestFilenames))
	}
	if cfg.Copier == nil {
		return nil, ErrNoCopier
	}

	reporter := cfg.Reporter
	if reporter == nil {
		reporter = progress.Discard
	}

	total := len(cfg.SrcFilenames)
	step := progress.Step(total)
	timeStart := time.Now()
	missingFiles := make([]string, 0)

	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			zlogger.Logger.Error("Copy cancelled after ", i, " of ", total, " objects: ", err)
			missingFiles = append(missingFiles, cfg.SrcFilenames[i:]...)
			return missingFiles, err
		}

		src := types.ObjectPath{Bucket: cfg.SrcBucket, Key: cfg.SrcFilenames[i]}
		dst := types.ObjectPath{Bucket: cfg.DestBucket, Key: cfg.DestFilenames[i]}

		if err := cfg.Copier.Copy(ctx, src, dst); err != nil {
			zlogger.Logger.Error(cfg.SrcFilenames[i], " does not exist or could not be copied: ", err)
			missingFiles = append(missingFiles, cfg.SrcFilenames[i])
		}

		if i%step == 0 || i == total-1 {
			reporter.Report(progress.Progress{
				Done:    i + 1,
				Total:   total,
				Percent: progress.Percent(i+1, total),
				Elapsed: time.Since(timeStart),
			})
		}
	}

	zlogger.Logger.Info("Copied ", total-len(missingFiles), " of ", total, " objects from ", cfg.SrcBucket, " to ", cfg.DestBucket)
	return missingFiles, nil
}
