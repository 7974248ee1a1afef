package migration

import (
	"context"
	"fmt"
	"strings"

	"github.com/gjutils/gjutil/types"
	"github.com/gjutils/gjutil/util"
	zErrors "github.com/gjutils/gjutil/zErrors"
)

const (
	DefaultCopyTool = "gsutil"
	gcsScheme       = "gs"
)

//go:generate mockgen -destination mocks/mock_copier.go -package mock_migration github.com/gjutils/gjutil/migration ObjectCopier
type ObjectCopier interface {
	Copy(ctx context.Context, src, dst types.ObjectPath) error
}

// GsutilCopier copies one object per gsutil cp run. The exit status of every
// run is checked.
type GsutilCopier struct {
	runner util.Runner
	tool   string
}

func NewGsutilCopier(runner util.Runner, tool string) *GsutilCopier {
	if tool == "" {
		tool = DefaultCopyTool
	}
	return &GsutilCopier{runner: runner, tool: tool}
}

func (g *GsutilCopier) Command(src, dst types.ObjectPath) util.Command {
	return util.Command{
		Program: g.tool,
		Args:    []string{"cp", src.URI(gcsScheme), dst.URI(gcsScheme)},
	}
}

func (g *GsutilCopier) Copy(ctx context.Context, src, dst types.ObjectPath) error {
	res, err := g.runner.Run(ctx, g.Command(src, dst))
	if err == nil {
		return nil
	}

	detail := err.Error()
	if res != nil && strings.TrimSpace(res.Stderr) != "" {
		detail = strings.TrimSpace(res.Stderr)
	}
	return fmt.Errorf("%w: %w", zErrors.NewCopyFailedError(src.URI(gcsScheme), dst.URI(gcsScheme), detail), err)
}

// StorageCopier copies through the storage API instead of an external tool.
type StorageCopier struct {
	store types.CloudStorageI
}

func NewStorageCopier(store types.CloudStorageI) *StorageCopier {
	return &StorageCopier{store: store}
}

func (s *StorageCopier) Copy(ctx context.Context, src, dst types.ObjectPath) error {
	return s.store.CopyFile(ctx, src, dst)
}
