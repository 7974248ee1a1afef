package migration_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gjutils/gjutil/migration"
	mock_migration "github.com/gjutils/gjutil/migration/mocks"
	"github.com/gjutils/gjutil/progress"
	"github.com/gjutils/gjutil/types"
	mock_types "github.com/gjutils/gjutil/types/mocks"
	"github.com/gjutils/gjutil/util"
	mock_util "github.com/gjutils/gjutil/util/mocks"
	zErrors "github.com/gjutils/gjutil/zErrors"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func path(bucket, key string) types.ObjectPath {
	return types.ObjectPath{Bucket: bucket, Key: key}
}

func TestCopyBetweenBuckets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	copier := mock_migration.NewMockObjectCopier(ctrl)

	tests := []struct {
		name        string
		src         []string
		dest        []string
		setUpMock   func()
		wantErr     bool
		wantMissing []string
	}{
		{
			name: "all copies succeed",
			src:  []string{"a.txt", "b.txt"},
			dest: []string{"a2.txt", "b2.txt"},
			setUpMock: func() {
				gomock.InOrder(
					copier.EXPECT().Copy(gomock.Any(), path("src", "a.txt"), path("dst", "a2.txt")).Return(nil),
					copier.EXPECT().Copy(gomock.Any(), path("src", "b.txt"), path("dst", "b2.txt")).Return(nil),
				)
			},
			wantMissing: []string{},
		},
		{
			name: "second copy fails",
			src:  []string{"a.txt", "b.txt"},
			dest: []string{"a2.txt", "b2.txt"},
			setUpMock: func() {
				gomock.InOrder(
					copier.EXPECT().Copy(gomock.Any(), path("src", "a.txt"), path("dst", "a2.txt")).Return(nil),
					copier.EXPECT().Copy(gomock.Any(), path("src", "b.txt"), path("dst", "b2.txt")).Return(zErrors.NewFileNoExistError("src", "b.txt")),
				)
			},
			wantMissing: []string{"b.txt"},
		},
		{
			name: "failures keep their relative order",
			src:  []string{"0", "1", "2", "3", "4", "5", "6"},
			dest: []string{"x0", "x1", "x2", "x3", "x4", "x5", "x6"},
			setUpMock: func() {
				for i := 0; i < 7; i++ {
					var err error
					if i == 1 || i == 4 || i == 6 {
						err = errors.New("some error")
					}
					copier.EXPECT().Copy(gomock.Any(), path("src", fmt.Sprint(i)), path("dst", fmt.Sprintf("x%d", i))).Return(err)
				}
			},
			wantMissing: []string{"1", "4", "6"},
		},
		{
			name:        "nothing to copy",
			src:         []string{},
			dest:        []string{},
			setUpMock:   func() {},
			wantMissing: []string{},
		},
		{
			name:      "mismatched lengths copy nothing",
			src:       []string{"a.txt", "b.txt"},
			dest:      []string{"a2.txt"},
			setUpMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setUpMock()
			missing, err := migration.CopyBetweenBuckets(context.Background(), &migration.CopyConfig{
				SrcBucket:     "src",
				SrcFilenames:  tt.src,
				DestBucket:    "dst",
				DestFilenames: tt.dest,
				Copier:        copier,
			})
			if tt.wantErr != (err != nil) {
				t.Errorf("CopyBetweenBuckets, wantErr: %v, got: %v", tt.wantErr, err)
			}
			if tt.wantErr {
				assert.True(t, zErrors.IsLengthMismatchError(err))
				return
			}
			assert.Equal(t, tt.wantMissing, missing)
		})
	}
}

func TestCopyBetweenBucketsProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name        string
		total       int
		wantReports int
	}{
		{name: "single object", total: 1, wantReports: 1},
		{name: "fewer than fifty objects report every item", total: 3, wantReports: 3},
		{name: "one report per percent plus the last item", total: 250, wantReports: 126},
		{name: "exact multiple of one hundred", total: 200, wantReports: 101},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			copier := mock_migration.NewMockObjectCopier(ctrl)
			copier.EXPECT().Copy(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(tt.total)

			names := make([]string, tt.total)
			for i := range names {
				names[i] = fmt.Sprintf("obj-%04d", i)
			}

			var reports []progress.Progress
			missing, err := migration.CopyBetweenBuckets(context.Background(), &migration.CopyConfig{
				SrcBucket:     "src",
				SrcFilenames:  names,
				DestBucket:    "dst",
				DestFilenames: names,
				Copier:        copier,
				Reporter:      progress.ReporterFunc(func(p progress.Progress) { reports = append(reports, p) }),
			})
			require.NoError(t, err)
			assert.Empty(t, missing)
			require.Len(t, reports, tt.wantReports)

			last := reports[len(reports)-1]
			assert.Equal(t, tt.total, last.Done)
			assert.Equal(t, tt.total, last.Total)
			assert.Equal(t, 100, last.Percent)
			for i := 1; i < len(reports); i++ {
				assert.Greater(t, reports[i].Done, reports[i-1].Done)
			}
		})
	}
}

func TestCopyBetweenBucketsCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	copier := mock_migration.NewMockObjectCopier(ctrl)
	copier.EXPECT().Copy(gomock.Any(), path("src", "a"), path("dst", "a")).DoAndReturn(
		func(context.Context, types.ObjectPath, types.ObjectPath) error {
			cancel()
			return nil
		})

	missing, err := migration.CopyBetweenBuckets(ctx, &migration.CopyConfig{
		SrcBucket:     "src",
		SrcFilenames:  []string{"a", "b", "c"},
		DestBucket:    "dst",
		DestFilenames: []string{"a", "b", "c"},
		Copier:        copier,
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"b", "c"}, missing)
}

func TestGsutilCopier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mock_util.NewMockRunner(ctrl)
	copier := migration.NewGsutilCopier(runner, "")

	t.Run("names are passed as separate arguments", func(t *testing.T) {
		runner.EXPECT().Run(gomock.Any(), util.Command{
			Program: "gsutil",
			Args:    []string{"cp", "gs://src/it's here.txt", "gs://dst/copy of it's here.txt"},
		}).Return(&util.Result{}, nil)

		err := copier.Copy(context.Background(), path("src", "it's here.txt"), path("dst", "copy of it's here.txt"))
		assert.NoError(t, err)
	})

	t.Run("non-zero exit is a copy failure carrying stderr", func(t *testing.T) {
		runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(
			&util.Result{Stderr: "CommandException: No URLs matched: gs://src/gone.txt\n", ExitCode: 1},
			errors.New("exit status 1"))

		err := copier.Copy(context.Background(), path("src", "gone.txt"), path("dst", "gone.txt"))
		require.Error(t, err)
		assert.True(t, zErrors.IsCopyFailedError(err))
		assert.Contains(t, err.Error(), "No URLs matched")
	})
}

func TestCopyBetweenBucketsWithGsutilExitCodes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mock_util.NewMockRunner(ctrl)
	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(&util.Result{}, nil),
		runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(&util.Result{ExitCode: 1, Stderr: "No URLs matched"}, errors.New("exit status 1")),
	)

	missing, err := migration.CopyBetweenBuckets(context.Background(), &migration.CopyConfig{
		SrcBucket:     "src",
		SrcFilenames:  []string{"a.txt", "b.txt"},
		DestBucket:    "dst",
		DestFilenames: []string{"a2.txt", "b2.txt"},
		Copier:        migration.NewGsutilCopier(runner, ""),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"b.txt"}, missing)
}

func TestStorageCopier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock_types.NewMockCloudStorageI(ctrl)
	store.EXPECT().CopyFile(gomock.Any(), path("src", "a.txt"), path("dst", "a2.txt")).Return(nil)
	store.EXPECT().CopyFile(gomock.Any(), path("src", "b.txt"), path("dst", "b2.txt")).Return(zErrors.NewFileNoExistError("src", "b.txt"))

	copier := migration.NewStorageCopier(store)
	assert.NoError(t, copier.Copy(context.Background(), path("src", "a.txt"), path("dst", "a2.txt")))

	err := copier.Copy(context.Background(), path("src", "b.txt"), path("dst", "b2.txt"))
	assert.True(t, zErrors.IsFileNotExistError(err))
}

func TestCopyBetweenBucketsWithoutCopier(t *testing.T) {
	missing, err := migration.CopyBetweenBuckets(context.Background(), &migration.CopyConfig{
		SrcBucket:     "src",
		SrcFilenames:  []string{"a.txt"},
		DestBucket:    "dst",
		DestFilenames: []string{"a2.txt"},
	})
	assert.ErrorIs(t, err, migration.ErrNoCopier)
	assert.Nil(t, missing)
}
