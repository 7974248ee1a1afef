package errors

import (
	goerrors "errors"
	"fmt"

	zerror "github.com/0chain/errors"
)

const (
	FileNoExistErrCode    = "file_no_exist"
	BucketNoExistErrCode  = "bucket_no_exist"
	MountFailedErrCode    = "mount_failed"
	AlreadyMountedErrCode = "already_mounted"
	UnmountFailedErrCode  = "unmount_failed"
	CopyFailedErrCode     = "copy_failed"
	LengthMismatchErrCode = "length_mismatch"
	UnknownBackendErrCode = "unknown_backend"
	ToolNotFoundErrCode   = "tool_not_found"
)

func NewFileNoExistError(bucket, name string) error {
	return zerror.New(FileNoExistErrCode, fmt.Sprintf("%s/%s does not exist", bucket, name))
}

func NewBucketNoExistError(bucket string) error {
	return zerror.New(BucketNoExistErrCode, fmt.Sprintf("bucket %s does not exist", bucket))
}

func NewMountFailedError(bucket, detail string) error {
	return zerror.New(MountFailedErrCode, fmt.Sprintf("mounting %s: %s", bucket, detail))
}

// NewAlreadyMountedError is returned when the mount helper stops with EOF,
// which is what gcsfuse prints when the path is already a mount point.
func NewAlreadyMountedError(localPath, detail string) error {
	return zerror.New(AlreadyMountedErrCode, fmt.Sprintf("%s: %s (bucket already mounted in place?)", localPath, detail))
}

func NewUnmountFailedError(directory string) error {
	return zerror.New(UnmountFailedErrCode, fmt.Sprintf("unable to un-mount %s", directory))
}

func NewCopyFailedError(src, dst, detail string) error {
	return zerror.New(CopyFailedErrCode, fmt.Sprintf("%s -> %s: %s", src, dst, detail))
}

func NewLengthMismatchError(srcCount, destCount int) error {
	return zerror.New(LengthMismatchErrCode, fmt.Sprintf("got %d source names and %d destination names", srcCount, destCount))
}

func NewUnknownBackendError(backend string) error {
	return zerror.New(UnknownBackendErrCode, fmt.Sprintf("unknown storage backend %q", backend))
}

func NewToolNotFoundError(program string) error {
	return zerror.New(ToolNotFoundErrCode, fmt.Sprintf("%s not found in PATH", program))
}

// Code returns the error code carried by err or by any error it wraps.
func Code(err error) string {
	var zerr *zerror.Error
	if goerrors.As(err, &zerr) {
		return zerr.Code
	}
	return ""
}

func hasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	return Code(err) == code
}

func IsFileNotExistError(err error) bool {
	return hasCode(err, FileNoExistErrCode)
}

func IsBucketNotExistError(err error) bool {
	return hasCode(err, BucketNoExistErrCode)
}

func IsMountFailedError(err error) bool {
	return hasCode(err, MountFailedErrCode)
}

func IsAlreadyMountedError(err error) bool {
	return hasCode(err, AlreadyMountedErrCode)
}

func IsUnmountFailedError(err error) bool {
	return hasCode(err, UnmountFailedErrCode)
}

func IsCopyFailedError(err error) bool {
	return hasCode(err, CopyFailedErrCode)
}

func IsLengthMismatchError(err error) bool {
	return hasCode(err, LengthMismatchErrCode)
}

func IsUnknownBackendError(err error) bool {
	return hasCode(err, UnknownBackendErrCode)
}

func IsToolNotFoundError(err error) bool {
	return hasCode(err, ToolNotFoundErrCode)
}
