package types

import (
	"context"
	"fmt"
)

// ObjectMeta key: object key, size: size of object in bytes
type ObjectMeta struct {
	Key  string
	Size int64
}

// ObjectPath names one object inside one bucket.
type ObjectPath struct {
	Bucket string
	Key    string
}

// URI renders the path as scheme://bucket/key, e.g. gs://photos/2021/a.jpg.
func (p ObjectPath) URI(scheme string) string {
	return fmt.Sprintf("%s://%s/%s", scheme, p.Bucket, p.Key)
}

func (p ObjectPath) String() string {
	return p.Bucket + "/" + p.Key
}

//go:generate mockgen -destination mocks/mock_types.go -package mock_types github.com/gjutils/gjutil/types CloudStorageI
type CloudStorageI interface {
	// BucketExists reports whether bucket is visible with the current credentials.
	BucketExists(ctx context.Context, bucket string) (bool, error)
	// ListFiles streams every object in bucket. The object channel is closed
	// when listing ends; at most one error is sent on the error channel.
	ListFiles(ctx context.Context, bucket string) (<-chan *ObjectMeta, <-chan error)
	// GetFileMetadata returns the user metadata attached to one object.
	GetFileMetadata(ctx context.Context, bucket, key string) (map[string]string, error)
	// CopyFile performs a server side copy of src to dst.
	CopyFile(ctx context.Context, src, dst ObjectPath) error
}
