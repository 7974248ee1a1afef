// Package gcs implements types.CloudStorageI on Google Cloud Storage.
//
// Credentials are resolved in this order: an explicit OAuth2 access token,
// a service account key file, then Application Default Credentials
// (GOOGLE_APPLICATION_CREDENTIALS, gcloud auth, metadata server).
package gcs

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"cloud.google.com/go/storage"
	zlogger "github.com/gjutils/gjutil/logger"
	"github.com/gjutils/gjutil/types"
	zErrors "github.com/gjutils/gjutil/zErrors"
	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

const listBufferSize = 1000

type Options struct {
	CredentialsFile string
	AccessToken     string
	// Endpoint overrides the JSON API endpoint, e.g. for an emulator.
	Endpoint string
}

type GcsClient struct {
	client *storage.Client
}

func GetGcsClient(ctx context.Context, opts Options) (*GcsClient, error) {
	client, err := storage.NewClient(ctx, clientOptions(opts)...)
	if err != nil {
		return nil, fmt.Errorf("creating GCS client: %w", err)
	}

	zlogger.Logger.Info(fmt.Sprintf(
		"GCS client initialized with "+
			"credentialsFile: %v, "+
			"accessToken: %v, "+
			"endpoint: %v", opts.CredentialsFile, opts.AccessToken != "", opts.Endpoint))

	return &GcsClient{client: client}, nil
}

// NewGcsClientWithClient wraps an already configured storage client.
func NewGcsClientWithClient(client *storage.Client) *GcsClient {
	return &GcsClient{client: client}
}

func clientOptions(opts Options) []option.ClientOption {
	var clientOpts []option.ClientOption
	switch {
	case opts.AccessToken != "":
		tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.AccessToken})
		clientOpts = append(clientOpts, option.WithTokenSource(tokenSource))
	case opts.CredentialsFile != "":
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsFile))
	}
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint))
	}
	return clientOpts
}

func (g *GcsClient) Close() error {
	return g.client.Close()
}

func (g *GcsClient) BucketExists(ctx context.Context, bucket string) (bool, error) {
	_, err := g.client.Bucket(bucket).Attrs(ctx)
	if errors.Is(err, storage.ErrBucketNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (g *GcsClient) ListFiles(ctx context.Context, bucket string) (<-chan *types.ObjectMeta, <-chan error) {
	objectMetaChan := make(chan *types.ObjectMeta, listBufferSize)
	errChan := make(chan error, 1)

	go func() {
		defer func() {
			close(objectMetaChan)
			close(errChan)
		}()

		it := g.client.Bucket(bucket).Objects(ctx, nil)
		for {
			attrs, err := it.Next()
			if errors.Is(err, iterator.Done) {
				return
			}
			if err != nil {
				errChan <- err
				return
			}

			select {
			case objectMetaChan <- &types.ObjectMeta{Key: attrs.Name, Size: attrs.Size}:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}
		}
	}()
	return objectMetaChan, errChan
}

func (g *GcsClient) GetFileMetadata(ctx context.Context, bucket, key string) (map[string]string, error) {
	attrs, err := g.client.Bucket(bucket).Object(key).Attrs(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, zErrors.NewFileNoExistError(bucket, key)
	}
	if err != nil {
		return nil, err
	}

	metadata := make(map[string]string, len(attrs.Metadata))
	for k, v := range attrs.Metadata {
		metadata[k] = v
	}
	return metadata, nil
}

func (g *GcsClient) CopyFile(ctx context.Context, src, dst types.ObjectPath) error {
	srcObj := g.client.Bucket(src.Bucket).Object(src.Key)
	dstObj := g.client.Bucket(dst.Bucket).Object(dst.Key)

	_, err := dstObj.CopierFrom(srcObj).Run(ctx)
	if isNotFound(err) {
		return zErrors.NewFileNoExistError(src.Bucket, src.Key)
	}
	return err
}

// isNotFound also covers raw 404s, which rewrite calls do not translate to
// storage.ErrObjectNotExist.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, storage.ErrObjectNotExist) {
		return true
	}
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}
