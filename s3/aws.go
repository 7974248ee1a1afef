package s3

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	zlogger "github.com/gjutils/gjutil/logger"
	"github.com/gjutils/gjutil/types"
	zErrors "github.com/gjutils/gjutil/zErrors"
)

const (
	DefaultRegion  = "us-east-1"
	listBufferSize = 1000
	maxKeys        = int32(1000)
)

type AwsClient struct {
	region string
	client s3API
}

// GetAwsClient builds a client from the default AWS credential chain.
// A non-empty endpoint switches to path style addressing for S3 compatible
// services.
func GetAwsClient(ctx context.Context, region, endpoint string) (*AwsClient, error) {
	if region == "" {
		region = DefaultRegion
	}

	client, err := getAwsSDKClient(ctx, region, endpoint)
	if err != nil {
		return nil, err
	}

	zlogger.Logger.Info(fmt.Sprintf(
		"Aws client initialized with "+
			"region: %v, "+
			"endpoint: %v", region, endpoint))
	return &AwsClient{region: region, client: client}, nil
}

func getAwsSDKClient(ctx context.Context, region, endpoint string) (*awsS3.Client, error) {
	cfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("configuration error %v region: %v", err, region)
	}

	client := awsS3.NewFromConfig(cfg, func(o *awsS3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return client, nil
}

func (a *AwsClient) Region() string {
	return a.region
}

func (a *AwsClient) BucketExists(ctx context.Context, bucket string) (bool, error) {
	_, err := a.client.HeadBucket(ctx, &awsS3.HeadBucketInput{Bucket: aws.String(bucket)})
	if isNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (a *AwsClient) ListFiles(ctx context.Context, bucket string) (<-chan *types.ObjectMeta, <-chan error) {
	objectMetaChan := make(chan *types.ObjectMeta, listBufferSize)
	errChan := make(chan error, 1)

	go func() {
		defer func() {
			close(objectMetaChan)
			close(errChan)
		}()

		listObjectsInput := &awsS3.ListObjectsV2Input{
			Bucket: aws.String(bucket),
		}

		listObjectsPaginator := awsS3.NewListObjectsV2Paginator(a.client, listObjectsInput, func(o *awsS3.ListObjectsV2PaginatorOptions) {
			o.Limit = maxKeys
		})

		for listObjectsPaginator.HasMorePages() {
			page, err := listObjectsPaginator.NextPage(ctx)
			if err != nil {
				errChan <- err
				return
			}

			for _, obj := range page.Contents {
				select {
				case objectMetaChan <- &types.ObjectMeta{Key: aws.ToString(obj.Key), Size: aws.ToInt64(obj.Size)}:
				case <-ctx.Done():
					errChan <- ctx.Err()
					return
				}
			}
		}
	}()
	return objectMetaChan, errChan
}

func (a *AwsClient) GetFileMetadata(ctx context.Context, bucket, key string) (map[string]string, error) {
	out, err := a.client.HeadObject(ctx, &awsS3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if isNotFound(err) {
		return nil, zErrors.NewFileNoExistError(bucket, key)
	}
	if err != nil {
		return nil, err
	}

	metadata := make(map[string]string, len(out.Metadata))
	for k, v := range out.Metadata {
		metadata[k] = v
	}
	return metadata, nil
}

func (a *AwsClient) CopyFile(ctx context.Context, src, dst types.ObjectPath) error {
	_, err := a.client.CopyObject(ctx, &awsS3.CopyObjectInput{
		Bucket:     aws.String(dst.Bucket),
		Key:        aws.String(dst.Key),
		CopySource: aws.String(copySource(src)),
	})
	if isNotFound(err) {
		return zErrors.NewFileNoExistError(src.Bucket, src.Key)
	}
	return err
}

// copySource is the URL encoded "bucket/key" S3 expects in x-amz-copy-source.
// Each path segment is escaped on its own so prefixes keep their slashes.
func copySource(src types.ObjectPath) string {
	segments := strings.Split(src.Key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return src.Bucket + "/" + strings.Join(segments, "/")
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}

	var notFound *s3types.NotFound
	var noSuchKey *s3types.NoSuchKey
	var noSuchBucket *s3types.NoSuchBucket
	if errors.As(err, &notFound) || errors.As(err, &noSuchKey) || errors.As(err, &noSuchBucket) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey", "NoSuchBucket":
			return true
		}
	}
	return false
}
