package s3

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/gjutils/gjutil/types"
	zErrors "github.com/gjutils/gjutil/zErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 lets each test override only the calls it cares about.
type fakeS3 struct {
	listObjectsV2 func(*awsS3.ListObjectsV2Input) (*awsS3.ListObjectsV2Output, error)
	headBucket    func(*awsS3.HeadBucketInput) (*awsS3.HeadBucketOutput, error)
	headObject    func(*awsS3.HeadObjectInput) (*awsS3.HeadObjectOutput, error)
	copyObject    func(*awsS3.CopyObjectInput) (*awsS3.CopyObjectOutput, error)
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *awsS3.ListObjectsV2Input, _ ...func(*awsS3.Options)) (*awsS3.ListObjectsV2Output, error) {
	return f.listObjectsV2(in)
}

func (f *fakeS3) HeadBucket(_ context.Context, in *awsS3.HeadBucketInput, _ ...func(*awsS3.Options)) (*awsS3.HeadBucketOutput, error) {
	return f.headBucket(in)
}

func (f *fakeS3) HeadObject(_ context.Context, in *awsS3.HeadObjectInput, _ ...func(*awsS3.Options)) (*awsS3.HeadObjectOutput, error) {
	return f.headObject(in)
}

func (f *fakeS3) CopyObject(_ context.Context, in *awsS3.CopyObjectInput, _ ...func(*awsS3.Options)) (*awsS3.CopyObjectOutput, error) {
	return f.copyObject(in)
}

func TestListFiles(t *testing.T) {
	pages := map[string]*awsS3.ListObjectsV2Output{
		"": {
			Contents: []s3types.Object{
				{Key: aws.String("a.txt"), Size: aws.Int64(1)},
				{Key: aws.String("b.txt"), Size: aws.Int64(2)},
			},
			IsTruncated:           aws.Bool(true),
			NextContinuationToken: aws.String("page2"),
		},
		"page2": {
			Contents:    []s3types.Object{{Key: aws.String("c/d.txt"), Size: aws.Int64(3)}},
			IsTruncated: aws.Bool(false),
		},
	}

	client := &AwsClient{client: &fakeS3{
		listObjectsV2: func(in *awsS3.ListObjectsV2Input) (*awsS3.ListObjectsV2Output, error) {
			assert.Equal(t, "photos", aws.ToString(in.Bucket))
			return pages[aws.ToString(in.ContinuationToken)], nil
		},
	}}

	objCh, errCh := client.ListFiles(context.Background(), "photos")
	var got []types.ObjectMeta
	for obj := range objCh {
		got = append(got, *obj)
	}
	for err := range errCh {
		require.NoError(t, err)
	}

	assert.Equal(t, []types.ObjectMeta{
		{Key: "a.txt", Size: 1},
		{Key: "b.txt", Size: 2},
		{Key: "c/d.txt", Size: 3},
	}, got)
}

func TestListFilesError(t *testing.T) {
	client := &AwsClient{client: &fakeS3{
		listObjectsV2: func(*awsS3.ListObjectsV2Input) (*awsS3.ListObjectsV2Output, error) {
			return nil, errors.New("access denied")
		},
	}}

	objCh, errCh := client.ListFiles(context.Background(), "photos")
	for range objCh {
		t.Fatal("no objects expected")
	}
	err := <-errCh
	assert.EqualError(t, err, "access denied")
}

func TestBucketExists(t *testing.T) {
	client := &AwsClient{client: &fakeS3{
		headBucket: func(in *awsS3.HeadBucketInput) (*awsS3.HeadBucketOutput, error) {
			if aws.ToString(in.Bucket) == "photos" {
				return &awsS3.HeadBucketOutput{}, nil
			}
			return nil, &s3types.NotFound{}
		},
	}}

	exists, err := client.BucketExists(context.Background(), "photos")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = client.BucketExists(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGetFileMetadata(t *testing.T) {
	client := &AwsClient{client: &fakeS3{
		headObject: func(in *awsS3.HeadObjectInput) (*awsS3.HeadObjectOutput, error) {
			switch aws.ToString(in.Key) {
			case "a.jpg":
				return &awsS3.HeadObjectOutput{Metadata: map[string]string{"camera": "x100"}}, nil
			case "plain.jpg":
				return &awsS3.HeadObjectOutput{}, nil
			default:
				return nil, &smithy.GenericAPIError{Code: "NotFound", Message: "Not Found"}
			}
		},
	}}
	ctx := context.Background()

	metadata, err := client.GetFileMetadata(ctx, "photos", "a.jpg")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"camera": "x100"}, metadata)

	metadata, err = client.GetFileMetadata(ctx, "photos", "plain.jpg")
	require.NoError(t, err)
	assert.NotNil(t, metadata)

	_, err = client.GetFileMetadata(ctx, "photos", "missing.jpg")
	assert.True(t, zErrors.IsFileNotExistError(err), "got %v", err)
}

func TestCopyFile(t *testing.T) {
	var got *awsS3.CopyObjectInput
	client := &AwsClient{client: &fakeS3{
		copyObject: func(in *awsS3.CopyObjectInput) (*awsS3.CopyObjectOutput, error) {
			if aws.ToString(in.CopySource) == "src/gone.txt" {
				return nil, &s3types.NoSuchKey{}
			}
			got = in
			return &awsS3.CopyObjectOutput{}, nil
		},
	}}
	ctx := context.Background()

	err := client.CopyFile(ctx, types.ObjectPath{Bucket: "src", Key: "a.txt"}, types.ObjectPath{Bucket: "dst", Key: "a2.txt"})
	require.NoError(t, err)
	assert.Equal(t, "dst", aws.ToString(got.Bucket))
	assert.Equal(t, "a2.txt", aws.ToString(got.Key))
	assert.Equal(t, "src/a.txt", aws.ToString(got.CopySource))

	err = client.CopyFile(ctx, types.ObjectPath{Bucket: "src", Key: "reports/2024/report 100%.txt"}, types.ObjectPath{Bucket: "dst", Key: "r.txt"})
	require.NoError(t, err)
	assert.Equal(t, "src/reports/2024/report%20100%25.txt", aws.ToString(got.CopySource))

	err = client.CopyFile(ctx, types.ObjectPath{Bucket: "src", Key: "gone.txt"}, types.ObjectPath{Bucket: "dst", Key: "gone.txt"})
	assert.True(t, zErrors.IsFileNotExistError(err), "got %v", err)
}

func TestIsNotFound(t *testing.T) {
	assert.False(t, isNotFound(nil))
	assert.False(t, isNotFound(errors.New("timeout")))
	assert.True(t, isNotFound(&s3types.NoSuchBucket{}))
	assert.True(t, isNotFound(&smithy.GenericAPIError{Code: "NoSuchKey"}))
	assert.False(t, isNotFound(&smithy.GenericAPIError{Code: "AccessDenied"}))
}

func TestCopySource(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "a.txt", want: "src/a.txt"},
		{key: "dir/sub/a.txt", want: "src/dir/sub/a.txt"},
		{key: "report 100%.txt", want: "src/report%20100%25.txt"},
		{key: "a%41.txt", want: "src/a%2541.txt"},
		{key: "q?x=1.txt", want: "src/q%3Fx=1.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := copySource(types.ObjectPath{Bucket: "src", Key: tt.key})
			assert.Equal(t, tt.want, got)

			decoded, err := url.PathUnescape(got)
			require.NoError(t, err)
			assert.Equal(t, "src/"+tt.key, decoded)
		})
	}
}
