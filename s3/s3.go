package s3

import (
	"context"

	awsS3 "github.com/aws/aws-sdk-go-v2/service/s3"
)

// s3API is the part of the S3 client AwsClient needs.
type s3API interface {
	awsS3.ListObjectsV2APIClient
	HeadBucket(ctx context.Context, params *awsS3.HeadBucketInput, optFns ...func(*awsS3.Options)) (*awsS3.HeadBucketOutput, error)
	HeadObject(ctx context.Context, params *awsS3.HeadObjectInput, optFns ...func(*awsS3.Options)) (*awsS3.HeadObjectOutput, error)
	CopyObject(ctx context.Context, params *awsS3.CopyObjectInput, optFns ...func(*awsS3.Options)) (*awsS3.CopyObjectOutput, error)
}
