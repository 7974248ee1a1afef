package cmd

import (
	"context"
	"fmt"

	"github.com/gjutils/gjutil/gcs"
	"github.com/gjutils/gjutil/model"
	"github.com/gjutils/gjutil/s3"
	"github.com/gjutils/gjutil/types"
	"github.com/gjutils/gjutil/util"
	zErrors "github.com/gjutils/gjutil/zErrors"
	"github.com/spf13/cobra"
)

var accessKey, secretKey, awsCredPath, region string

// addS3Flags registers the aws credential flags on cmd.
func addS3Flags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&accessKey, "access-key", "", "access-key of aws")
	cmd.Flags().StringVar(&secretKey, "secret-key", "", "secret-key of aws")
	cmd.Flags().StringVar(&awsCredPath, "aws-cred-path", "", "File Path to aws credentials")
	cmd.Flags().StringVar(&region, "region", "", "region of s3 buckets (overrides config)")
}

// setAwsCredentials exports keys from flags, the environment or the
// credentials file. Without any of them the sdk falls back to its default
// chain.
func setAwsCredentials() error {
	if accessKey == "" || secretKey == "" {
		if accessKey, secretKey = util.GetAwsCredentialsFromEnv(); accessKey == "" || secretKey == "" {
			if awsCredPath == "" {
				return nil
			}
			if accessKey, secretKey = util.GetAwsCredentialsFromFile(awsCredPath); accessKey == "" || secretKey == "" {
				return fmt.Errorf("empty access or secret key in %v", awsCredPath)
			}
		}
	}

	return util.SetAwsEnvCredentials(accessKey, secretKey)
}

// newCloudStorage opens the backend named in cfg. The returned func releases
// the client.
func newCloudStorage(ctx context.Context, cfg model.AppConfig) (types.CloudStorageI, func(), error) {
	switch cfg.Backend {
	case model.BackendGCS:
		client, err := gcs.GetGcsClient(ctx, gcs.Options{
			CredentialsFile: cfg.GCS.CredentialsFile,
			AccessToken:     cfg.GCS.AccessToken,
			Endpoint:        cfg.GCS.Endpoint,
		})
		if err != nil {
			return nil, nil, err
		}
		return client, func() { _ = client.Close() }, nil

	case model.BackendS3:
		if err := setAwsCredentials(); err != nil {
			return nil, nil, err
		}
		r := cfg.S3.Region
		if region != "" {
			r = region
		}
		client, err := s3.GetAwsClient(ctx, r, cfg.S3.Endpoint)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil
	}

	return nil, nil, zErrors.NewUnknownBackendError(cfg.Backend)
}
