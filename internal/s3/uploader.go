package s3

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"fleet-service/internal/config"
)

type Uploader struct {
	client           *s3.Client
	bucket           string
	region           string
	cloudFrontDomain string
}

func NewUploader(cfg config.S3Config) (*Uploader, error) {
	sdkConfig, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	return &Uploader{
		client:           s3.NewFromConfig(sdkConfig),
		bucket:           cfg.Bucket,
		region:           cfg.Region,
		cloudFrontDomain: cfg.CloudFrontDomain,
	}, nil
}

// UploadFile stores the object and returns its public URL, preferring the
// CloudFront domain when one is configured.
func (u *Uploader) UploadFile(ctx context.Context, file io.Reader, objectKey, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(objectKey),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload to S3: %w", err)
	}

	if u.cloudFrontDomain != "" {
		return fmt.Sprintf("https://%s/%s", u.cloudFrontDomain, objectKey), nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, objectKey), nil
}

// DocumentKey namespaces uploads per owner so replacements never clobber
// another entity's files.
func DocumentKey(ownerType, ownerID, documentType string) string {
	return fmt.Sprintf("documents/%s/%s/%s-%d-%s",
		ownerType, ownerID, documentType, time.Now().Unix(), uuid.NewString()[:8])
}
