// Package storage hands out presigned object-storage URLs for portfolio
// assets (project cover images and the resume). Assets never flow through
// the API process; clients upload and download directly against S3.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	sc "github.com/ganeshpodishetti/portfolio-api/internal/server/config"
)

// presignTTL is how long a handed-out URL stays usable.
const presignTTL = 15 * time.Minute

// Seams for testing the presign flow without AWS.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// AssetStorage issues presigned PUT/GET URLs against the configured bucket.
type AssetStorage struct {
	config *sc.Config
}

func NewAssetStorage(config *sc.Config) *AssetStorage {
	return &AssetStorage{config: config}
}

// ProjectImageKey builds the canonical storage key for a project cover image.
func ProjectImageKey(userID, projectID uuid.UUID) string {
	return fmt.Sprintf("users/%s/projects/%s", userID, projectID)
}

// ResumeKey builds the canonical storage key for a user's resume document.
func ResumeKey(userID uuid.UUID) string {
	return fmt.Sprintf("users/%s/resume", userID)
}

func (s *AssetStorage) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3AccessKey,
			s.config.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// PresignedPutURL returns a URL the client can PUT the object at key to.
func (s *AssetStorage) PresignedPutURL(ctx context.Context, key string) (string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", fmt.Errorf("presigning put: %w", err)
	}
	return req.URL, nil
}

// PresignedGetURL returns a URL the object at key can be fetched from.
func (s *AssetStorage) PresignedGetURL(ctx context.Context, key string) (string, error) {
	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.config.S3Bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return "", fmt.Errorf("presigning get: %w", err)
	}
	return req.URL, nil
}
