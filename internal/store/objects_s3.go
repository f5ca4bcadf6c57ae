// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Package-level hooks over the AWS SDK so tests can replace them.
var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
)

// s3ObjectStorage presigns PUT requests against an S3-compatible bucket
// (AWS S3, MinIO). Uploads go straight from the client to the bucket.
type s3ObjectStorage struct {
	presignClient *s3.PresignClient
	bucket        string
	publicURL     string
	ttl           time.Duration
	logger        *logger.Logger
}

// NewS3ObjectStorage builds an [ObjectStorage] for cfg. When no bucket is
// configured every call fails with [ErrObjectStorageDisabled].
func NewS3ObjectStorage(ctx context.Context, cfg config.Objects, log *logger.Logger) (ObjectStorage, error) {
	if !cfg.Enabled() {
		log.Info().Str("func", "NewS3ObjectStorage").Msg("object storage disabled")
		return disabledObjectStorage{}, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3ObjectStorage{
		presignClient: s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		publicURL:     strings.TrimRight(cfg.PublicURL, "/"),
		ttl:           cfg.PresignTTL,
		logger:        log,
	}, nil
}

// PresignPut returns a URL the client can PUT an object of contentType to.
func (s *s3ObjectStorage) PresignPut(ctx context.Context, key, contentType string) (models.UploadURL, error) {
	req, err := presignPutObject(s.presignClient, ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3ObjectStorage.PresignPut").Str("key", key).Msg("error presigning upload")
		return models.UploadURL{}, fmt.Errorf("%w: %w", ErrPresigningURL, err)
	}

	return models.UploadURL{
		Key:       key,
		URL:       req.URL,
		PublicURL: s.publicURL + "/" + key,
	}, nil
}

type disabledObjectStorage struct{}

func (disabledObjectStorage) PresignPut(context.Context, string, string) (models.UploadURL, error) {
	return models.UploadURL{}, ErrObjectStorageDisabled
}
