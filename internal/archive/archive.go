package archive

import (
	"context"
	"fmt"
	"strings"

	"app/internal/config"
	"app/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsmiddleware "github.com/aws/smithy-go/middleware"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// Archiver uploads delivered reading content to S3-compatible object
// storage so users can re-download it later.
type Archiver struct {
	client *s3.Client
	bucket string
	logger zerolog.Logger
}

// New builds an Archiver against the configured S3-compatible endpoint.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Archiver, error) {
	s3Config, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")),
		awsconfig.WithAPIOptions([]func(*awsmiddleware.Stack) error{removeDisableGzip()}),
	)
	if err != nil {
		return nil, fmt.Errorf("load S3 config: %w", err)
	}
	client := s3.NewFromConfig(s3Config, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3URL)
		o.UsePathStyle = true
	})
	return &Archiver{
		client: client,
		bucket: cfg.S3Bucket,
		logger: logger.With().Str("component", "Archiver").Logger(),
	}, nil
}

// ArchiveReading uploads the reading's markdown content and returns the
// object key.
func (a *Archiver) ArchiveReading(ctx context.Context, reading *model.Reading) (string, error) {
	key := fmt.Sprintf("%s/%s.md", reading.UserID, reading.ID)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(reading.Content),
		ContentType: aws.String("text/markdown"),
	})
	if err != nil {
		return "", fmt.Errorf("upload reading %s: %w", reading.ID, err)
	}
	a.logger.Debug().Str("key", key).Msg("Archived reading content")
	return key, nil
}

// removeDisableGzip is a workaround for S3 signature errors with some S3-compatible services.
// See: https://github.com/supabase/storage/issues/577
func removeDisableGzip() func(*awsmiddleware.Stack) error {
	return func(stack *awsmiddleware.Stack) error {
		if _, ok := stack.Finalize.Get("DisableAcceptEncodingGzip"); ok {
			_, err := stack.Finalize.Remove("DisableAcceptEncodingGzip")
			return err
		}
		return nil
	}
}
