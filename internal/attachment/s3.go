package attachment

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Config points the store at an S3-compatible endpoint (AWS or MinIO).
type S3Config struct {
	Region       string
	Bucket       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

// S3Store keeps attachments in an object bucket under date-partitioned
// keys and references them by bucket URL.
type S3Store struct {
	client *s3.Client
	cfg    S3Config
	limits Limits
}

func NewS3Store(ctx context.Context, cfg S3Config, limits Limits) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{client: client, cfg: cfg, limits: limits}, nil
}

func (s *S3Store) Save(ctx context.Context, r io.Reader, filename string, declaredType string) (string, error) {
	data, err := s.limits.readChecked(r, declaredType)
	if err != nil {
		return "", err
	}

	key := storageKey(filename)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(declaredType),
	})
	if err != nil {
		return "", fmt.Errorf("put attachment %q: %w", key, err)
	}

	return fmt.Sprintf("%s/%s/%s", s.cfg.BaseEndpoint, s.cfg.Bucket, key), nil
}

func storageKey(filename string) string {
	d := time.Now().UTC()
	return fmt.Sprintf("employees/%d/%02d/%02d/%s%s", d.Year(), d.Month(), d.Day(), uuid.New(), safeExtension(filename))
}
