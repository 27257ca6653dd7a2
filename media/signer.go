// Package media turns stored audio object keys into URLs a client can play.
package media

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const DefaultURLExpiry = time.Hour

type Signer interface {
	AudioURL(ctx context.Context, key string) (string, error)
}

// StaticSigner hands keys back untouched, optionally under a public base URL.
type StaticSigner struct {
	BaseURL string
}

func (s StaticSigner) AudioURL(_ context.Context, key string) (string, error) {
	if key == "" || s.BaseURL == "" || isAbsolute(key) {
		return key, nil
	}
	return fmt.Sprintf("%s/%s", strings.TrimRight(s.BaseURL, "/"), strings.TrimLeft(key, "/")), nil
}

// R2Signer presigns GET requests for objects in an S3-compatible bucket.
type R2Signer struct {
	presigner *s3.PresignClient
	bucket    string
	expiry    time.Duration
}

func NewR2Signer(client *s3.Client, bucket string, expiry time.Duration) *R2Signer {
	if expiry <= 0 {
		expiry = DefaultURLExpiry
	}
	return &R2Signer{
		presigner: s3.NewPresignClient(client),
		bucket:    bucket,
		expiry:    expiry,
	}
}

func (s *R2Signer) AudioURL(ctx context.Context, key string) (string, error) {
	if key == "" || isAbsolute(key) {
		return key, nil
	}
	input := &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}
	req, err := s.presigner.PresignGetObject(ctx, input, func(opts *s3.PresignOptions) {
		opts.Expires = s.expiry
	})
	if err != nil {
		return "", fmt.Errorf("presign %s: %w", key, err)
	}
	return req.URL, nil
}

func isAbsolute(key string) bool {
	return strings.HasPrefix(key, "http://") || strings.HasPrefix(key, "https://")
}
