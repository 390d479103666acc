package iodataset

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/config"
	"github.com/lucabelezal/pokedex-bff-sub000/pkg/dataset"
)

// objectGetter is the part of *s3.Client the source needs.
type objectGetter interface {
	GetObject(
		ctx context.Context,
		params *s3.GetObjectInput,
		optFns ...func(*s3.Options),
	) (*s3.GetObjectOutput, error)
}

type s3Source struct {
	client objectGetter
	bucket string
	prefix string
}

// NewS3Source creates a Source for an "s3://bucket/prefix" parent.
// Credentials come from the import settings when both keys are given,
// otherwise from the default AWS credential chain.
func NewS3Source(
	ctx context.Context,
	cfg config.ImportConfig,
) (dataset.Source, error) {
	bucket, prefix, err := parseS3URL(cfg.Parent)
	if err != nil {
		return nil, SourceConfigError(cfg.Parent, err)
	}

	region := cfg.S3Region
	if region == "" {
		region = "us-east-1"
	}
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(region),
	}
	if cfg.S3AccessKey != "" && cfg.S3SecretKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.S3AccessKey, cfg.S3SecretKey, "",
			),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, SourceConfigError(cfg.Parent, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3PathStyle {
			o.UsePathStyle = true
		}
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		}
	})
	return &s3Source{client: client, bucket: bucket, prefix: prefix}, nil
}

func (s *s3Source) Open(
	ctx context.Context,
	name string,
) (io.ReadCloser, error) {
	key := s.key(name)
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}

func (s *s3Source) Location(name string) string {
	return "s3://" + s.bucket + "/" + s.key(name)
}

func (s *s3Source) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return path.Join(s.prefix, name)
}

// parseS3URL splits "s3://bucket/some/prefix" into bucket and prefix.
func parseS3URL(u string) (string, string, error) {
	rest, ok := strings.CutPrefix(u, "s3://")
	if !ok {
		return "", "", fmt.Errorf("not an s3 url: %s", u)
	}
	bucket, prefix, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", fmt.Errorf("s3 bucket is missing in %s", u)
	}
	return bucket, strings.Trim(prefix, "/"), nil
}
