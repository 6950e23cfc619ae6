package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"petcare/config"
	"petcare/infras/otel"
	"petcare/shared/constant"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

// R2 and MinIO ignore the region but the SDK refuses to sign without one.
const signingRegion = "auto"

// S3 stores objects under directory/fileName. An empty bucket name means the configured bucket.
type S3 interface {
	UploadFileBytes(ctx context.Context, bucketName, directory, fileName, contentType string, fileData []byte) (url string, err error)
	DeleteFile(ctx context.Context, bucketName, directory, objectName string) error
}

type objectStore struct {
	client        *s3.Client
	defaultBucket string
	publicDomain  string
	apiEndpoint   string
	otel          otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) S3 {
	settings := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithRegion(signingRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, ""),
		),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to load object storage configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(opts *s3.Options) {
		opts.UsePathStyle = true

		if settings.APIEndpoint != "" {
			opts.BaseEndpoint = aws.String(settings.APIEndpoint)
		}
	})

	return &objectStore{
		client:        client,
		defaultBucket: settings.BucketName,
		publicDomain:  strings.TrimSuffix(settings.PublicDomain, "/"),
		apiEndpoint:   strings.TrimSuffix(settings.APIEndpoint, "/"),
		otel:          otl,
	}
}

func (store *objectStore) start(ctx context.Context, operation, bucket, key string) (context.Context, otel.Scope) {
	ctx, scope := store.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+"."+operation)
	scope.SetAttributes(map[string]any{
		"s3.bucket": bucket,
		"s3.key":    key,
	})

	return ctx, scope
}

func (store *objectStore) UploadFileBytes(ctx context.Context, bucketName, directory, fileName, contentType string, fileData []byte) (url string, err error) {
	bucket, key := store.resolve(bucketName), path.Join(directory, fileName)

	ctx, scope := store.start(ctx, "UploadFileBytes", bucket, key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = store.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileData),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileData))),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	return store.objectURL(bucket, key), nil
}

func (store *objectStore) DeleteFile(ctx context.Context, bucketName, directory, objectName string) (err error) {
	bucket, key := store.resolve(bucketName), path.Join(directory, objectName)

	ctx, scope := store.start(ctx, "DeleteFile", bucket, key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = store.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("delete object %s: %w", key, err)
	}

	return nil
}

func (store *objectStore) resolve(bucketName string) string {
	if bucketName == "" {
		return store.defaultBucket
	}

	return bucketName
}

// objectURL uses the public domain when one is configured, otherwise the path-style API URL.
func (store *objectStore) objectURL(bucket, key string) string {
	if store.publicDomain != "" {
		return store.publicDomain + "/" + key
	}

	return store.apiEndpoint + "/" + bucket + "/" + key
}
