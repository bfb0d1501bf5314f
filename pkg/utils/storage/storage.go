package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"digitalmetrics_backend/pkg/config"
	imageutil "digitalmetrics_backend/pkg/utils/image"
)

var settings *config.StorageConfig

// Init hands the package its R2 credentials and CDN base. The server calls
// this once after loading configuration; when skipped, the values come from
// the environment on first use.
func Init(cfg config.StorageConfig) {
	settings = &cfg
}

func conf() config.StorageConfig {
	if settings == nil {
		Init(config.Load().Storage)
	}
	return *settings
}

func getS3Client() (*s3.Client, error) {
	storageCfg := conf()

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			storageCfg.AccessKey,
			storageCfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %v", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", storageCfg.AccountID))
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return client, nil
}

type UploadConfig struct {
	File       *multipart.FileHeader
	ClientName string
}

// UploadFeedbackImage optimizes the image and stores it under a URL-safe key
// derived from the client name. Returns the public CDN URL.
func UploadFeedbackImage(cfg UploadConfig) (string, error) {
	buf, contentType, err := imageutil.ProcessImage(cfg.File)
	if err != nil {
		return "", err
	}

	safeName := slug.Make(cfg.ClientName)
	ext := filepath.Ext(cfg.File.Filename)
	uniqueID := fmt.Sprintf("%d-%s", time.Now().UnixNano(), uuid.New().String())
	objectKey := filepath.Join("feedback", safeName, uniqueID+ext)

	client, err := getS3Client()
	if err != nil {
		return "", err
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(conf().Bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String(contentType),
	}

	_, err = client.PutObject(context.TODO(), input)
	if err != nil {
		return "", fmt.Errorf("could not upload file to storage: %v", err)
	}

	return fmt.Sprintf("%s/%s", cdnBase(), objectKey), nil
}

func DeleteImage(fullURL string) error {
	objectKey := getObjectKeyFromURL(fullURL)

	client, err := getS3Client()
	if err != nil {
		return err
	}

	input := &s3.DeleteObjectInput{
		Bucket: aws.String(conf().Bucket),
		Key:    aws.String(objectKey),
	}

	_, err = client.DeleteObject(context.TODO(), input)
	if err != nil {
		return fmt.Errorf("could not delete file from storage: %v", err)
	}

	return nil
}

func cdnBase() string {
	return strings.TrimSuffix(conf().CDNBase, "/")
}

func getObjectKeyFromURL(url string) string {
	return strings.TrimPrefix(url, cdnBase()+"/")
}
