package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"leasehold/config"
	"leasehold/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ObjectPutter is the slice of the S3 client the photo store needs.
type ObjectPutter interface {
	PutObject(
		ctx context.Context,
		params *s3.PutObjectInput,
		optFns ...func(*s3.Options),
	) (*s3.PutObjectOutput, error)
}

type PhotoUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type PhotoStorageService struct {
	client        ObjectPutter
	bucket        string
	region        string
	publicBaseURL string
	log           logger.Logger
}

// NewPhotoStorageService connects to S3 or an S3-compatible endpoint. With no
// bucket configured the service is returned disabled and uploads fail with a
// validation error.
func NewPhotoStorageService(ctx context.Context, cfg config.Config) (*PhotoStorageService, error) {
	log := logger.New("photoStorageService")

	service := &PhotoStorageService{
		bucket:        cfg.S3Bucket,
		region:        cfg.S3Region,
		publicBaseURL: strings.TrimRight(cfg.S3PublicBaseURL, "/"),
		log:           log,
	}

	if cfg.S3Bucket == "" {
		log.Warn("S3_BUCKET not set, photo uploads are disabled")
		return service, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.S3Region))
	if err != nil {
		return nil, log.Err("failed to load aws config", err)
	}

	service.client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return service, nil
}

func NewPhotoStorageServiceWithClient(
	client ObjectPutter,
	bucket, region, publicBaseURL string,
) *PhotoStorageService {
	return &PhotoStorageService{
		client:        client,
		bucket:        bucket,
		region:        region,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		log:           logger.New("photoStorageService"),
	}
}

func (s *PhotoStorageService) Enabled() bool {
	return s != nil && s.client != nil
}

// Upload stores the photos one at a time in the given order and returns
// their public URLs in the same order. The first failure aborts the batch.
func (s *PhotoStorageService) Upload(
	ctx context.Context,
	listingID uuid.UUID,
	photos []PhotoUpload,
) ([]string, error) {
	if !s.Enabled() {
		return nil, types.Validation("photo storage is not configured")
	}
	if len(photos) == 0 {
		return nil, types.Validation("at least one photo is required")
	}

	log := s.log.TraceFromContext(ctx).Function("Upload")

	urls := make([]string, 0, len(photos))
	for i, photo := range photos {
		key := s.objectKey(listingID, photo.Filename)

		input := &s3.PutObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
			Body:   photo.Body,
		}
		if photo.ContentType != "" {
			input.ContentType = aws.String(photo.ContentType)
		}
		if photo.Size > 0 {
			input.ContentLength = aws.Int64(photo.Size)
		}

		if _, err := s.client.PutObject(ctx, input); err != nil {
			log.Er("failed to upload photo", err, "listingID", listingID, "index", i, "key", key)
			return nil, types.Persistence(err)
		}

		urls = append(urls, s.publicURL(key))
	}

	log.Info("Uploaded listing photos", "listingID", listingID, "count", len(urls))
	return urls, nil
}

func (s *PhotoStorageService) objectKey(listingID uuid.UUID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("listings/%s/%s%s", listingID, uuid.NewString(), ext)
}

func (s *PhotoStorageService) publicURL(key string) string {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}
