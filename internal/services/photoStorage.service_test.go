package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"leasehold/internal/types"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	keys   []string
	failAt int
}

func (f *fakePutter) PutObject(
	_ context.Context,
	params *s3.PutObjectInput,
	_ ...func(*s3.Options),
) (*s3.PutObjectOutput, error) {
	if f.failAt >= 0 && len(f.keys) == f.failAt {
		return nil, errors.New("access denied")
	}
	f.keys = append(f.keys, aws.ToString(params.Key))
	return &s3.PutObjectOutput{}, nil
}

func uploads(names ...string) []PhotoUpload {
	photos := make([]PhotoUpload, 0, len(names))
	for _, name := range names {
		photos = append(photos, PhotoUpload{
			Filename:    name,
			ContentType: "image/jpeg",
			Body:        strings.NewReader("jpeg bytes"),
		})
	}
	return photos
}

func TestPhotoStorageService_UploadKeepsOrder(t *testing.T) {
	putter := &fakePutter{failAt: -1}
	service := NewPhotoStorageServiceWithClient(
		putter, "listing-photos", "us-east-1", "https://cdn.example.com/",
	)
	listingID := uuid.New()

	urls, err := service.Upload(context.Background(), listingID, uploads("front.JPG", "kitchen.png"))
	require.NoError(t, err)
	require.Len(t, urls, 2)
	require.Len(t, putter.keys, 2)

	prefix := "listings/" + listingID.String() + "/"
	assert.True(t, strings.HasPrefix(putter.keys[0], prefix))
	assert.True(t, strings.HasSuffix(putter.keys[0], ".jpg"))
	assert.True(t, strings.HasSuffix(putter.keys[1], ".png"))
	assert.Equal(t, "https://cdn.example.com/"+putter.keys[0], urls[0])
	assert.Equal(t, "https://cdn.example.com/"+putter.keys[1], urls[1])
}

func TestPhotoStorageService_UploadStopsAtFirstFailure(t *testing.T) {
	putter := &fakePutter{failAt: 1}
	service := NewPhotoStorageServiceWithClient(putter, "listing-photos", "us-east-1", "")

	urls, err := service.Upload(context.Background(), uuid.New(), uploads("a.jpg", "b.jpg", "c.jpg"))
	assert.ErrorIs(t, err, types.ErrPersistence)
	assert.Nil(t, urls)
	assert.Len(t, putter.keys, 1)
}

func TestPhotoStorageService_DefaultURL(t *testing.T) {
	putter := &fakePutter{failAt: -1}
	service := NewPhotoStorageServiceWithClient(putter, "listing-photos", "us-west-2", "")

	urls, err := service.Upload(context.Background(), uuid.New(), uploads("a.jpg"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(urls[0], "https://listing-photos.s3.us-west-2.amazonaws.com/listings/"))
}

func TestPhotoStorageService_Disabled(t *testing.T) {
	service := &PhotoStorageService{}
	assert.False(t, service.Enabled())

	_, err := service.Upload(context.Background(), uuid.New(), uploads("a.jpg"))
	assert.ErrorIs(t, err, types.ErrValidation)
}
