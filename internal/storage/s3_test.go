package storage

import (
	"bytes"
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string][]byte
	lastPut *s3.PutObjectInput
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.lastPut = in
	if _, ok := f.objects[*in.Key]; ok && in.IfNoneMatch != nil {
		return nil, &smithy.GenericAPIError{Code: "PreconditionFailed", Message: "At least one of the pre-conditions you specified did not hold"}
	}
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(in.Body)
	f.objects[*in.Key] = buf.Bytes()
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(context.Context, *s3.GetObjectInput, ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	return nil, &types.NoSuchKey{}
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, *in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if _, ok := f.objects[*in.Key]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func TestS3StorageSave(t *testing.T) {
	fake := newFakeS3()
	s := NewS3StorageWithClient(fake, "portfolio", "https://cdn.example.com")
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, "avatars/a.png", bytes.NewReader([]byte("img")), "image/png"))
	assert.Equal(t, "*", *fake.lastPut.IfNoneMatch)
	assert.Equal(t, "image/png", *fake.lastPut.ContentType)

	err := s.Save(ctx, "avatars/a.png", bytes.NewReader([]byte("img")), "image/png")
	assert.ErrorIs(t, err, ErrAlreadyExists)

	exists, err := s.Exists(ctx, "avatars/a.png")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.Delete(ctx, "avatars/a.png"))
	exists, err = s.Exists(ctx, "avatars/a.png")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.Equal(t, "https://cdn.example.com/avatars/a.png", s.GetURL("avatars/a.png"))
	assert.Equal(t, "s3://portfolio/avatars/a.png", s.Location("avatars/a.png"))
}

func TestS3StorageRejectsBadKey(t *testing.T) {
	s := NewS3StorageWithClient(newFakeS3(), "portfolio", "https://cdn.example.com")
	err := s.Save(context.Background(), "../secret", bytes.NewReader(nil), "image/png")
	assert.ErrorIs(t, err, ErrInvalidKey)
}
