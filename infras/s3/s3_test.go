package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/textproto"
	"rental/infras/otel/mocks"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectAPI struct {
	put     *s3.PutObjectInput
	body    []byte
	deleted []string
	err     error
}

func (f *fakeObjectAPI) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.put = params
	f.body, _ = io.ReadAll(params.Body)

	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectAPI) DeleteObject(_ context.Context, params *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.deleted = append(f.deleted, aws.ToString(params.Key))

	return &s3.DeleteObjectOutput{}, nil
}

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func TestUploadFile(t *testing.T) {
	api := &fakeObjectAPI{}
	svc := newWithClient(api, "rental", "https://cdn.example.com/", mocks.NewOtel())

	header := &multipart.FileHeader{Header: textproto.MIMEHeader{"Content-Type": []string{"image/png"}}}
	url, err := svc.UploadFile(context.Background(), "apartments", memFile{bytes.NewReader([]byte("png-bytes"))}, header, "a1.png")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/apartments/a1.png", url)
	assert.Equal(t, "rental", aws.ToString(api.put.Bucket))
	assert.Equal(t, "apartments/a1.png", aws.ToString(api.put.Key))
	assert.Equal(t, "image/png", aws.ToString(api.put.ContentType))
	assert.Equal(t, []byte("png-bytes"), api.body)
}

func TestUploadFileError(t *testing.T) {
	svc := newWithClient(&fakeObjectAPI{err: errors.New("denied")}, "rental", "https://cdn.example.com", mocks.NewOtel())

	header := &multipart.FileHeader{Header: textproto.MIMEHeader{}}
	_, err := svc.UploadFile(context.Background(), "apartments", memFile{bytes.NewReader(nil)}, header, "a1.png")

	assert.Error(t, err)
}

func TestDeleteFileAndObjectKey(t *testing.T) {
	api := &fakeObjectAPI{}
	svc := newWithClient(api, "rental", "https://cdn.example.com", mocks.NewOtel())

	key := svc.ObjectKeyFromURL("https://cdn.example.com/apartments/a1.png")
	assert.Equal(t, "apartments/a1.png", key)
	assert.Empty(t, svc.ObjectKeyFromURL("https://elsewhere.example.com/a1.png"))

	require.NoError(t, svc.DeleteFile(context.Background(), key))
	assert.Equal(t, []string{"apartments/a1.png"}, api.deleted)
}
