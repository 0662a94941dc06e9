package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO stores uploaded files and serves them back via public URLs.
type MinIO struct {
	client     *minio.Client
	bucket     string
	publicBase string
}

// NewMinIO creates a client against hostPort (e.g. "127.0.0.1:9000") and
// ensures the bucket exists.
func NewMinIO(hostPort, accessKey, secretKey, bucket string, useSSL bool, publicBase string) (*MinIO, error) {
	c, err := minio.New(hostPort, &minio.Options{Creds: credentials.NewStaticV4(accessKey, secretKey, ""), Secure: useSSL})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	exists, err := c.BucketExists(ctx, bucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := c.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &MinIO{client: c, bucket: bucket, publicBase: strings.TrimRight(publicBase, "/")}, nil
}

// UploadFile stores a multipart file under folder with a fresh UUID object
// name (original extension kept) and returns the public URL.
func (m *MinIO) UploadFile(ctx context.Context, fileHeader *multipart.FileHeader, folder string) (string, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := &bytes.Buffer{}
	if _, err := io.Copy(buf, f); err != nil {
		return "", err
	}

	ext := path.Ext(fileHeader.Filename)
	key := fmt.Sprintf("%s/%s%s", strings.Trim(folder, "/"), uuid.New().String(), ext)

	_, err = m.client.PutObject(ctx, m.bucket, key, bytes.NewReader(buf.Bytes()), int64(buf.Len()),
		minio.PutObjectOptions{ContentType: fileHeader.Header.Get("Content-Type")})
	if err != nil {
		return "", err
	}

	return m.PublicURL(key), nil
}

// DeleteByURL removes the object a public URL points at. URLs outside this
// store's prefix are ignored.
func (m *MinIO) DeleteByURL(ctx context.Context, fileURL string) error {
	key, ok := m.KeyFromURL(fileURL)
	if !ok {
		return nil
	}
	return m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{})
}

// PublicURL builds the public URL for an object key.
func (m *MinIO) PublicURL(key string) string {
	u, _ := url.Parse(m.publicBase)
	u.Path = path.Join(u.Path, m.bucket, key)
	return u.String()
}

// KeyFromURL is the inverse of PublicURL.
func (m *MinIO) KeyFromURL(fileURL string) (string, bool) {
	prefix := m.publicBase + "/" + m.bucket + "/"
	if !strings.HasPrefix(fileURL, prefix) {
		return "", false
	}
	return strings.TrimPrefix(fileURL, prefix), true
}
