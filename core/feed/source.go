package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"stock-sync/core/storage"
	"stock-sync/core/syncerr"

	"github.com/minio/minio-go/v7"
)

// maxArchiveSize caps how much of an archive is read into memory.
const maxArchiveSize = 256 << 20

var errArchiveTooLarge = fmt.Errorf("archive exceeds %d bytes", maxArchiveSize)

// Source fetches the raw feed archive.
type Source interface {
	// Name describes the source in logs.
	Name() string
	// Fetch returns the archive bytes.
	Fetch(ctx context.Context) ([]byte, error)
}

// HTTPSource downloads the archive from a URL.
type HTTPSource struct {
	url        string
	httpClient *http.Client
}

// NewHTTPSource creates an HTTPSource for cfg.URL.
func NewHTTPSource(cfg Config) *HTTPSource {
	return &HTTPSource{
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
	}
}

func (s *HTTPSource) Name() string { return s.url }

func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	const op = "download feed"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, syncerr.InvalidArgument(op, "create request: %v", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, syncerr.Transport(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, syncerr.HTTPStatus(op, resp.StatusCode, body)
	}

	data, err := readAll(resp.Body)
	if errors.Is(err, errArchiveTooLarge) {
		return nil, syncerr.DataFormat(op, "archive", s.url, err)
	}
	if err != nil {
		return nil, syncerr.Transport(op, err)
	}
	return data, nil
}

// StorageSource reads the archive from an object in the storage bucket.
type StorageSource struct {
	client storage.Client
	bucket string
	object string
}

// NewStorageSource creates a StorageSource for cfg.Object in bucket.
func NewStorageSource(client storage.Client, bucket string, cfg Config) *StorageSource {
	return &StorageSource{client: client, bucket: bucket, object: cfg.Object}
}

func (s *StorageSource) Name() string { return s.bucket + "/" + s.object }

func (s *StorageSource) Fetch(ctx context.Context) ([]byte, error) {
	const op = "read feed object"

	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, syncerr.Transport(op, err)
	}
	defer obj.Close()

	data, err := readAll(obj)
	if errors.Is(err, errArchiveTooLarge) {
		return nil, syncerr.DataFormat(op, "archive", s.Name(), err)
	}
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.StatusCode != 0 {
			return nil, syncerr.HTTPStatus(op, resp.StatusCode, []byte(resp.Message))
		}
		return nil, syncerr.Transport(op, err)
	}
	return data, nil
}

func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxArchiveSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxArchiveSize {
		return nil, errArchiveTooLarge
	}
	return data, nil
}
