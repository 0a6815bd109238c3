package inventory

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"stock-sync/core/storage"

	"github.com/minio/minio-go/v7"
)

// Archive stores sync reports as JSON objects in a bucket.
type Archive struct {
	client    storage.Client
	bucket    string
	prefix    string
	retention int
}

// NewArchive creates an Archive from the storage settings.
func NewArchive(client storage.Client, cfg storage.Config) *Archive {
	prefix := cfg.ReportPrefix
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &Archive{
		client:    client,
		bucket:    cfg.Bucket,
		prefix:    prefix,
		retention: cfg.ReportRetention,
	}
}

// Key returns the object key of the report with id.
func (a *Archive) Key(id string) string {
	return a.prefix + id + ".json"
}

// Upload writes report to <prefix><id>.json and returns the key.
func (a *Archive) Upload(ctx context.Context, report *Report) (string, error) {
	body, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	key := a.Key(report.ID)
	_, err = a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("upload report %s: %w", key, err)
	}
	return key, nil
}

// Prune removes the oldest reports so that at most retention remain.
// It returns how many objects were removed. A retention of zero keeps everything.
func (a *Archive) Prune(ctx context.Context) (int, error) {
	if a.retention <= 0 {
		return 0, nil
	}

	// Cancelling stops the lister when we return before draining it.
	listCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var objects []minio.ObjectInfo
	for obj := range a.client.ListObjects(listCtx, a.bucket, minio.ListObjectsOptions{Prefix: a.prefix, Recursive: true}) {
		if obj.Err != nil {
			return 0, fmt.Errorf("list reports: %w", obj.Err)
		}
		if strings.HasSuffix(obj.Key, ".json") {
			objects = append(objects, obj)
		}
	}
	if len(objects) <= a.retention {
		return 0, nil
	}

	// Newest first; everything past the retention window goes.
	slices.SortFunc(objects, func(x, y minio.ObjectInfo) int {
		return y.LastModified.Compare(x.LastModified)
	})
	stale := objects[a.retention:]

	ch := make(chan minio.ObjectInfo, len(stale))
	for _, obj := range stale {
		ch <- obj
	}
	close(ch)

	var errs []error
	for rerr := range a.client.RemoveObjects(ctx, a.bucket, ch, minio.RemoveObjectsOptions{}) {
		errs = append(errs, fmt.Errorf("remove %s: %w", rerr.ObjectName, rerr.Err))
	}
	return len(stale) - len(errs), errors.Join(errs...)
}
