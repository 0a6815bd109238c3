package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"stock-sync/core/reconcile"
	"stock-sync/core/storage"
	"stock-sync/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testStorageConfig() storage.Config {
	return storage.Config{Bucket: "stock-sync", ReportPrefix: "reports", ReportRetention: 2}
}

func objectChan(objs ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objs))
	for _, o := range objs {
		ch <- o
	}
	close(ch)
	return ch
}

func TestArchive_Upload(t *testing.T) {
	client := new(mocks.Client)
	a := NewArchive(client, testStorageConfig())

	var uploaded Report
	client.On("PutObject", mock.Anything, "stock-sync", "reports/abc.json", mock.Anything, mock.Anything,
		mock.MatchedBy(func(o minio.PutObjectOptions) bool { return o.ContentType == "application/json" })).
		Run(func(args mock.Arguments) {
			body, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &uploaded))
			assert.EqualValues(t, len(body), args.Get(4))
		}).
		Return(minio.UploadInfo{}, nil)

	key, err := a.Upload(context.Background(), &Report{ID: "abc", Target: "ozon", FeedRows: 7})
	require.NoError(t, err)
	assert.Equal(t, "reports/abc.json", key)
	assert.Equal(t, 7, uploaded.FeedRows)
	client.AssertExpectations(t)
}

func TestArchive_Prune(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	t.Run("RemovesOldest", func(t *testing.T) {
		client := new(mocks.Client)
		a := NewArchive(client, testStorageConfig())

		client.On("ListObjects", mock.Anything, "stock-sync", minio.ListObjectsOptions{Prefix: "reports/", Recursive: true}).
			Return(objectChan(
				minio.ObjectInfo{Key: "reports/old.json", LastModified: now.Add(-3 * time.Hour)},
				minio.ObjectInfo{Key: "reports/new.json", LastModified: now},
				minio.ObjectInfo{Key: "reports/notes.txt", LastModified: now.Add(-9 * time.Hour)},
				minio.ObjectInfo{Key: "reports/mid.json", LastModified: now.Add(-1 * time.Hour)},
				minio.ObjectInfo{Key: "reports/oldest.json", LastModified: now.Add(-5 * time.Hour)},
			))

		var removed []string
		client.On("RemoveObjects", mock.Anything, "stock-sync", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				for obj := range args.Get(2).(<-chan minio.ObjectInfo) {
					removed = append(removed, obj.Key)
				}
			}).
			Return(nil)

		n, err := a.Prune(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, []string{"reports/old.json", "reports/oldest.json"}, removed)
	})

	t.Run("WithinRetention", func(t *testing.T) {
		client := new(mocks.Client)
		a := NewArchive(client, testStorageConfig())
		client.On("ListObjects", mock.Anything, "stock-sync", mock.Anything).
			Return(objectChan(minio.ObjectInfo{Key: "reports/a.json"}))

		n, err := a.Prune(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		client.AssertNotCalled(t, "RemoveObjects", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RetentionDisabled", func(t *testing.T) {
		client := new(mocks.Client)
		cfg := testStorageConfig()
		cfg.ReportRetention = 0

		n, err := NewArchive(client, cfg).Prune(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
		client.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ListErrorStopsLister", func(t *testing.T) {
		client := new(mocks.Client)
		a := NewArchive(client, testStorageConfig())

		done := make(chan struct{})
		client.On("ListObjects", mock.Anything, "stock-sync", mock.Anything).
			Return(func(listCtx context.Context, _ string, _ minio.ListObjectsOptions) <-chan minio.ObjectInfo {
				ch := make(chan minio.ObjectInfo)
				go func() {
					defer close(done)
					defer close(ch)
					objs := []minio.ObjectInfo{
						{Err: errors.New("access denied")},
						{Key: "reports/a.json"},
						{Key: "reports/b.json"},
					}
					for _, obj := range objs {
						select {
						case ch <- obj:
						case <-listCtx.Done():
							return
						}
					}
				}()
				return ch
			})

		_, err := a.Prune(ctx)
		require.ErrorContains(t, err, "access denied")

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("lister still blocked after Prune returned")
		}
	})

	t.Run("ListError", func(t *testing.T) {
		client := new(mocks.Client)
		a := NewArchive(client, testStorageConfig())
		client.On("ListObjects", mock.Anything, "stock-sync", mock.Anything).
			Return(objectChan(minio.ObjectInfo{Err: errors.New("access denied")}))

		_, err := a.Prune(ctx)
		assert.ErrorContains(t, err, "access denied")
	})
}

func TestService_ArchivesReport(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, "stock-sync", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	client.On("ListObjects", mock.Anything, "stock-sync", mock.Anything).Return(objectChan())

	svc := NewService(&stubFeed{rows: feedRows}, []Marketplace{
		{Name: "ozon", Adapters: []reconcile.Adapter{okAdapter("ozon", []string{"A"})}},
	}, zap.NewNop(), WithArchive(NewArchive(client, testStorageConfig())))

	report, err := svc.Sync(context.Background(), TargetOzon, Options{})
	require.NoError(t, err)
	assert.Equal(t, "reports/"+report.ID+".json", report.ReportKey)
	client.AssertExpectations(t)
}

func TestService_ArchiveFailureDoesNotFailSync(t *testing.T) {
	client := new(mocks.Client)
	client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("bucket gone"))

	svc := NewService(&stubFeed{rows: feedRows}, []Marketplace{
		{Name: "ozon", Adapters: []reconcile.Adapter{okAdapter("ozon", []string{"A"})}},
	}, zap.NewNop(), WithArchive(NewArchive(client, testStorageConfig())))

	report, err := svc.Sync(context.Background(), TargetOzon, Options{})
	require.NoError(t, err)
	assert.Empty(t, report.ReportKey)
}
