package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/segyhp/travel-crm/internal/config"
	apperrors "github.com/segyhp/travel-crm/pkg/errors"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBucket = "customer-documents"

type storedObject struct {
	contentType string
	body        []byte
}

// fakeS3 serves the handful of path style S3 calls the storage makes
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]storedObject
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	bucket, key, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")
	if bucket != testBucket {
		writeS3Error(w, http.StatusNotFound, "NoSuchBucket")
		return
	}

	switch {
	case key == "" && r.Method == http.MethodHead:
		w.WriteHeader(http.StatusOK)
	case key == "" && r.Method == http.MethodGet:
		f.list(w, r.URL.Query().Get("prefix"))
	case r.Method == http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[key] = storedObject{contentType: r.Header.Get("Content-Type"), body: body}
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodGet:
		obj, ok := f.objects[key]
		if !ok {
			writeS3Error(w, http.StatusNotFound, "NoSuchKey")
			return
		}
		w.Header().Set("Content-Type", obj.contentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(obj.body)
	case r.Method == http.MethodDelete:
		delete(f.objects, key)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeS3) list(w http.ResponseWriter, prefix string) {
	keys := make([]string, 0)
	for k := range f.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var contents strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&contents, "<Contents><Key>%s</Key><LastModified>2024-01-01T00:00:00.000Z</LastModified><Size>%d</Size></Contents>",
			k, len(f.objects[k].body))
	}

	w.Header().Set("Content-Type", "application/xml")
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?><ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/"><Name>%s</Name><Prefix>%s</Prefix><KeyCount>%d</KeyCount><MaxKeys>1000</MaxKeys><IsTruncated>false</IsTruncated>%s</ListBucketResult>`,
		testBucket, prefix, len(keys), contents.String())
}

func writeS3Error(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(status)
	fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>%s</Code><Message>%s</Message></Error>`, code, code)
}

func newTestStorage(t *testing.T) *SupabaseStorage {
	t.Helper()
	server := httptest.NewServer(&fakeS3{objects: make(map[string]storedObject)})
	t.Cleanup(server.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store, err := NewSupabaseStorage(context.Background(), config.StorageConfig{
		Endpoint:        server.URL,
		Region:          "eu-central-1",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		Bucket:          testBucket,
	}, logger)
	require.NoError(t, err)
	return store
}

func TestSupabaseStorage_RoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.Upload(ctx, "customers/c-1/passport.pdf", "application/pdf", []byte("%PDF-1.7")))
	require.NoError(t, store.Upload(ctx, "customers/c-1/photo.jpg", "", []byte("jpeg")))
	require.NoError(t, store.Upload(ctx, "customers/c-2/visa.pdf", "application/pdf", []byte("x")))

	obj, err := store.Download(ctx, "customers/c-1/passport.pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", obj.ContentType)
	assert.Equal(t, []byte("%PDF-1.7"), obj.Body)

	listed, err := store.List(ctx, "customers/c-1/")
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "customers/c-1/passport.pdf", listed[0].Key)
	assert.Equal(t, int64(8), listed[0].Size)

	require.NoError(t, store.Delete(ctx, "customers/c-1/passport.pdf"))
	_, err = store.Download(ctx, "customers/c-1/passport.pdf")
	assert.ErrorIs(t, err, apperrors.ErrDocumentNotFound)
}

func TestSupabaseStorage_HealthCheck(t *testing.T) {
	store := newTestStorage(t)
	assert.NoError(t, store.HealthCheck(context.Background()))

	store.bucket = "missing"
	assert.Error(t, store.HealthCheck(context.Background()))
}
