package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 answers the handful of S3 calls Store makes.
type fakeS3 struct {
	mu      sync.Mutex
	buckets map[string]bool
	objects map[string][]byte
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	parts := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/"), "/", 2)
	bucket := parts[0]
	key := ""
	if len(parts) == 2 {
		key = parts[1]
	}

	switch {
	case key == "" && r.Method == http.MethodHead:
		if !f.buckets[bucket] {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	case key == "" && r.Method == http.MethodPut:
		f.buckets[bucket] = true
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.objects[bucket+"/"+key] = body
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.WriteHeader(http.StatusOK)
	case r.Method == http.MethodGet:
		body, ok := f.objects[bucket+"/"+key]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Length", strconv.Itoa(len(body)))
		w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(body)
	default:
		w.WriteHeader(http.StatusNotImplemented)
	}
}

func TestStore_PutGet(t *testing.T) {
	fake := &fakeS3{buckets: map[string]bool{}, objects: map[string][]byte{}}
	server := httptest.NewServer(fake)
	defer server.Close()

	ctx := context.Background()
	endpoint := strings.TrimPrefix(server.URL, "http://")

	store, err := New(ctx, endpoint, "us-east-1", "designs", "access", "secret", false)
	require.NoError(t, err)
	assert.True(t, fake.buckets["designs"])

	key := ObjectKey(7, "u1", "home.png")
	payload := []byte("\x89PNG fake image")

	url, err := store.Put(ctx, key, bytes.NewReader(payload), int64(len(payload)), "image/png")
	require.NoError(t, err)
	assert.Equal(t, server.URL+"/designs/uploads/7/u1/home.png", url)

	data, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "uploads/3/abc/landing.png", ObjectKey(3, "abc", "landing.png"))
	assert.Equal(t, "uploads/3/abc/passwd", ObjectKey(3, "abc", "../../etc/passwd"))
}
