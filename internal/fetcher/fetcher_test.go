package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Southclaws/fault/ftag"
	"go.uber.org/zap"
)

func TestAssetFetcher_FetchRemote(t *testing.T) {
	tests := []struct {
		name           string
		contentType    string
		responseBody   []byte
		statusCode     int
		ctxFunc        func() (context.Context, context.CancelFunc)
		expectedError  string
		expectedKind   ftag.Kind
		expectedLength int
	}{
		{
			name:           "Success - Valid Image",
			contentType:    "image/jpeg",
			responseBody:   []byte("fake-image-data"),
			statusCode:     http.StatusOK,
			expectedLength: 15,
		},
		{
			name:          "Error - 404 Not Found",
			contentType:   "image/jpeg",
			statusCode:    http.StatusNotFound,
			expectedError: "unexpected status code: 404",
			expectedKind:  ftag.NotFound,
		},
		{
			name:          "Error - Invalid Content Type",
			contentType:   "text/plain",
			responseBody:  []byte("not-an-image"),
			statusCode:    http.StatusOK,
			expectedError: "url is not an image",
			expectedKind:  ftag.InvalidArgument,
		},
		{
			name:          "Error - Response Too Large",
			contentType:   "image/png",
			responseBody:  []byte(strings.Repeat("a", _maxAssetSize+1)),
			statusCode:    http.StatusOK,
			expectedError: "image too large",
			expectedKind:  ftag.InvalidArgument,
		},
		{
			name: "Error - Context Cancelled",
			ctxFunc: func() (context.Context, context.CancelFunc) {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx, cancel
			},
			expectedError: "context canceled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", tt.contentType)
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write(tt.responseBody)
			}))
			defer server.Close()

			var ctx context.Context
			var cancel context.CancelFunc
			if tt.ctxFunc != nil {
				ctx, cancel = tt.ctxFunc()
			} else {
				ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
			}
			defer cancel()

			fetcher := NewAssetFetcher(zap.NewNop())
			data, err := fetcher.Fetch(ctx, server.URL)

			if tt.expectedError != "" {
				if err == nil {
					t.Fatalf("expected error containing '%s', got nil", tt.expectedError)
				}
				if !strings.Contains(err.Error(), tt.expectedError) {
					t.Errorf("expected error '%s' to contain '%s'", err.Error(), tt.expectedError)
				}
				if tt.expectedKind != "" && ftag.Get(err) != tt.expectedKind {
					t.Errorf("expected kind %s, got %s", tt.expectedKind, ftag.Get(err))
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(data) != tt.expectedLength {
				t.Errorf("expected data length %d, got %d", tt.expectedLength, len(data))
			}
		})
	}
}

func TestAssetFetcher_FetchLocal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame.png")
	if err := os.WriteFile(path, []byte("png-bytes"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name         string
		location     string
		expectedData string
		expectedKind ftag.Kind
	}{
		{name: "Plain path", location: path, expectedData: "png-bytes"},
		{name: "File URL", location: "file://" + path, expectedData: "png-bytes"},
		{name: "Missing file", location: filepath.Join(dir, "missing.png"), expectedKind: ftag.NotFound},
	}

	fetcher := NewAssetFetcher(zap.NewNop())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := fetcher.Fetch(t.Context(), tt.location)
			if tt.expectedKind != "" {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if ftag.Get(err) != tt.expectedKind {
					t.Errorf("expected kind %s, got %s", tt.expectedKind, ftag.Get(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(data) != tt.expectedData {
				t.Errorf("expected %q, got %q", tt.expectedData, data)
			}
		})
	}
}

func TestAssetFetcher_SizeLimit(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, n int) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(strings.Repeat("x", n)), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name         string
		size         int
		expectedKind ftag.Kind
	}{
		{name: "Below limit", size: 7},
		{name: "At limit", size: 8},
		{name: "One byte over", size: 9, expectedKind: ftag.InvalidArgument},
	}

	fetcher := NewAssetFetcher(zap.NewNop())
	fetcher.limit = 8
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := fetcher.Fetch(t.Context(), write(tt.name+".png", tt.size))
			if tt.expectedKind != "" {
				if ftag.Get(err) != tt.expectedKind {
					t.Fatalf("expected kind %s, got %v", tt.expectedKind, err)
				}
				if !strings.Contains(err.Error(), "image too large") {
					t.Errorf("unexpected message: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(data) != tt.size {
				t.Errorf("expected %d bytes, got %d", tt.size, len(data))
			}
		})
	}
}
