package blob

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestUpload(t *testing.T) {
	var gotMethod, gotPath, gotAuth, gotContentType string
	var gotBody []byte

	store := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://cdn.example.com/abc/sig.png","pathname":"sig.png"}`))
	}))
	defer store.Close()

	client := NewClient(store.URL, "test-token", 5*time.Second)

	payload := []byte{0x89, 'P', 'N', 'G'}
	publicURL, err := client.Upload(context.Background(), "sig.png", "image/png", payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if publicURL != "https://cdn.example.com/abc/sig.png" {
		t.Errorf("publicURL = %q", publicURL)
	}
	if gotMethod != http.MethodPut {
		t.Errorf("method = %q, want PUT", gotMethod)
	}
	if gotPath != "/sig.png" {
		t.Errorf("path = %q, want /sig.png", gotPath)
	}
	if gotAuth != "Bearer test-token" {
		t.Errorf("authorization = %q", gotAuth)
	}
	if gotContentType != "image/png" {
		t.Errorf("content-type = %q", gotContentType)
	}
	if !bytes.Equal(gotBody, payload) {
		t.Error("uploaded body does not match payload")
	}
}

func TestUploadErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"non-success status", http.StatusForbidden, `{"error":"forbidden"}`},
		{"missing url field", http.StatusOK, `{"pathname":"sig.png"}`},
		{"invalid json", http.StatusOK, `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer store.Close()

			client := NewClient(store.URL, "test-token", 5*time.Second)
			if _, err := client.Upload(context.Background(), "sig.png", "image/png", []byte("x")); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestUploadConnectionError(t *testing.T) {
	store := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	store.Close() // connection refused from here on

	client := NewClient(store.URL, "test-token", time.Second)
	if _, err := client.Upload(context.Background(), "sig.png", "image/png", []byte("x")); err == nil {
		t.Fatal("expected an error")
	}
}

func TestDownload(t *testing.T) {
	content := []byte("signature image bytes")

	store := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Error("download must be unauthenticated")
		}
		_, _ = w.Write(content)
	}))
	defer store.Close()

	client := NewClient(store.URL, "test-token", 5*time.Second)

	got, err := client.Download(context.Background(), store.URL+"/sig.png")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Error("downloaded bytes do not match")
	}
}

func TestDownloadNonSuccessStatus(t *testing.T) {
	store := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer store.Close()

	client := NewClient(store.URL, "", 5*time.Second)
	if _, err := client.Download(context.Background(), store.URL+"/missing.png"); err == nil {
		t.Fatal("expected an error")
	}
}
