package harvest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "Test Agent" {
			t.Errorf("Expected User-Agent 'Test Agent', got '%s'", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "Test Agent")

	data, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("Expected body to contain 'hello', got '%s'", data)
	}
}

func TestFetcher_Fetch_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "Test Agent")

	if _, err := fetcher.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected error for 500 response")
	}
}

func TestFetcher_Fetch_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "Test Agent")

	if _, err := fetcher.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected error for 404 response")
	}
}

func TestFetcher_Fetch_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // closed on purpose

	fetcher := NewFetcher(time.Second, "Test Agent")

	if _, err := fetcher.Fetch(context.Background(), server.URL); err == nil {
		t.Error("Expected error for refused connection")
	}
}

func TestFetcher_Fetch_DecodesWindows1251(t *testing.T) {
	// "Новости" encoded in windows-1251
	encoded := []byte{0xcd, 0xee, 0xe2, 0xee, 0xf1, 0xf2, 0xe8}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=windows-1251")
		w.Write(encoded)
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "Test Agent")

	data, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if string(data) != "Новости" {
		t.Errorf("Expected decoded UTF-8 'Новости', got '%s'", data)
	}
}

func TestFetcher_Fetch_UnknownCharsetFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=not-a-charset")
		w.Write([]byte("raw bytes"))
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "Test Agent")

	data, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if string(data) != "raw bytes" {
		t.Errorf("Expected raw body passthrough, got '%s'", data)
	}
}

func TestFetcher_Fetch_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	}))
	defer server.Close()

	fetcher := NewFetcher(5*time.Second, "Test Agent")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := fetcher.Fetch(ctx, server.URL); err == nil {
		t.Error("Expected error for cancelled context")
	}
}
