//go:build integration
// +build integration

package integration

import (
	"context"
	"io"
	"net/http"
	"os"
	"testing"
	"time"
)

var baseURL = getenv("E2E_BASE_URL", "http://127.0.0.1:1337")

func TestSystem_E2E(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	waitReady(t, ctx, baseURL+"/")

	expect(t, baseURL+"/", 200, "This is products page")
	expect(t, baseURL+"/products", 200, "This is products page")
	expect(t, baseURL+"/laptop?id=0", 200, "This is laptop page for laptop 0")
	expect(t, baseURL+"/laptop?id=-1", 404, "URL was not found on the server")
	expect(t, baseURL+"/laptop?id=100000", 404, "URL was not found on the server")
	expect(t, baseURL+"/nope", 404, "URL was not found on the server")
}

func waitReady(t *testing.T, ctx context.Context, url string) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}

	for ctx.Err() == nil {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		resp, err := client.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	t.Fatalf("service not ready: %s", url)
}

func expect(t *testing.T, url string, status int, body string) {
	t.Helper()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	if resp.StatusCode != status {
		t.Fatalf("GET %s: status=%d want=%d", url, resp.StatusCode, status)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/html" {
		t.Fatalf("GET %s: content-type=%q", url, ct)
	}
	if string(raw) != body {
		t.Fatalf("GET %s: body=%q want=%q", url, raw, body)
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
