package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestRobotsChecker_Disallow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	checker := NewRobotsChecker("chronomap/0.1", 5*time.Second)
	ctx := context.Background()

	allowed, err := checker.CanFetch(ctx, server.URL+"/public/data.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Errorf("public path should be allowed")
	}

	allowed, err = checker.CanFetch(ctx, server.URL+"/private/data.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed {
		t.Errorf("private path should be disallowed")
	}
}

func TestRobotsChecker_CachesPerHost(t *testing.T) {
	var robotsFetches atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			robotsFetches.Add(1)
			_, _ = w.Write([]byte("User-agent: *\nAllow: /\n"))
		}
	}))
	defer server.Close()

	checker := NewRobotsChecker("chronomap/0.1", 5*time.Second)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if !checker.IsAllowed(ctx, server.URL+"/data.json") {
			t.Fatalf("fetch %d disallowed", i)
		}
	}
	if n := robotsFetches.Load(); n != 1 {
		t.Errorf("robots.txt fetched %d times, want 1", n)
	}

	checker.Clear()
	checker.IsAllowed(ctx, server.URL+"/data.json")
	if n := robotsFetches.Load(); n != 2 {
		t.Errorf("robots.txt not refetched after Clear: %d fetches", n)
	}
}

func TestRobotsChecker_MissingRobotsAllows(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	checker := NewRobotsChecker("chronomap/0.1", 5*time.Second)

	if !checker.IsAllowed(context.Background(), server.URL+"/data.json") {
		t.Errorf("missing robots.txt should allow fetching")
	}
}

func TestRobotsChecker_UnreachableHostAllows(t *testing.T) {
	checker := NewRobotsChecker("chronomap/0.1", 200*time.Millisecond)

	allowed, err := checker.CanFetch(context.Background(), "http://127.0.0.1:1/data.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Errorf("unreachable robots.txt should allow fetching")
	}
}

func TestNormalizeUserAgent(t *testing.T) {
	cases := map[string]string{
		"chronomap/0.1 (+https://github.com/ppiankov/chronomap)": "chronomap",
		"chronomap": "chronomap",
		"":          "",
	}
	for in, want := range cases {
		if got := NormalizeUserAgent(in); got != want {
			t.Errorf("NormalizeUserAgent(%q) = %q, want %q", in, got, want)
		}
	}
}
