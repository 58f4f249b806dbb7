package util

import (
	"net/http"
	"net/url"
	"testing"
)

func reqFor(t *testing.T, rawURL string) *http.Request {
	t.Helper()
	u, err := url.Parse(rawURL)
	if err != nil {
		t.Fatalf("parse %q: %v", rawURL, err)
	}
	return &http.Request{URL: u}
}

func TestNewProxyFunc(t *testing.T) {
	proxy := NewProxyFunc("http://proxy.local:3128", "http://sproxy.local:3128", "internal.example.com")

	u, err := proxy(reqFor(t, "http://api.thenmap.net/v2/data"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u == nil || u.Host != "proxy.local:3128" {
		t.Errorf("http proxy = %v", u)
	}

	u, err = proxy(reqFor(t, "https://raw.githubusercontent.com/data"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u == nil || u.Host != "sproxy.local:3128" {
		t.Errorf("https proxy = %v", u)
	}

	u, err = proxy(reqFor(t, "http://internal.example.com/data"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u != nil {
		t.Errorf("no_proxy host should bypass the proxy, got %v", u)
	}

	u, err = proxy(reqFor(t, "http://svc.internal.example.com/data"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u != nil {
		t.Errorf("no_proxy subdomain should bypass the proxy, got %v", u)
	}
}

func TestNewProxyFunc_HTTPFallbackForHTTPS(t *testing.T) {
	proxy := NewProxyFunc("http://proxy.local:3128", "", "")

	u, err := proxy(reqFor(t, "https://example.com/"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u == nil || u.Host != "proxy.local:3128" {
		t.Errorf("https request should fall back to http proxy, got %v", u)
	}
}
