package util

import (
	"net/http"
	"testing"
)

func TestNewProxyFunc_Explicit(t *testing.T) {
	proxy := NewProxyFunc("http://proxy.local:3128", "http://secure.local:3129", "legifrance.gouv.fr")

	req, _ := http.NewRequest(http.MethodGet, "http://example.com/jorf/jorf-2023", nil)
	u, err := proxy(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u == nil || u.Host != "proxy.local:3128" {
		t.Errorf("expected http proxy, got %v", u)
	}

	req, _ = http.NewRequest(http.MethodGet, "https://example.com/doc.pdf", nil)
	u, err = proxy(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u == nil || u.Host != "secure.local:3129" {
		t.Errorf("expected https proxy, got %v", u)
	}
}

func TestNewProxyFunc_NoProxy(t *testing.T) {
	proxy := NewProxyFunc("http://proxy.local:3128", "http://proxy.local:3128", "legifrance.gouv.fr")

	req, _ := http.NewRequest(http.MethodGet, "https://www.legifrance.gouv.fr/jorf/jorf-2023", nil)
	u, err := proxy(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u != nil {
		t.Errorf("expected direct connection, got proxy %v", u)
	}
}
