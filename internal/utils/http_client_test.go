package utils

import (
	"testing"
	"time"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient("http://localhost:3000", time.Second)

	if client == nil {
		t.Fatal("expected non-nil *HTTPClient, got nil")
	}

	if client.Client == nil {
		t.Fatal("expected embedded *resty.Client to be non-nil, got nil")
	}
}

func TestNewHTTPClient_Configured(t *testing.T) {
	client := NewHTTPClient("http://localhost:3000/rest/v1/", 5*time.Second)

	if client.BaseURL != "http://localhost:3000/rest/v1" {
		t.Errorf("expected trailing slash to be trimmed, got %q", client.BaseURL)
	}
	if client.GetClient().Timeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", client.GetClient().Timeout)
	}
	if got := client.Header.Get("Accept"); got != "application/json" {
		t.Errorf("expected Accept: application/json, got %q", got)
	}
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient("http://a", 0)
	client2 := NewHTTPClient("http://b", 0)

	if client1.Client == client2.Client {
		t.Fatal("expected NewHTTPClient to return HTTPClients with different *resty.Client instances")
	}
}
