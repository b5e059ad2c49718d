package wilayah

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetProvinces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/provinces.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"code":"11","name":"Aceh"},{"code":"12","name":"Sumatera Utara"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	provinces, err := client.GetProvinces(context.Background())
	if err != nil {
		t.Fatalf("GetProvinces returned error: %v", err)
	}
	if len(provinces) != 2 {
		t.Fatalf("expected 2 provinces, got %d", len(provinces))
	}
	if provinces[0].Code != "11" || provinces[0].Name != "Aceh" {
		t.Errorf("unexpected first province: %+v", provinces[0])
	}
}

func TestGetRegencies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/regencies/11.json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"code":"11.01","name":"Kab. Aceh Selatan"}]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	regencies, err := client.GetRegencies(context.Background(), "11")
	if err != nil {
		t.Fatalf("GetRegencies returned error: %v", err)
	}
	if len(regencies) != 1 {
		t.Fatalf("expected 1 regency, got %d", len(regencies))
	}
	if regencies[0].Code != "11.01" {
		t.Errorf("unexpected regency code %s", regencies[0].Code)
	}
}

func TestGetProvincesServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	if _, err := client.GetProvinces(context.Background()); err == nil {
		t.Fatal("expected error on HTTP 500, got nil")
	}
}
