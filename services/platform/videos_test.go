package platform

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"limelight/models"
)

func TestVideosDecodesWireFlag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/videos/w1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"id": 1, "video_url": "https://youtu.be/dQw4w9WgXcQ", "is_public": 1},
			{"id": 2, "video_url": "https://youtu.be/aaaaaaaaaaa", "is_public": 0}
		]`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	videos, err := client.Videos("tok", "w1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("expected 2 videos, got %d", len(videos))
	}
	if !videos[0].IsPublic {
		t.Error("expected is_public 1 to decode as true")
	}
	if videos[1].IsPublic {
		t.Error("expected is_public 0 to decode as false")
	}
}

func TestVideosNoVideosMessageIsEmptySuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"message": "No videos found for this website."}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	videos, err := client.Videos("tok", "w1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(videos) != 0 {
		t.Fatalf("expected empty collection, got %d", len(videos))
	}
}

func TestCreateVideoEncodesWireFlag(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"success": true}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.CreateVideo("tok", models.Video{
		WebsiteID: "w1",
		VideoURL:  "https://youtu.be/dQw4w9WgXcQ",
		IsPublic:  true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// JSON numbers decode as float64.
	if got, ok := captured["is_public"].(float64); !ok || got != 1 {
		t.Fatalf("expected is_public encoded as 1, got %v", captured["is_public"])
	}
}

func TestUpdateVideoEncodesPrivateAsZero(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"success": true}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.UpdateVideo("tok", models.Video{
		ID:       7,
		VideoURL: "https://youtu.be/dQw4w9WgXcQ",
		IsPublic: false,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got, ok := captured["is_public"].(float64); !ok || got != 0 {
		t.Fatalf("expected is_public encoded as 0, got %v", captured["is_public"])
	}
}

func TestMutationAckFailureSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"success": false}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	err := client.CreateVideo("tok", models.Video{VideoURL: "https://youtu.be/dQw4w9WgXcQ"})
	if err == nil {
		t.Fatal("expected error for success=false ack")
	}
}
