package hackernews

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// newTestClient 指向一个假的 Firebase API
func newTestClient(srv *httptest.Server) *Client {
	return NewClient(srv.URL, 2*time.Second, 2*time.Second)
}

func TestBestStoryIDsPreservesUpstreamOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/beststories.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`[42, 7, 9000]`))
	}))
	defer srv.Close()

	ids, err := newTestClient(srv).BestStoryIDs(context.Background())
	if err != nil {
		t.Fatalf("BestStoryIDs error: %v", err)
	}
	want := []int{42, 7, 9000}
	if len(ids) != len(want) {
		t.Fatalf("got %d ids, want %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids[%d] = %d, want %d (order must be preserved)", i, ids[i], want[i])
		}
	}
}

func TestBestStoryIDsUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv).BestStoryIDs(context.Background()); err == nil {
		t.Fatalf("expected error on non-200 status")
	}
}

func TestBestStoryIDsMalformedPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv).BestStoryIDs(context.Background()); err == nil {
		t.Fatalf("expected error on malformed payload")
	}
}

func TestItemDecodesFullPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/item/8863.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{
			"id": 8863,
			"type": "story",
			"by": "dhouston",
			"time": 1175714200,
			"url": "http://www.getdropbox.com/u/2/screencast.html",
			"title": "My YC app: Dropbox",
			"score": 111,
			"descendants": 71
		}`))
	}))
	defer srv.Close()

	it, err := newTestClient(srv).Item(context.Background(), 8863)
	if err != nil {
		t.Fatalf("Item error: %v", err)
	}
	if it == nil {
		t.Fatalf("expected non-nil item")
	}
	if it.ID != 8863 || it.By != "dhouston" || it.Score != 111 || it.Descendants != 71 {
		t.Fatalf("unexpected item: %+v", it)
	}
	if it.Time != 1175714200 {
		t.Fatalf("Time = %d, want 1175714200", it.Time)
	}
}

func TestItemNullPayloadIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 上游对不存在的 id 返回字面量 null，HTTP 层是 200
		_, _ = w.Write([]byte(`null`))
	}))
	defer srv.Close()

	it, err := newTestClient(srv).Item(context.Background(), 123456789)
	if err != nil {
		t.Fatalf("null payload should not be a transport error, got: %v", err)
	}
	if it != nil {
		t.Fatalf("expected nil item for null payload, got %+v", it)
	}
}

func TestItemUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if _, err := newTestClient(srv).Item(context.Background(), 1); err == nil {
		t.Fatalf("expected error on non-200 status")
	}
}
