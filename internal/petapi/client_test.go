package petapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func sampleRequest() SubmitRequest {
	return SubmitRequest{
		Name:  "Max",
		Breed: "Labrador",
		Age:   5,
		Price: decimal.NewFromInt(500),
	}
}

func TestSubmitPetDetails_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/users" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected Authorization header: %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("unexpected Content-Type: %q", got)
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["name"] != "Max" {
			t.Errorf("unexpected payload: %v", body)
		}

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"981","createdAt":"2026-08-30T10:00:00Z"}`))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL, Token: "test-token"})
	resp, err := client.SubmitPetDetails(context.Background(), sampleRequest())
	if err != nil {
		t.Fatalf("SubmitPetDetails failed: %v", err)
	}
	if resp.ID != "981" {
		t.Fatalf("expected id 981, got %q", resp.ID)
	}
}

func TestSubmitPetDetails_RemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL})
	_, err := client.SubmitPetDetails(context.Background(), sampleRequest())

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Kind != KindSubmission || apiErr.Status != http.StatusInternalServerError {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestSubmitPetDetails_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	client := NewClient(Options{BaseURL: srv.URL})
	_, err := client.SubmitPetDetails(context.Background(), sampleRequest())

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Kind != KindSubmission || apiErr.Status != 0 {
		t.Fatalf("expected unreachable submission error, got %+v", apiErr)
	}
}

func TestFetchRandomImage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"https://images.dog.ceo/breeds/husky/n02110185_1469.jpg","status":"success"}`))
	}))
	defer srv.Close()

	client := NewClient(Options{ImageURL: srv.URL})
	url, err := client.FetchRandomImage(context.Background())
	if err != nil {
		t.Fatalf("FetchRandomImage failed: %v", err)
	}
	if url != "https://images.dog.ceo/breeds/husky/n02110185_1469.jpg" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestFetchRandomImage_ErrorStatusField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 200 with a body-level failure still counts as a fetch error
		w.Write([]byte(`{"message":"no dogs today","status":"error"}`))
	}))
	defer srv.Close()

	client := NewClient(Options{ImageURL: srv.URL})
	_, err := client.FetchRandomImage(context.Background())

	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Kind != KindFetch {
		t.Fatalf("expected fetch error, got %v", err)
	}
}

func TestFetchRandomImage_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(Options{ImageURL: srv.URL})
	_, err := client.FetchRandomImage(context.Background())

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if apiErr.Kind != KindFetch || apiErr.Status != http.StatusNotFound {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestFetchRandomImage_PreCancelledNeverCalls(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(Options{ImageURL: srv.URL})
	_, err := client.FetchRandomImage(ctx)

	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Kind != KindCancelled {
		t.Fatalf("expected cancelled error, got %v", err)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatalf("pre-cancelled fetch must not issue a request")
	}
}

func TestFetchRandomImage_CancelledMidFlight(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	client := NewClient(Options{ImageURL: srv.URL})
	_, err := client.FetchRandomImage(ctx)

	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Kind != KindCancelled {
		t.Fatalf("expected cancelled error, got %v", err)
	}
}

func TestFetchRandomImage_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	client := NewClient(Options{ImageURL: srv.URL, ImageTimeout: 30 * time.Millisecond})
	start := time.Now()
	_, err := client.FetchRandomImage(context.Background())

	var apiErr *Error
	if !errors.As(err, &apiErr) || apiErr.Kind != KindFetch {
		t.Fatalf("expected fetch error on timeout, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected a deadline error underneath, got %v", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Fatalf("timeout did not take effect")
	}
}
