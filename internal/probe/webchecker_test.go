package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestWebChecker_StatusOK(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("ok"))
	}))
	defer s.Close()

	chk := NewWebChecker(time.Second, 2*time.Second)
	out := chk.Fetch(context.Background(), s.URL)
	if !out.Up {
		t.Fatalf("want up, got %+v", out)
	}
	if out.StatusCode != 200 {
		t.Fatalf("want status 200, got %d", out.StatusCode)
	}
	if out.ResponseTime <= 0 {
		t.Fatalf("response time should be > 0, got %f", out.ResponseTime)
	}
}

func TestWebChecker_Status500IsDown(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", 500)
	}))
	defer s.Close()

	chk := NewWebChecker(time.Second, 2*time.Second)
	out := chk.Fetch(context.Background(), s.URL)
	if out.Up {
		t.Fatalf("want down, got %+v", out)
	}
	if out.StatusCode != 500 {
		t.Fatalf("want status 500, got %d", out.StatusCode)
	}
}

func TestWebChecker_RedirectFollowedBeforeClassification(t *testing.T) {
	final := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
	}))
	defer final.Close()
	redir := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, final.URL, http.StatusFound)
	}))
	defer redir.Close()

	chk := NewWebChecker(time.Second, 2*time.Second)
	out := chk.Fetch(context.Background(), redir.URL)
	if !out.Up {
		t.Fatalf("want up after following redirect, got %+v", out)
	}
	if out.StatusCode != 200 {
		t.Fatalf("want final status 200, got %d", out.StatusCode)
	}
}

func TestWebChecker_TimeoutYieldsZeroes(t *testing.T) {
	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(200)
	}))
	defer s.Close()

	chk := NewWebChecker(50*time.Millisecond, 50*time.Millisecond)
	out := chk.Fetch(context.Background(), s.URL)
	if out.Up {
		t.Fatalf("want down on timeout, got %+v", out)
	}
	if out.StatusCode != 0 {
		t.Fatalf("want status 0 on transport error, got %d", out.StatusCode)
	}
	if out.ResponseTime != 0 {
		t.Fatalf("want response time 0 on transport error, got %f", out.ResponseTime)
	}
}

func TestWebChecker_FailureIsIdempotent(t *testing.T) {
	// Nothing listens here: both fetches must encode down the same way.
	chk := NewWebChecker(200*time.Millisecond, 300*time.Millisecond)
	first := chk.Fetch(context.Background(), "http://127.0.0.1:1")
	second := chk.Fetch(context.Background(), "http://127.0.0.1:1")
	if first != second {
		t.Fatalf("down-state encoding differs between runs: %+v vs %+v", first, second)
	}
	if first.Up || first.StatusCode != 0 || first.ResponseTime != 0 {
		t.Fatalf("want zeroed down result, got %+v", first)
	}
}
