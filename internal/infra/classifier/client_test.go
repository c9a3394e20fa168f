package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/bryanwahyu/scamshield/internal/domain/analysis"
)

func TestClassifySuccess(t *testing.T) {
	var gotText, gotCT, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotCT = r.Header.Get("Content-Type")
		var body struct {
			Text string `json:"text"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotText = body.Text
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"High Risk","score":92,"keywords":["password","urgent"],"advice":"Requests sensitive data"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)
	v, err := c.Classify(context.Background(), "urgent password")
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	if gotPath != "/api/analyze" || gotCT != "application/json" || gotText != "urgent password" {
		t.Fatalf("unexpected request path=%q ct=%q text=%q", gotPath, gotCT, gotText)
	}
	want := analysis.RawVerdict{Status: "High Risk", Score: 92, Keywords: []string{"password", "urgent"}, Advice: "Requests sensitive data"}
	if !reflect.DeepEqual(v, want) {
		t.Fatalf("verdict = %+v", v)
	}
}

func TestClassifyMissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"score": 12.7}`))
	}))
	defer srv.Close()

	v, err := NewClient(srv.URL, time.Second).Classify(context.Background(), "hi")
	if err != nil {
		t.Fatal(err)
	}
	if v.Status != "" || v.Score != 12.7 || v.Keywords != nil {
		t.Fatalf("unexpected verdict %+v", v)
	}
}

func TestClassifyFailures(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"bad request", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"No text provided"}`, http.StatusBadRequest)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html>not json`))
		}},
		{"wrong shape", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"score":"ninety"}`))
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := httptest.NewServer(c.handler)
			defer srv.Close()
			_, err := NewClient(srv.URL, time.Second).Classify(context.Background(), "hello")
			if !errors.Is(err, analysis.ErrClassifierUnavailable) {
				t.Fatalf("expected ErrClassifierUnavailable, got %v", err)
			}
		})
	}
}

func TestClassifyUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).Classify(context.Background(), "hello")
	if !errors.Is(err, analysis.ErrClassifierUnavailable) {
		t.Fatalf("expected ErrClassifierUnavailable, got %v", err)
	}
}

func TestClassifyTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewClient(srv.URL, 50*time.Millisecond).Classify(context.Background(), "hello")
	if !errors.Is(err, analysis.ErrClassifierUnavailable) {
		t.Fatalf("expected ErrClassifierUnavailable on timeout, got %v", err)
	}
}

func TestClassifyEmptyInputSkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).Classify(context.Background(), strings.Repeat(" ", 3))
	if !errors.Is(err, analysis.ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if called {
		t.Fatal("network call made for empty input")
	}
}
