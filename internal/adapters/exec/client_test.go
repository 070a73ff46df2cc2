package exec

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRunForwardsToExecutionService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"run":{"stdout":"hello\n","stderr":"","code":0}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	res, err := c.Run(context.Background(), "python", "print('hello')")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Stdout != "hello\n" || res.ExitCode != 0 {
		t.Fatalf("result = %+v", res)
	}
}

func TestRunSurfacesServiceFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	if _, err := c.Run(context.Background(), "python", "x"); err == nil {
		t.Fatalf("expected error on 500 response")
	}
}

func TestRunDisabledWithoutURL(t *testing.T) {
	c := New("", time.Second)
	if c.Enabled() {
		t.Fatalf("client enabled without url")
	}
	if _, err := c.Run(context.Background(), "python", "x"); !errors.Is(err, ErrDisabled) {
		t.Fatalf("err = %v, want ErrDisabled", err)
	}
}
