package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestChain_NoMiddlewares_ReturnsHandler(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("handler"))
	})

	result := Chain(handler)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	result.ServeHTTP(rr, req)

	if rr.Body.String() != "handler" {
		t.Errorf("expected body 'handler', got %q", rr.Body.String())
	}
}

func TestChain_MultipleMiddlewares_AppliesInOrder(t *testing.T) {
	t.Parallel()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("H"))
	})

	mw1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("1"))
			next.ServeHTTP(w, r)
		})
	}
	mw2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("2"))
			next.ServeHTTP(w, r)
		})
	}

	result := Chain(handler, mw1, mw2)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	result.ServeHTTP(rr, req)

	if rr.Body.String() != "12H" {
		t.Errorf("expected '12H', got %q", rr.Body.String())
	}
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	t.Parallel()

	var captured string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if captured == "" {
		t.Error("expected a generated request ID in context")
	}
	if rr.Header().Get("X-Request-ID") != captured {
		t.Errorf("expected response header to match context ID %q, got %q",
			captured, rr.Header().Get("X-Request-ID"))
	}
}

func TestRequestID_PreservesIncoming(t *testing.T) {
	t.Parallel()

	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Header().Get("X-Request-ID") != "client-supplied-id" {
		t.Errorf("expected client-supplied ID preserved, got %q", rr.Header().Get("X-Request-ID"))
	}
}

func TestRecovery_PanicBecomesProblemResponse(t *testing.T) {
	t.Parallel()

	handler := Recovery(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("expected problem+json content type, got %q", ct)
	}
	if strings.Contains(rr.Body.String(), "boom") {
		t.Errorf("panic value leaked into response: %s", rr.Body.String())
	}
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()

	handler := CORS([]string{"http://localhost:3000"})(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			t.Error("preflight should not reach the handler")
		},
	))

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Errorf("expected origin allowed, got %q", rr.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	t.Parallel()

	handler := CORS([]string{"http://localhost:3000"})(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {},
	))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "http://evil.example")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Errorf("expected no allow-origin header, got %q", rr.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestCompress_GzipRoundTrip(t *testing.T) {
	t.Parallel()

	handler := Compress(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("hello compressed world"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip content encoding, got %q", rr.Header().Get("Content-Encoding"))
	}

	gz, err := gzip.NewReader(rr.Body)
	if err != nil {
		t.Fatalf("failed to open gzip reader: %v", err)
	}
	defer func() { _ = gz.Close() }()

	body, err := io.ReadAll(gz)
	if err != nil {
		t.Fatalf("failed to decompress body: %v", err)
	}
	if string(body) != "hello compressed world" {
		t.Errorf("expected original body after decompression, got %q", body)
	}
}

func TestCompress_SkippedWithoutAcceptEncoding(t *testing.T) {
	t.Parallel()

	handler := Compress(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Header().Get("Content-Encoding") != "" {
		t.Errorf("expected no content encoding, got %q", rr.Header().Get("Content-Encoding"))
	}
	if rr.Body.String() != "plain" {
		t.Errorf("expected uncompressed body, got %q", rr.Body.String())
	}
}

func TestHeaderWriter_StampsOnceBeforeFirstByte(t *testing.T) {
	t.Parallel()

	stamps := 0
	rr := httptest.NewRecorder()
	hw := &headerWriter{ResponseWriter: rr, stamp: func(h http.Header) {
		stamps++
		h.Set("X-Stamped", "yes")
	}}

	_, _ = hw.Write([]byte("a"))
	_, _ = hw.Write([]byte("b"))
	hw.WriteHeader(http.StatusOK)

	if stamps != 1 {
		t.Errorf("expected exactly one stamp, got %d", stamps)
	}
	if rr.Header().Get("X-Stamped") != "yes" {
		t.Error("expected stamped header present")
	}
	if rr.Body.String() != "ab" {
		t.Errorf("expected body 'ab', got %q", rr.Body.String())
	}
}
