package stream

import (
	"bytes"
	"context"
	"github.com/coder/websocket"
	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/sink"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

var testConfig = escape.Config{Width: 16, Height: 12, Region: escape.Classic, MaxIterations: 40}

func textGrid(t *testing.T, cfg escape.Config) string {
	t.Helper()

	var buf bytes.Buffer
	s := sink.NewText(&buf, cfg.Width)
	if err := escape.Evaluate(context.Background(), cfg, s, nil); err != nil {
		t.Fatal(err)
	}
	if err := s.Flush(); err != nil {
		t.Fatal(err)
	}

	return buf.String()
}

func TestHandler_Rows(t *testing.T) {
	srv := httptest.NewServer(NewHandler(testConfig))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(srv.URL, "http")+"/ws", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.CloseNow()

	var got strings.Builder
	for i := 0; i < testConfig.Height; i++ {
		typ, msg, err := conn.Read(ctx)
		if err != nil {
			t.Fatalf("reading row %d: %v", i, err)
		}
		if typ != websocket.MessageText {
			t.Errorf("row %d has message type %v", i, typ)
		}
		got.Write(msg)
	}

	if want := textGrid(t, testConfig); got.String() != want {
		t.Errorf("streamed grid =\n%s\nwant\n%s", got.String(), want)
	}

	_, _, err = conn.Read(ctx)
	if status := websocket.CloseStatus(err); status != websocket.StatusNormalClosure {
		t.Errorf("close status = %v (err %v), want normal closure", status, err)
	}
}

func TestHandler_Text(t *testing.T) {
	srv := httptest.NewServer(NewHandler(testConfig))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/mandelbrot.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if want := textGrid(t, testConfig); string(body) != want {
		t.Errorf("body =\n%s\nwant\n%s", body, want)
	}
}

func TestHandler_PNG(t *testing.T) {
	srv := httptest.NewServer(NewHandler(testConfig))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/mandelbrot.png")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q", ct)
	}

	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != testConfig.Width || b.Dy() != testConfig.Height {
		t.Errorf("bounds = %v", b)
	}
}

func TestHandler_InvalidConfig(t *testing.T) {
	cfg := testConfig
	cfg.Region = escape.Region{XMin: 1, XMax: 0, YMin: 0, YMax: 1}

	for _, path := range []string{"/mandelbrot.png", "/mandelbrot.txt"} {
		rec := httptest.NewRecorder()
		NewHandler(cfg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("%s: status = %d, want 500", path, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "invalid region") {
			t.Errorf("%s: body = %q, want the validation error", path, rec.Body.String())
		}
	}
}

func TestHandler_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(testConfig).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/other", nil))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
