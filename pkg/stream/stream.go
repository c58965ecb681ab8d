// Package stream serves a configured render over HTTP, streaming the text
// grid row by row to websocket clients as it is computed.
package stream

import (
	"context"
	"fmt"
	"github.com/coder/websocket"
	"github.com/willbeason/mandelbrot/pkg/escape"
	"github.com/willbeason/mandelbrot/pkg/sink"
	"log"
	"net/http"
	"strconv"
)

// Rows sends each completed raster row as one websocket text message, in
// the same format as a line of the text grid.
type Rows struct {
	ctx   context.Context
	conn  *websocket.Conn
	width int
	buf   []byte
}

func NewRows(ctx context.Context, conn *websocket.Conn, width int) *Rows {
	return &Rows{ctx: ctx, conn: conn, width: width}
}

func (r *Rows) Consume(_, col, iterations int) error {
	r.buf = strconv.AppendInt(r.buf, int64(iterations), 10)
	r.buf = append(r.buf, ' ')
	if col < r.width-1 {
		return nil
	}

	r.buf = append(r.buf, '\n')
	err := r.conn.Write(r.ctx, websocket.MessageText, r.buf)
	r.buf = r.buf[:0]

	return err
}

var _ escape.Sink = (*Rows)(nil)

type handler struct {
	cfg escape.Config
}

// NewHandler serves the render described by cfg:
//
//	GET /mandelbrot.txt  the text grid
//	GET /mandelbrot.png  the PNG image
//	GET /ws              the text grid, one websocket message per row
func NewHandler(cfg escape.Config) http.Handler {
	h := handler{cfg: cfg}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /mandelbrot.txt", h.text)
	mux.HandleFunc("GET /mandelbrot.png", h.png)
	mux.HandleFunc("GET /ws", h.rows)

	return mux
}

func (h handler) text(w http.ResponseWriter, r *http.Request) {
	// Cells are streamed into the body, so the status must be settled first.
	if err := h.cfg.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	s := sink.NewText(w, h.cfg.Width)
	if err := escape.Evaluate(r.Context(), h.cfg, s, nil); err != nil {
		log.Printf("text render for %s: %v", r.RemoteAddr, err)
		return
	}
	if err := s.Flush(); err != nil {
		log.Printf("text render for %s: %v", r.RemoteAddr, err)
	}
}

func (h handler) png(w http.ResponseWriter, r *http.Request) {
	s, err := sink.NewImage(h.cfg.Width, h.cfg.Height, h.cfg.Iterations())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// The image is encoded only after every pixel is known, so failures
	// can still be reported with a status code.
	if err := escape.Evaluate(r.Context(), h.cfg, s, nil); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := s.Encode(w); err != nil {
		log.Printf("png render for %s: %v", r.RemoteAddr, err)
	}
}

func (h handler) rows(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	defer conn.CloseNow()

	// Reading is required to notice a client going away; no messages are
	// expected from it.
	ctx := conn.CloseRead(r.Context())

	log.Printf("streaming %dx%d rows to %s", h.cfg.Width, h.cfg.Height, r.RemoteAddr)
	if err := escape.Evaluate(ctx, h.cfg, NewRows(ctx, conn, h.cfg.Width), nil); err != nil {
		log.Printf("stream to %s: %v", r.RemoteAddr, err)
		_ = conn.Close(websocket.StatusInternalError, truncate(err.Error()))
		return
	}

	_ = conn.Close(websocket.StatusNormalClosure, fmt.Sprintf("%d rows", h.cfg.Height))
}

// truncate keeps a close reason within the 123 bytes a close frame allows.
func truncate(reason string) string {
	const maxReason = 123
	if len(reason) > maxReason {
		return reason[:maxReason]
	}

	return reason
}
