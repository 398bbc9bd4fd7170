package ingest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait = 10 * time.Second
	// Graph stream clients only send control frames.
	graphReadLimit = 512
)

// observationStream reads one observation, or an array of them, per text frame.
// A frame that does not decode is answered with an error frame and skipped.
func (s *Server) observationStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "route", "observations", "error", err.Error())
		return
	}
	defer func() { _ = conn.Close() }()
	conn.SetReadLimit(s.maxBody)

	ctx := r.Context()
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	for {
		kind, data, err := conn.ReadMessage()
		if err != nil {
			if errors.Is(err, websocket.ErrReadLimit) {
				s.logger.Warn("observation frame exceeds limit", "limit", s.maxBody)
			}
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) && ctx.Err() == nil {
				s.logger.Debug("observation stream closed", "error", err.Error())
			}
			return
		}
		if kind != websocket.TextMessage {
			continue
		}

		records, err := DecodeRecords(data)
		if err != nil {
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if werr := conn.WriteJSON(map[string]string{"error": err.Error()}); werr != nil {
				return
			}
			continue
		}
		for _, rec := range records {
			s.observe(ctx, rec)
		}
	}
}

// graphStream sends the latest graph, then every newly published graph.
func (s *Server) graphStream(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "route", "graphs", "error", err.Error())
		return
	}
	defer func() { _ = conn.Close() }()
	conn.SetReadLimit(graphReadLimit)

	graphs, cancel := s.graphs.Subscribe()
	defer cancel()

	// The client never sends data frames; reading detects when it goes away.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-r.Context().Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
				time.Now().Add(writeWait))
			return
		case <-gone:
			return
		case g, ok := <-graphs:
			if !ok {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(g); err != nil {
				return
			}
		}
	}
}
