// Package api serves a read-only spectator view of a running game: the latest
// frame as JSON and a websocket stream of every frame after it.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
)

const writeWait = 2 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Server is the spectator http server.
type Server struct {
	hs  *http.Server
	hub *Hub
}

// New builds a server listening on addr that serves frames from hub.
func New(addr string, hub *Hub) *Server {
	s := &Server{hub: hub}

	router := httprouter.New()
	router.GET("/frame", s.frame)
	router.GET("/socket", s.socket)

	s.hs = &http.Server{
		Addr:    addr,
		Handler: cors.Default().Handler(router),
	}
	return s
}

// WaitForExit serves until the server is shut down.
func (s *Server) WaitForExit() error {
	log.WithField("listen", s.hs.Addr).Info("spectator api serving")
	err := s.hs.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.hs.Shutdown(ctx)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("unable to write response")
	}
}

func (s *Server) frame(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	f := s.hub.Latest()
	if f == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no game running"})
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (s *Server) socket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Error("unable to upgrade connection")
		return
	}
	defer func() {
		if err := ws.Close(); err != nil {
			log.WithError(err).Error("unable to close websocket stream")
		}
	}()

	frames, unsubscribe := s.hub.Subscribe()
	defer unsubscribe()

	// Spectators never send anything; reading only surfaces the close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if f := s.hub.Latest(); f != nil {
		if err := s.write(ws, f); err != nil {
			return
		}
	}

	for {
		select {
		case <-closed:
			return
		case f, ok := <-frames:
			if !ok {
				return
			}
			if err := s.write(ws, f); err != nil {
				log.WithError(err).Debug("spectator went away")
				return
			}
		}
	}
}

func (s *Server) write(ws *websocket.Conn, v interface{}) error {
	if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return ws.WriteJSON(v)
}
