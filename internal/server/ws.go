package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsWriteWait    = 10 * time.Second
	wsPongWait     = 60 * time.Second
	wsPingInterval = wsPongWait * 9 / 10
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// serveWS runs one game per connection: every text message is a FEN, every reply an action.
func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	var mind, err = s.newSession()
	if err != nil {
		s.logger.Error().Err(err).Msg("new session")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket upgrade")
		return
	}
	defer conn.Close()

	if err := mind.NewRun(); err != nil {
		s.logger.Error().Err(err).Msg("new run")
		return
	}
	defer func() {
		if err := mind.EndRun(); err != nil {
			s.logger.Error().Err(err).Msg("end run")
		}
	}()

	var send = make(chan []byte, 16)
	var done = make(chan struct{})
	go func() {
		defer close(done)
		if err := writeWSWithHeartbeat(conn, send, wsPingInterval); err != nil {
			s.logger.Debug().Err(err).Msg("websocket write")
		}
	}()

	conn.SetReadLimit(maxStateBytes)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			break
		}
		_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
		if messageType != websocket.TextMessage {
			continue
		}
		var action = mind.GetAction(strings.TrimSpace(string(message)))
		select {
		case send <- []byte(action.String()):
		case <-done:
			return
		}
	}
	close(send)
	<-done
}

func writeWSWithHeartbeat(conn *websocket.Conn, send <-chan []byte, pingInterval time.Duration) error {
	var ticker = time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				return conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
					time.Now().Add(wsWriteWait))
			}
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(wsWriteWait)); err != nil {
				return err
			}
		}
	}
}
