package api

import (
	"net/http"
	"net/url"

	"github.com/gorilla/websocket"

	"github.com/FocuswithJustin/Latinize/internal/logging"
)

// WSRequest is one romanization request on the stream. Each request is
// answered with one WSResponse, so a client can pipeline a corpus line by
// line over a single connection.
type WSRequest struct {
	Text  string `json:"text"`
	Lcode string `json:"lcode,omitempty"`
}

// WSResponse answers one WSRequest.
type WSResponse struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

const maxWSMessage = 1 << 20

// checkOrigin admits same-origin requests plus any configured origins.
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Host == r.Host {
		return true
	}
	for _, allowed := range s.cfg.AllowedOrigins {
		if allowed == origin || allowed == "*" {
			return true
		}
	}
	return false
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     s.checkOrigin,
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.WebSocketEvent("upgrade_failed", int(s.wsClients.Load()), "error", err.Error())
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxWSMessage)
	n := s.wsClients.Add(1)
	defer s.wsClients.Add(-1)
	logging.WebSocketEvent("connected", int(n), "remote", conn.RemoteAddr().String())

	for {
		var req WSRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.WebSocketEvent("read_error", int(s.wsClients.Load()), "error", err.Error())
			}
			return
		}
		out, _ := s.romanizeCached(req.Text, req.Lcode)
		if err := conn.WriteJSON(WSResponse{Text: out}); err != nil {
			logging.WebSocketEvent("write_error", int(s.wsClients.Load()), "error", err.Error())
			return
		}
	}
}
