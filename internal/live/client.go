package live

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"github.com/gielis/iconmaker/internal/typeid"
)

const (
	writeWait  = 10 * time.Second
	pingPeriod = 30 * time.Second
)

type Client struct {
	conn    *websocket.Conn
	send    chan []byte
	session *Session
}

func NewClient(conn *websocket.Conn, session *Session) *Client {
	return &Client{
		conn:    conn,
		send:    make(chan []byte, 64),
		session: session,
	}
}

func (c *Client) ReadPump(ctx context.Context) {
	defer c.conn.Close(websocket.StatusNormalClosure, "")

	c.conn.SetReadLimit(MaxMessageSize)

	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
				websocket.CloseStatus(err) == websocket.StatusGoingAway {
				return
			}
			slog.Debug("read error", "error", err, "session", c.session.ID)
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("invalid message", "error", err, "session", c.session.ID)
			c.Send(c.session.reply(TypeError, 0, ErrorPayload{Message: "invalid message"}))
			continue
		}

		for _, reply := range c.session.Handle(&msg) {
			c.Send(reply)
		}
	}
}

func (c *Client) WritePump(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		select {
		case message := <-c.send:
			writeCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Write(writeCtx, websocket.MessageText, message)
			cancel()
			if err != nil {
				slog.Debug("write error", "error", err, "session", c.session.ID)
				return
			}

		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, writeWait)
			err := c.conn.Ping(pingCtx)
			cancel()
			if err != nil {
				return
			}

		case <-ctx.Done():
			return
		}
	}
}

func (c *Client) Send(msg *Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Error("marshal message", "error", err)
		return
	}

	select {
	case c.send <- data:
	default:
		slog.Warn("client send buffer full, dropping message", "session", c.session.ID)
	}
}

// Handler upgrades preview connections.
type Handler struct {
	originPatterns []string
	svgSize        int
}

// NewHandler creates a live preview handler. originPatterns are host
// patterns accepted in the Origin header besides the server's own host.
func NewHandler(originPatterns []string, svgSize int) *Handler {
	return &Handler{originPatterns: originPatterns, svgSize: svgSize}
}

// ServeHTTP handles GET /ws/preview.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	session := NewSession(typeid.NewSessionID(), h.svgSize)
	client := NewClient(conn, session)
	slog.Info("preview session started", "session", session.ID)

	client.Send(session.reply(TypeWelcome, 0, map[string]string{"sessionId": session.ID}))
	if state, err := session.State(); err == nil {
		client.Send(session.reply(TypeState, 0, state))
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go client.WritePump(ctx)
	client.ReadPump(ctx)

	slog.Info("preview session ended", "session", session.ID)
}
