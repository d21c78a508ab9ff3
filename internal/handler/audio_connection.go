package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	maxSocketFrame = maxAudioBytes
)

type socketFrame struct {
	messageType int
	data        []byte
}

type socketReply struct {
	Transcript string `json:"transcript,omitempty"`
	Reply      string `json:"reply,omitempty"`
	Error      string `json:"error,omitempty"`
}

// clientReadPump is the only reader of conn. It closes inbound when the peer goes away.
func clientReadPump(ctx context.Context, conn *websocket.Conn, inbound chan<- socketFrame, log *slog.Logger) {
	defer close(inbound)
	conn.SetReadLimit(maxSocketFrame)

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn("clientReadPump(): read failed", "error", err)
			}
			return
		}

		select {
		case inbound <- socketFrame{messageType: messageType, data: data}:
		case <-ctx.Done():
			return
		}
	}
}

// clientWritePump is the only writer of conn.
func clientWritePump(ctx context.Context, conn *websocket.Conn, outbound <-chan socketReply, log *slog.Logger) {
	closeFrame := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")

	for {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage, closeFrame, time.Now().Add(writeWait))
			return

		case reply, ok := <-outbound:
			if !ok {
				_ = conn.WriteControl(websocket.CloseMessage, closeFrame, time.Now().Add(writeWait))
				return
			}

			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(reply); err != nil {
				log.Warn("clientWritePump(): write failed", "error", err)
				return
			}
		}
	}
}
