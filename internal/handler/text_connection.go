package handler

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"
)

// manageChatSession runs one websocket conversation. Frames are answered in the
// order they arrive; a disconnect cancels the turn in flight.
func (h *Handler) manageChatSession(parent context.Context, conn *websocket.Conn, userID int64, sessionID string) {
	defer conn.Close()

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	log := h.log.With("user_id", userID, "session_id", sessionID)

	// unblocks ReadMessage once any side gives up
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	inbound := make(chan socketFrame, 16)
	outbound := make(chan socketReply, 16)

	var wg sync.WaitGroup
	wg.Add(3)

	// Client -> Server
	go func() {
		defer wg.Done()
		defer cancel()
		clientReadPump(ctx, conn, inbound, log)
	}()

	// Server -> Client
	go func() {
		defer wg.Done()
		defer cancel()
		clientWritePump(ctx, conn, outbound, log)
	}()

	// chat / voice turns
	go func() {
		defer wg.Done()
		defer close(outbound)
		h.processFrames(ctx, userID, inbound, outbound)
	}()

	wg.Wait()
	log.Info("websocket session ended")
}

func (h *Handler) processFrames(ctx context.Context, userID int64, inbound <-chan socketFrame, outbound chan<- socketReply) {
	for frame := range inbound {
		var reply socketReply

		switch frame.messageType {
		case websocket.TextMessage:
			text, err := h.chat.SubmitMessage(ctx, userID, string(frame.data))
			if err != nil {
				reply.Error = err.Error()
			} else {
				reply.Reply = text
			}

		case websocket.BinaryMessage:
			transcript, text, err := h.voice.Ask(ctx, userID, frame.data, "audio/webm")
			reply.Transcript = transcript
			if err != nil {
				reply.Error = err.Error()
			} else {
				reply.Reply = text
			}

		default:
			continue
		}

		if ctx.Err() != nil {
			return
		}
		select {
		case outbound <- reply:
		case <-ctx.Done():
			return
		}
	}
}
