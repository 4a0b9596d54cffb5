package server

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Spectators send nothing meaningful; keep the read limit small.
	maxMessageSize = 512
)

// connection wraps one spectator socket. Writes flow through a buffered
// channel so a slow viewer cannot stall the broadcaster.
type connection struct {
	ws        *websocket.Conn
	out       chan []byte
	logger    *log.Logger
	clock     quartz.Clock
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

func newConnection(ws *websocket.Conn, logger *log.Logger, clock quartz.Clock) *connection {
	ctx, cancel := context.WithCancel(context.Background())
	return &connection{
		ws:     ws,
		out:    make(chan []byte, 64),
		logger: logger.WithPrefix("viewer"),
		clock:  clock,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (c *connection) start() {
	go c.writePump()
	go c.readPump()
}

func (c *connection) done() <-chan struct{} {
	return c.ctx.Done()
}

func (c *connection) close() {
	c.closeOnce.Do(func() {
		c.cancel()
		_ = c.ws.Close()
	})
}

// send queues data for delivery. Viewers that stop draining are dropped
// rather than backing up the table loop.
func (c *connection) send(data []byte) {
	select {
	case c.out <- data:
	case <-c.ctx.Done():
	default:
		c.logger.Warn("Spectator send buffer full, dropping connection")
		c.close()
	}
}

// readPump discards everything the viewer sends and watches for close.
func (c *connection) readPump() {
	defer c.close()

	c.ws.SetReadLimit(maxMessageSize)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure, websocket.CloseNormalClosure) {
				c.logger.Debug("Spectator read error", "error", err)
			}
			return
		}
	}
}

func (c *connection) writePump() {
	ticker := c.clock.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case data := <-c.out:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				c.logger.Debug("Failed to write to spectator", "error", err)
				return
			}

		case <-ticker.C:
			_ = c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.ctx.Done():
			_ = c.ws.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
