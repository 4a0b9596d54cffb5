package main

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/tablefelt/dealerpad/internal/server"
)

// WatchCmd follows a table from another terminal. It prints a line per
// update and sends nothing back.
type WatchCmd struct {
	URL   string `kong:"default='ws://localhost:8080/ws',help='Spectator endpoint of a running table'"`
	Debug bool   `kong:"help='Enable debug logging'"`
}

func (c *WatchCmd) Run() error {
	logger := setupLogger(c.Debug)

	conn, _, err := websocket.DefaultDialer.Dial(c.URL, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", c.URL, err)
	}
	defer conn.Close()

	logger.Info("Watching table", "url", c.URL)

	ctx, cancel := signalContext()
	defer cancel()
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("connection closed: %w", err)
		}

		var msg server.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			logger.Debug("Skipping unreadable message", "error", err)
			continue
		}

		fmt.Printf("%s  round=%s pot=%d players=%d\n",
			msg.Table.Name, msg.Table.Round, msg.Table.Pot, msg.Table.Players)
	}
}
