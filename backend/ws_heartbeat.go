package main

import (
	"time"

	"github.com/gorilla/websocket"
)

// clientPingInterval bounds how long a socket may sit idle before a ping
// frame goes out; intermediaries tend to drop connections that stay silent.
const clientPingInterval = 30 * time.Second

// pumpClientMessages is the single writer for one connection: it drains send
// until the channel closes and pings whenever the outbound side has been
// idle for a full interval.
func pumpClientMessages(conn *websocket.Conn, send <-chan []byte) error {
	idle := time.NewTimer(clientPingInterval)
	defer idle.Stop()
	ping := mustMarshal(wsMessage{Type: "ping"})

	for {
		select {
		case msg, open := <-send:
			if !open {
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			if !idle.Stop() {
				<-idle.C
			}
			idle.Reset(clientPingInterval)
		case <-idle.C:
			if err := conn.WriteMessage(websocket.TextMessage, ping); err != nil {
				return err
			}
			idle.Reset(clientPingInterval)
		}
	}
}
