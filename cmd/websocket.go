package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	wsReadLimit     = 1 << 20
	wsReadDeadline  = 120 * time.Second
	wsWriteDeadline = 5 * time.Second
	wsPingInterval  = 15 * time.Second
)

type inventoryEvent struct {
	Type string    `json:"type"`
	At   time.Time `json:"at"`
}

// ChangeFeed fans one event per listing mutation out to every connected
// client so open inventory views re-aggregate.
type ChangeFeed struct {
	errorLog   *log.Logger
	clients    map[*websocket.Conn]bool
	broadcast  chan inventoryEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
}

func NewChangeFeed(errorLog *log.Logger) *ChangeFeed {
	return &ChangeFeed{
		errorLog:   errorLog,
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan inventoryEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// InventoryChanged implements services.Notifier. The event is queued so a
// slow subscriber never blocks the mutation path.
func (f *ChangeFeed) InventoryChanged() {
	select {
	case f.broadcast <- inventoryEvent{Type: "inventory_changed", At: time.Now()}:
	default:
		f.errorLog.Println("change feed queue full, event dropped")
	}
}

// All operations on clients happen only here.
func (f *ChangeFeed) Run() {
	for {
		select {
		case conn := <-f.register:
			f.clients[conn] = true

		case conn := <-f.unregister:
			if _, ok := f.clients[conn]; ok {
				conn.Close()
				delete(f.clients, conn)
			}

		case event := <-f.broadcast:
			for conn := range f.clients {
				conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
				if err := conn.WriteJSON(event); err != nil {
					f.errorLog.Printf("change feed write: %v", err)
					conn.Close()
					delete(f.clients, conn)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (app *application) ChangeFeedHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		app.errorLog.Printf("ws upgrade: %v", err)
		return
	}

	conn.SetReadLimit(wsReadLimit)
	conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsReadDeadline))
	})

	app.changeFeed.register <- conn

	go func() {
		ticker := time.NewTicker(wsPingInterval)
		defer ticker.Stop()
		for range ticker.C {
			conn.SetWriteDeadline(time.Now().Add(wsWriteDeadline))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}()

	// drain until the client goes away
	go func() {
		defer func() { app.changeFeed.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
