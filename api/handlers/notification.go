package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// WebSocket upgrader
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust CORS as needed, e.g., check r.Header.Get("Origin")
	},
}

// UpdatesHub stores connected dashboard clients (clientId -> *websocket.Conn)
type UpdatesHub struct {
	clients map[string]*websocket.Conn
	mutex   sync.Mutex
}

var hub = &UpdatesHub{
	clients: make(map[string]*websocket.Conn),
	mutex:   sync.Mutex{},
}

// HandleUpdatesWebSocket is the WebSocket handler for the live record feed.
// Clinic dashboards connect here and receive an event every time a record
// is created, updated or deleted.
func HandleUpdatesWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().Errorf("WebSocket upgrade error: %v", err)
		return
	}

	clientID := r.URL.Query().Get("clientId")
	if clientID == "" {
		clientID = r.RemoteAddr
	}

	// Register client
	hub.mutex.Lock()
	hub.clients[clientID] = conn
	hub.mutex.Unlock()
	zap.S().Infof("client %s connected to /ws/updates", clientID)

	// Keep connection alive. The read loop errors on close frames and on
	// dropped connections alike, so deregistration happens here rather than
	// in a close handler.
	for {
		if _, _, err := conn.NextReader(); err != nil {
			break
		}
	}

	hub.mutex.Lock()
	delete(hub.clients, clientID)
	hub.mutex.Unlock()
	conn.Close()
	zap.S().Infof("client %s disconnected from /ws/updates", clientID)
}

// BroadcastRecordEvent pushes a record lifecycle event to all connected
// dashboard clients. Failed writes drop the client from the hub.
func BroadcastRecordEvent(eventType, recordID, patientID string) {
	hub.mutex.Lock()
	defer hub.mutex.Unlock()

	if len(hub.clients) == 0 {
		return
	}

	payload := map[string]interface{}{
		"event": eventType,
		"data": map[string]interface{}{
			"record_id":  recordID,
			"patient_id": patientID,
			"at":         time.Now().UTC().Format(time.RFC3339),
		},
	}

	for clientID, conn := range hub.clients {
		if err := conn.WriteJSON(payload); err != nil {
			zap.S().Warnf("error broadcasting record event to client %s: %v", clientID, err)
			delete(hub.clients, clientID)
			conn.Close()
		}
	}
}
