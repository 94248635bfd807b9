package websocket

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/meetly/meeting_backend/utils"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// Global hub and engine instances
var (
	hub    *Hub
	engine *Engine
)

// Initialize the realtime core
func init() {
	registry := NewRoomRegistry()
	hub = NewHub(registry)
	engine = NewEngine(NewSessionDirectory(), registry, GormStore{}, hub)
	go hub.Run()
}

// HandleConnection authenticates and upgrades a websocket connection.
// Browsers cannot set an Authorization header on the upgrade request, so the
// JWT is carried in the token query parameter.
func HandleConnection(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token is required"})
		return
	}

	userID, err := utils.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	user, err := engine.store.FindUserByID(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("error upgrading connection: %v", err)
		return
	}

	sessionToken, err := engine.Connect(user)
	if err != nil {
		log.Printf("error creating session: %v", err)
		conn.Close()
		return
	}

	client := &Client{
		hub:    hub,
		engine: engine,
		conn:   conn,
		send:   make(chan []byte, 256),
		token:  sessionToken,
	}

	// Register client
	client.hub.register <- client

	// Start goroutines for reading and writing
	go client.readPump()
	go client.writePump()

	log.Printf("user %s connected with session %s", user.Name, sessionToken)
}
