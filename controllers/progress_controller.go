package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Armand9999/fitness-app/config"
	"github.com/Armand9999/fitness-app/services"
)

// WeeklyProgress returns the current week's digest (pull path). A partial
// digest still comes back 200 with the partial flag set in the body.
func WeeklyProgress(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	weeklySvc := services.NewWeeklyService(config.DB)
	digest, err := weeklySvc.Digest(c.Request.Context(), user.ID, time.Now(), user.Location())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, digest)
}

type ProgressController struct {
	Hub *services.RealtimeHub
}

func NewProgressController(hub *services.RealtimeHub) *ProgressController {
	return &ProgressController{Hub: hub}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true }, // tighten behind a proxy if needed
}

// ProgressWS streams digest updates over a websocket (push path). The feed
// recomputes on change notifications and on the periodic fallback; the
// subscription and timer are released when the socket closes.
func (pc *ProgressController) ProgressWS(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	client := &services.WSClient{UserID: user.ID, Conn: conn}
	pc.Hub.Register(client)
	defer pc.Hub.Unregister(client)

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	feed := services.NewProgressFeed(services.NewWeeklyService(config.DB))

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = feed.Run(ctx, user.ID, user.Location(), func(digest services.WeekData) error {
			// fan out through the hub so every socket the user has open
			// sees the fresh digest
			pc.Hub.BroadcastDigest(user.ID, digest)
			return nil
		})
	}()

	// read loop ends on client close/error; cancelling the context tears
	// the feed and its subscriptions down
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	cancel()
	<-done
}
