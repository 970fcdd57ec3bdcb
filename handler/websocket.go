package handler

import (
	"oneclickticket/event"
	"oneclickticket/utils"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// feedEntities maps the route segment to the entity name used in change events.
var feedEntities = map[string]string{
	"Bookings": "booking",
	"Cinemas":  "cinema",
	"Movies":   "movie",
}

// ChangeFeedUpgrade admits websocket upgrades for a known entity.
func ChangeFeedUpgrade(c *fiber.Ctx) error {
	entity, ok := feedEntities[c.Params("entity")]
	if !ok {
		return utils.NotFound(c)
	}
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	c.Locals("feedEntity", entity)
	return c.Next()
}

// ChangeFeed pushes every create, edit and delete of one entity to the socket
// until the client goes away.
func ChangeFeed(c *websocket.Conn) {
	entity, _ := c.Locals("feedEntity").(string)
	changes, unsubscribe := event.Live.Subscribe(entity)
	defer func() {
		unsubscribe()
		c.Close()
	}()

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case change := <-changes:
			if err := c.WriteJSON(change); err != nil {
				return
			}
		case <-gone:
			return
		}
	}
}
