package middleware

import "github.com/gin-gonic/gin"

// actorHeader names the acting user for audit fields. There is no
// authentication layer; callers identify themselves for traceability only.
const actorHeader = "X-Actor-ID"

const defaultActor = "system"

// ActorMiddleware resolves the acting user's ID from the request header and
// stores it in the context for handlers to stamp audit fields with.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.GetHeader(actorHeader)
		if actor == "" {
			actor = defaultActor
		}
		SetUserIDInContext(c, actor)
		c.Next()
	}
}
