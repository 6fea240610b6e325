package middleware

import (
	"net/http"
	"strconv"

	"tasktracker/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

// UserIDHeader carries the authenticated user id, set by the auth proxy in
// front of the service.
const (
	UserIDHeader = "X-User-ID"
	actorKey     = "actor_id"
)

// ActorMiddleware rejects requests without a valid acting user.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.GetHeader(UserIDHeader), 10, 64)
		if err != nil || userID == 0 {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgMissingUser, GetLang(c)),
			)
			return
		}
		c.Set(actorKey, userID)
		c.Next()
	}
}

func GetActorID(c *gin.Context) uint64 {
	if value, exists := c.Get(actorKey); exists {
		if id, ok := value.(uint64); ok {
			return id
		}
	}
	return 0
}
