package status

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"oyow/db"
	"oyow/utils"
)

// GetStatus reports whether the document store currently answers a ping.
func GetStatus(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	database := "Disconnected"
	health := "unhealthy"
	if db.Ping(ctx) {
		database = "Connected"
		health = "healthy"
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"database":  database,
		"status":    health,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
