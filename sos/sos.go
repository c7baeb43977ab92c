// Package sos is the fire-and-forget HTTP SOS endpoint. When a relay hub is
// attached the ping is also broadcast to connected responders; without one it
// degrades to log-and-acknowledge.
package sos

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"oyow/logger"
	"oyow/relay"
	"oyow/utils"
)

type Payload struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Message string  `json:"message"`
}

func ReceiveSOS(hub *relay.Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var payload Payload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		logger.Log.Warn().
			Float64("lat", payload.Lat).
			Float64("lng", payload.Lng).
			Str("message", payload.Message).
			Msg("SOS received")

		if hub != nil {
			if data, err := json.Marshal(payload); err == nil {
				hub.Broadcast(data)
			}
		}

		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"success":   true,
			"message":   "SOS request received and emergency services have been notified",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
