// Package contact accepts contact submissions. Missing required fields reject
// the request before any store call; a store failure downgrades to logging the
// payload and acknowledging anyway.
package contact

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"oyow/logger"
	"oyow/models"
	"oyow/store"
	"oyow/utils"
)

type Handler struct {
	Contacts store.ContactStore
}

func NewHandler(c store.ContactStore) *Handler {
	return &Handler{Contacts: c}
}

// Validate checks the required contact fields and returns the failed rules.
func Validate(c models.Contact) []models.FieldError {
	var errs []models.FieldError
	if c.Name == "" {
		errs = append(errs, models.FieldError{Field: "name", Message: "name is required"})
	}
	if c.Email == "" {
		errs = append(errs, models.FieldError{Field: "email", Message: "email is required"})
	}
	if c.Subject == "" {
		errs = append(errs, models.FieldError{Field: "subject", Message: "subject is required"})
	}
	if c.Message == "" {
		errs = append(errs, models.FieldError{Field: "message", Message: "message is required"})
	}
	return errs
}

func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var c models.Contact
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if fieldErrs := Validate(c); len(fieldErrs) > 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"error": "Missing required fields", "fields": fieldErrs})
		return
	}

	c.ContactID = utils.GetUUID()
	c.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(r.Context(), store.Timeout)
	defer cancel()

	if err := h.Contacts.Insert(ctx, c); err != nil {
		// The log line is the only retained trace of this submission.
		payload, _ := json.Marshal(c)
		logger.Log.Error().Err(err).RawJSON("contact", payload).Msg("contact not persisted, payload logged")
	} else {
		logger.Log.Info().Str("email", c.Email).Str("subject", c.Subject).Msg("contact submission saved")
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"message": "Message received. We will get back to you shortly.",
	})
}
