// Package destinations is the destination CRUD surface. Responses use the
// {success, data|message, count?} envelope.
package destinations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"

	"oyow/logger"
	"oyow/models"
	"oyow/rdx"
	"oyow/store"
	"oyow/utils"
)

const listCacheKey = "destinations"

type Handler struct {
	Destinations store.DestinationStore
}

func NewHandler(d store.DestinationStore) *Handler {
	return &Handler{Destinations: d}
}

// Validate checks a destination before create/update.
func Validate(d models.Destination) []models.FieldError {
	var errs []models.FieldError
	if d.Name == "" {
		errs = append(errs, models.FieldError{Field: "name", Message: "name is required"})
	}
	if d.Location == "" {
		errs = append(errs, models.FieldError{Field: "location", Message: "location is required"})
	}
	if d.Rating < 0 || d.Rating > 5 {
		errs = append(errs, models.FieldError{Field: "rating", Message: "rating must be between 0 and 5"})
	}
	if d.Price < 0 {
		errs = append(errs, models.FieldError{Field: "price", Message: "price must not be negative"})
	}
	return errs
}

func (h *Handler) GetDestinations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), store.Timeout)
	defer cancel()

	if cached := rdx.Get(ctx, listCacheKey); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	dests, err := h.Destinations.FindActive(ctx)
	if err != nil {
		logger.Log.Error().Err(err).Msg("destination list failed")
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Error fetching destinations"})
		return
	}
	if dests == nil {
		dests = []models.Destination{}
	}

	body := utils.M{"success": true, "count": len(dests), "data": dests}
	if data, err := json.Marshal(body); err == nil {
		rdx.Set(ctx, listCacheKey, string(data))
	}
	utils.RespondWithJSON(w, http.StatusOK, body)
}

// GetDestinationOrSearch routes GET /api/destinations/search to the filtered
// search and everything else to the by-id lookup.
func (h *Handler) GetDestinationOrSearch(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if ps.ByName("id") == "search" {
		h.SearchDestinations(w, r, ps)
		return
	}
	h.GetDestination(w, r, ps)
}

func (h *Handler) GetDestination(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), store.Timeout)
	defer cancel()

	dest, err := h.Destinations.FindByID(ctx, ps.ByName("id"))
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"success": false, "message": "Destination not found"})
		return
	}
	if err != nil {
		logger.Log.Error().Err(err).Msg("destination lookup failed")
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Error fetching destination"})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": dest})
}

func (h *Handler) CreateDestination(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var dest models.Destination
	if err := json.NewDecoder(r.Body).Decode(&dest); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid request body"})
		return
	}
	if fieldErrs := Validate(dest); len(fieldErrs) > 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Error creating destination", "fields": fieldErrs})
		return
	}

	dest.DestinationID = utils.GetUUID()
	dest.IsActive = true

	ctx, cancel := context.WithTimeout(r.Context(), store.Timeout)
	defer cancel()

	if err := h.Destinations.Insert(ctx, dest); err != nil {
		logger.Log.Error().Err(err).Msg("destination create failed")
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Error creating destination"})
		return
	}
	rdx.Del(ctx, listCacheKey)
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "data": dest})
}

func (h *Handler) UpdateDestination(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var dest models.Destination
	if err := json.NewDecoder(r.Body).Decode(&dest); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid request body"})
		return
	}
	if fieldErrs := Validate(dest); len(fieldErrs) > 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Error updating destination", "fields": fieldErrs})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), store.Timeout)
	defer cancel()

	updated, err := h.Destinations.Update(ctx, ps.ByName("id"), dest)
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"success": false, "message": "Destination not found"})
		return
	}
	if err != nil {
		logger.Log.Error().Err(err).Msg("destination update failed")
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Error updating destination"})
		return
	}
	rdx.Del(ctx, listCacheKey)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": updated})
}

func (h *Handler) DeleteDestination(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), store.Timeout)
	defer cancel()

	err := h.Destinations.SoftDelete(ctx, ps.ByName("id"))
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"success": false, "message": "Destination not found"})
		return
	}
	if err != nil {
		logger.Log.Error().Err(err).Msg("destination delete failed")
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Error deleting destination"})
		return
	}
	rdx.Del(ctx, listCacheKey)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "message": "Destination deleted successfully"})
}

func (h *Handler) SearchDestinations(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	filter, err := ParseFilter(r.URL.Query().Get("name"), r.URL.Query().Get("location"),
		r.URL.Query().Get("minRating"), r.URL.Query().Get("maxPrice"))
	if err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), store.Timeout)
	defer cancel()

	dests, err := h.Destinations.Search(ctx, filter)
	if err != nil {
		logger.Log.Error().Err(err).Msg("destination search failed")
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Error searching destinations"})
		return
	}
	if dests == nil {
		dests = []models.Destination{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "count": len(dests), "data": dests})
}

// ParseFilter builds a search filter from the raw query values. All filters
// are optional and combine with AND semantics.
func ParseFilter(name, location, minRating, maxPrice string) (store.DestinationFilter, error) {
	filter := store.DestinationFilter{Name: name, Location: location}
	if minRating != "" {
		v, err := strconv.ParseFloat(minRating, 64)
		if err != nil {
			return filter, errors.New("minRating must be a number")
		}
		filter.MinRating = &v
	}
	if maxPrice != "" {
		v, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil {
			return filter, errors.New("maxPrice must be a number")
		}
		filter.MaxPrice = &v
	}
	return filter, nil
}
