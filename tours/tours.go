// Package tours implements the degrading read path: listing falls back to the
// static catalog when the store errors or is empty, so the listing caller
// never sees a store failure.
package tours

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"oyow/catalog"
	"oyow/logger"
	"oyow/rdx"
	"oyow/store"
	"oyow/utils"
)

const listCacheKey = "tours"

type Handler struct {
	Tours store.TourStore
}

func NewHandler(tours store.TourStore) *Handler {
	return &Handler{Tours: tours}
}

// GetTours serves the active tours, degrading to the static catalog on store
// error or an empty result. An empty collection is indistinguishable from a
// degraded store here; that is the documented contract.
func (h *Handler) GetTours(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), store.Timeout)
	defer cancel()

	if cached := rdx.Get(ctx, listCacheKey); cached != "" {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cached))
		return
	}

	tours, err := h.Tours.FindActive(ctx)
	if err != nil {
		logger.Log.Warn().Err(err).Msg("store error, serving static catalog")
		utils.RespondWithJSON(w, http.StatusOK, catalog.Tours())
		return
	}
	if len(tours) == 0 {
		logger.Log.Warn().Msg("no tours in store, serving static catalog")
		utils.RespondWithJSON(w, http.StatusOK, catalog.Tours())
		return
	}

	// Cache only store-backed results, never the fallback.
	if data, err := json.Marshal(tours); err == nil {
		rdx.Set(ctx, listCacheKey, string(data))
	}
	utils.RespondWithJSON(w, http.StatusOK, tours)
}

// GetTour has no safe static substitute for a by-id lookup, so store errors
// surface as 500 and missing tours as 404.
func (h *Handler) GetTour(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), store.Timeout)
	defer cancel()

	tour, err := h.Tours.FindByID(ctx, ps.ByName("id"))
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondWithError(w, http.StatusNotFound, "Tour not found")
		return
	}
	if err != nil {
		logger.Log.Error().Err(err).Str("tourId", ps.ByName("id")).Msg("tour lookup failed")
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch tour")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tour)
}

// ResolvePrice finds the price for a tour id, consulting the store first and
// the static catalog second. ok is false only when the id exists in neither.
func ResolvePrice(ctx context.Context, tours store.TourStore, id string) (float64, bool) {
	tour, err := tours.FindByID(ctx, id)
	if err == nil {
		return tour.Price, true
	}
	if !errors.Is(err, store.ErrNotFound) {
		logger.Log.Warn().Err(err).Str("tourId", id).Msg("store error during price resolution, trying catalog")
	}
	if fallback, ok := catalog.FindByID(id); ok {
		return fallback.Price, true
	}
	return 0, false
}
