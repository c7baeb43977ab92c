package tours

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oyow/models"
	"oyow/store"
)

var errStoreDown = errors.New("connection refused")

type fakeTourStore struct {
	tours []models.Tour
	err   error
}

func (f *fakeTourStore) FindActive(ctx context.Context) ([]models.Tour, error) {
	return f.tours, f.err
}

func (f *fakeTourStore) FindByID(ctx context.Context, id string) (models.Tour, error) {
	if f.err != nil {
		return models.Tour{}, f.err
	}
	for _, t := range f.tours {
		if t.TourID == id {
			return t, nil
		}
	}
	return models.Tour{}, store.ErrNotFound
}

func (f *fakeTourStore) ReplaceAll(ctx context.Context, tours []models.Tour) error {
	return f.err
}

func listTours(t *testing.T, st store.TourStore) (*httptest.ResponseRecorder, []models.Tour) {
	t.Helper()
	h := NewHandler(st)
	w := httptest.NewRecorder()
	h.GetTours(w, httptest.NewRequest(http.MethodGet, "/api/tours", nil), nil)

	var tours []models.Tour
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tours))
	return w, tours
}

func TestGetToursFallsBackWhenStoreUnreachable(t *testing.T) {
	w, tours := listTours(t, &fakeTourStore{err: errStoreDown})
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, tours, 3)
	assert.Equal(t, "Mountain Adventure", tours[0].Title)
}

func TestGetToursFallsBackWhenStoreEmpty(t *testing.T) {
	w, tours := listTours(t, &fakeTourStore{})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, tours, 3)
}

func TestGetToursPrefersStoreData(t *testing.T) {
	stored := []models.Tour{{TourID: "t-1", Title: "Lake Expedition", Price: 450, IsActive: true}}
	w, tours := listTours(t, &fakeTourStore{tours: stored})
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, tours, 1)
	assert.Equal(t, "Lake Expedition", tours[0].Title)
}

func getTour(h *Handler, id string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.GetTour(w, httptest.NewRequest(http.MethodGet, "/api/tours/"+id, nil),
		httprouter.Params{{Key: "id", Value: id}})
	return w
}

func TestGetTourNotFound(t *testing.T) {
	h := NewHandler(&fakeTourStore{tours: []models.Tour{{TourID: "t-1"}}})
	w := getTour(h, "nonexistent")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTourStoreErrorIsNotDegraded(t *testing.T) {
	h := NewHandler(&fakeTourStore{err: errStoreDown})
	w := getTour(h, "t-1")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetTourFound(t *testing.T) {
	h := NewHandler(&fakeTourStore{tours: []models.Tour{{TourID: "t-1", Title: "Lake Expedition"}}})
	w := getTour(h, "t-1")
	assert.Equal(t, http.StatusOK, w.Code)

	var tour models.Tour
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tour))
	assert.Equal(t, "Lake Expedition", tour.Title)
}

func TestResolvePrice(t *testing.T) {
	st := &fakeTourStore{tours: []models.Tour{{TourID: "t-1", Price: 450}}}

	price, ok := ResolvePrice(context.Background(), st, "t-1")
	require.True(t, ok)
	assert.Equal(t, float64(450), price)

	// Store miss falls through to the static catalog.
	price, ok = ResolvePrice(context.Background(), st, "1")
	require.True(t, ok)
	assert.Equal(t, float64(299), price)

	// Store error still consults the catalog.
	price, ok = ResolvePrice(context.Background(), &fakeTourStore{err: errStoreDown}, "1")
	require.True(t, ok)
	assert.Equal(t, float64(299), price)

	_, ok = ResolvePrice(context.Background(), st, "unknown")
	assert.False(t, ok)
}
