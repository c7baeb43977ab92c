package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oyow/models"
)

type fakeContactStore struct {
	inserted []models.Contact
	err      error
}

func (f *fakeContactStore) Insert(ctx context.Context, c models.Contact) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, c)
	return nil
}

func submit(h *Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.SubmitContact(w, httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body)), nil)
	return w
}

func TestSubmitContactMissingFieldsNeverHitsStore(t *testing.T) {
	st := &fakeContactStore{}
	h := NewHandler(st)

	w := submit(h, `{"name":"A"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, st.inserted)
}

func TestSubmitContactPersists(t *testing.T) {
	st := &fakeContactStore{}
	h := NewHandler(st)

	w := submit(h, `{"name":"Asha","email":"asha@example.com","subject":"Safari","message":"Do you run tours in May?","tourInterest":"4"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])

	require.Len(t, st.inserted, 1)
	assert.Equal(t, "Safari", st.inserted[0].Subject)
	assert.NotEmpty(t, st.inserted[0].ContactID)
}

func TestSubmitContactAcksWhenStoreDown(t *testing.T) {
	h := NewHandler(&fakeContactStore{err: errors.New("connection refused")})

	w := submit(h, `{"name":"Asha","email":"asha@example.com","subject":"Safari","message":"Hello"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}

func TestValidate(t *testing.T) {
	errs := Validate(models.Contact{Name: "A"})
	assert.Len(t, errs, 3)

	errs = Validate(models.Contact{Name: "A", Email: "a@b.c", Subject: "s", Message: "m"})
	assert.Empty(t, errs)
}
