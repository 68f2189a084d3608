package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/burgers/pkg/burgers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBurgerClient_List(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/burger/", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		writeJSON(t, w, http.StatusOK, `[
			{"id": 1, "name": "Cheeseburger", "description": "A cheeseburger is a hamburger topped with cheese."},
			{"id": 2, "name": "Veggie"}
		]`)
	})

	list, err := client.Burger().List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].ID)
	assert.Equal(t, "Cheeseburger", list[0].Name)
	require.NotNil(t, list[0].Description)
	assert.Equal(t, "A cheeseburger is a hamburger topped with cheese.", *list[0].Description)
	assert.Nil(t, list[1].Description)
}

func TestBurgerClient_Get(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/burger/7", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		writeJSON(t, w, http.StatusOK, `{"id": 7, "name": "Double Smash"}`)
	})

	burger, err := client.Burger().Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, burger.ID)
	assert.Equal(t, "Double Smash", burger.Name)
}

func TestBurgerClient_Get_NotFound(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusNotFound, `{"detail": "Burger not found"}`)
	})

	burger, err := client.Burger().Get(context.Background(), 99)
	require.Error(t, err)
	assert.Nil(t, burger)
	assert.True(t, burgers.IsNotFound(err))
	assert.Contains(t, err.Error(), "getting burger")
	assert.Contains(t, err.Error(), "Burger not found")
}

func TestBurgerClient_Create(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/burger/", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Cheeseburger", body["name"])
		assert.Equal(t, "With cheddar", body["description"])

		writeJSON(t, w, http.StatusCreated, `{"id": 3, "name": "Cheeseburger", "description": "With cheddar"}`)
	})

	burger, err := client.Burger().Create(context.Background(), &burgers.BurgerCreate{
		Name:        "Cheeseburger",
		Description: burgers.Ptr("With cheddar"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, burger.ID)
	assert.Equal(t, "With cheddar", burgers.String(burger.Description))
}

func TestBurgerClient_Create_Validation(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not be sent")
	})

	_, err := client.Burger().Create(context.Background(), &burgers.BurgerCreate{})
	require.ErrorIs(t, err, burgers.ErrInvalidRequest)
	assert.Contains(t, err.Error(), "name is required")

	_, err = client.Burger().Create(context.Background(), nil)
	require.ErrorIs(t, err, burgers.ErrInvalidRequest)
}

func TestBurgerClient_Create_ServerValidation(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity,
			`{"detail": [{"loc": ["body", "name"], "msg": "field required", "type": "value_error.missing"}]}`)
	})

	_, err := client.Burger().Create(context.Background(), &burgers.BurgerCreate{Name: "x"})
	require.Error(t, err)
	assert.True(t, burgers.IsValidationError(err))
	assert.Contains(t, err.Error(), "body.name: field required")
}

func TestBurgerClient_Update(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/burger/3", r.URL.Path)
		assert.Equal(t, "PATCH", r.Method)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]interface{}{"description": "Now with bacon"}, body)

		writeJSON(t, w, http.StatusOK, `{"id": 3, "name": "Cheeseburger", "description": "Now with bacon"}`)
	})

	burger, err := client.Burger().Update(context.Background(), 3, &burgers.BurgerUpdate{
		Description: burgers.Ptr("Now with bacon"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Now with bacon", burgers.String(burger.Description))
}

func TestBurgerClient_Delete(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/burger/3", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.Burger().Delete(context.Background(), 3)
	require.NoError(t, err)
}
