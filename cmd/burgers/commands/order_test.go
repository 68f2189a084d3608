package commands

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/burgers/internal/constants"
	"github.com/fivetwenty-io/burgers/pkg/burgers"
)

const orderJSON = `{"id":11,"burger_ids":[1,2],"time":"2024-05-01T18:00:00Z","table":4,"status":"pending","note":"no onions"}`

func TestNewOrderCommand(t *testing.T) {
	cmd := NewOrderCommand()
	assert.Equal(t, "order", cmd.Use)
	assert.Equal(t, "Manage orders", cmd.Short)

	subcommands := cmd.Commands()
	assert.Len(t, subcommands, 4)

	for _, name := range []string{"list", "get", "create", "update"} {
		assert.NotNil(t, findSubcommand(cmd, name), "subcommand %s should exist", name)
	}

	assert.Nil(t, findSubcommand(cmd, "delete"))

	update := findSubcommand(cmd, "update")
	for _, flagName := range []string{"burger-id", "time", "table", "status", "note"} {
		assert.NotNil(t, update.Flags().Lookup(flagName), "Flag %s should exist", flagName)
	}
}

func TestOrderListCommand(t *testing.T) {
	useServer(t, constants.FormatTable, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/order/", request.URL.Path)
		writeJSON(t, writer, http.StatusOK, "["+orderJSON+"]")
	})

	out, err := execute(t, NewOrderCommand(), "list")
	require.NoError(t, err)
	assert.Contains(t, out, "pending")
	assert.Contains(t, out, "1,2")
	assert.Contains(t, out, "2024-05-01T18:00:00Z")
	assert.Contains(t, out, "no onions")
}

func TestOrderGetCommand(t *testing.T) {
	useServer(t, constants.FormatJSON, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/order/11", request.URL.Path)
		writeJSON(t, writer, http.StatusOK, orderJSON)
	})

	out, err := execute(t, NewOrderCommand(), "get", "11")
	require.NoError(t, err)

	var order burgers.Order
	require.NoError(t, json.Unmarshal([]byte(out), &order))
	assert.Equal(t, 11, order.ID)
	assert.Equal(t, burgers.OrderStatusPending, order.Status)
	assert.Equal(t, "no onions", burgers.String(order.Note))
}

func TestOrderCreateCommand(t *testing.T) {
	t.Run("defaults status to pending", func(t *testing.T) {
		useServer(t, constants.FormatJSON, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, []interface{}{float64(1), float64(2)}, body["burger_ids"])
			assert.Equal(t, "2024-05-01T18:00:00Z", body["time"])
			assert.Equal(t, float64(4), body["table"])
			assert.Equal(t, "pending", body["status"])
			assert.Equal(t, "no onions", body["note"])

			writeJSON(t, writer, http.StatusCreated, orderJSON)
		})

		_, err := execute(t, NewOrderCommand(), "create",
			"--burger-id", "1,2", "--table", "4", "--time", "2024-05-01T18:00:00Z", "--note", "no onions")
		require.NoError(t, err)
	})

	t.Run("invalid status", func(t *testing.T) {
		useServer(t, constants.FormatJSON, func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no request expected")
		})

		_, err := execute(t, NewOrderCommand(), "create", "--burger-id", "1", "--status", "cancelled")
		require.ErrorIs(t, err, constants.ErrInvalidOrderStatus)
	})

	t.Run("invalid time", func(t *testing.T) {
		useServer(t, constants.FormatJSON, func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no request expected")
		})

		_, err := execute(t, NewOrderCommand(), "create", "--burger-id", "1", "--time", "6pm")
		require.ErrorIs(t, err, constants.ErrInvalidOrderTime)
	})

	t.Run("server side validation", func(t *testing.T) {
		useServer(t, constants.FormatJSON, func(writer http.ResponseWriter, request *http.Request) {
			writeJSON(t, writer, http.StatusUnprocessableEntity,
				`{"detail":[{"loc":["body","burger_ids",0],"msg":"burger 99 does not exist","type":"value_error"}]}`)
		})

		_, err := execute(t, NewOrderCommand(), "create", "--burger-id", "99")
		require.Error(t, err)
		assert.True(t, burgers.IsValidationError(err))
		assert.Contains(t, err.Error(), "body.burger_ids.0: burger 99 does not exist")
	})
}

func TestOrderUpdateCommand(t *testing.T) {
	t.Run("sends only changed fields", func(t *testing.T) {
		useServer(t, constants.FormatJSON, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPatch, request.Method)
			assert.Equal(t, "/order/11", request.URL.Path)

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, map[string]interface{}{"status": "ready", "table": float64(0)}, body)

			writeJSON(t, writer, http.StatusOK, orderJSON)
		})

		_, err := execute(t, NewOrderCommand(), "update", "11", "--status", "ready", "--table", "0")
		require.NoError(t, err)
	})

	t.Run("nothing to update", func(t *testing.T) {
		useServer(t, constants.FormatJSON, func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no request expected")
		})

		_, err := execute(t, NewOrderCommand(), "update", "11")
		require.ErrorIs(t, err, constants.ErrNothingToUpdate)
	})

	t.Run("invalid id", func(t *testing.T) {
		useServer(t, constants.FormatJSON, func(writer http.ResponseWriter, request *http.Request) {
			t.Error("no request expected")
		})

		_, err := execute(t, NewOrderCommand(), "update", "-1", "--table", "2")
		require.Error(t, err)
	})
}
