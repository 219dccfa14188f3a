package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderRequestLines(t *testing.T) {
	req := CreateOrderRequest{
		CustomerID: 1,
		Items: []OrderItemRequest{
			{PizzaID: 3, Quantity: 2},
			{PizzaID: 4, Quantity: 1},
		},
	}

	assert.Equal(t, []OrderLine{{PizzaID: 3, Quantity: 2}, {PizzaID: 4, Quantity: 1}}, req.Lines())
}

func TestPriceEncodesAsNumber(t *testing.T) {
	pizza := Pizza{ID: 1, Name: "Quatro Queijos", Size: "G", Price: decimal.RequireFromString("39.90")}

	out, err := json.Marshal(pizza)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"nome":"Quatro Queijos","tamanho":"G","preco":39.9}`, string(out))

	var req CreatePizzaRequest
	require.NoError(t, json.Unmarshal([]byte(`{"nome":"Calabresa","tamanho":"M","preco":28.5}`), &req))
	require.NotNil(t, req.Price)
	assert.True(t, decimal.RequireFromString("28.50").Equal(*req.Price))
}

func TestOrderDetailJSON(t *testing.T) {
	detail := OrderDetail{
		OrderSummary: OrderSummary{
			Order:         Order{ID: 2, CustomerID: 1, Total: decimal.NewFromInt(40), Status: OrderStatusPending},
			CustomerName:  "Carla",
			CustomerEmail: "carla@example.com",
		},
		Items: []OrderItemDetail{},
	}

	out, err := json.Marshal(detail)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(out, &body))
	assert.Equal(t, float64(2), body["id"])
	assert.Equal(t, "Carla", body["usuario_nome"])
	assert.Equal(t, float64(40), body["total"])
	assert.NotContains(t, body, "Customer")
	assert.Contains(t, body, "itens")
}
