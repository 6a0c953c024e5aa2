package utils

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/shoplist/internal/model"
)

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	snack := "Snack"
	err := WriteJSON(&buf, []model.CategoryTotal{
		{Category: &snack, TotalCost: decimal.NewNullDecimal(decimal.RequireFromString("12.12"))},
		{Category: nil, TotalCost: decimal.NullDecimal{}},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"[\n\t{\n\t\t\"category\": \"Snack\",\n\t\t\"total_cost\": \"12.12\"\n\t},\n"+
			"\t{\n\t\t\"category\": null,\n\t\t\"total_cost\": null\n\t}\n]\n",
		buf.String())
}

func TestWriteJSON_Unsupported(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteJSON(&buf, make(chan int)))
	assert.Empty(t, buf.String())
}
