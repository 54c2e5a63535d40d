package models_test

import (
	"encoding/json"
	"testing"

	"globalbazaar/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestFlexInt_AcceptsNumberAndNumericString(t *testing.T) {
	var product models.Product

	// The upstream data set stores quantity as a string.
	err := json.Unmarshal([]byte(`{"name":"Mug","quantity":"50","minSellingQuantity":5}`), &product)
	assert.NoError(t, err)
	assert.Equal(t, 50, product.Quantity.Int())
	assert.Equal(t, 5, product.MinSellingQuantity.Int())

	err = json.Unmarshal([]byte(`{"name":"Mug","quantity": " 12 "}`), &product)
	assert.NoError(t, err)
	assert.Equal(t, 12, product.Quantity.Int())
}

func TestFlexInt_RejectsNonNumeric(t *testing.T) {
	var product models.Product

	err := json.Unmarshal([]byte(`{"quantity":"plenty"}`), &product)
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"quantity":12.7}`), &product)
	assert.Error(t, err)
}
