package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRequest_InputPrice(t *testing.T) {
	tests := []struct {
		name    string
		price   string
		want    *float64
		wantErr bool
	}{
		{name: "number", price: `12.5`, want: floatPtr(12.5)},
		{name: "numeric string", price: `" 89000 "`, want: floatPtr(89000)},
		{name: "column maximum", price: `9999999999.99`, want: floatPtr(9999999999.99)},
		{name: "absent", price: ``},
		{name: "null", price: `null`},
		{name: "empty string", price: `""`},
		{name: "word", price: `"cheap"`, wantErr: true},
		{name: "nan", price: `"NaN"`, wantErr: true},
		{name: "infinity", price: `"Inf"`, wantErr: true},
		{name: "negative infinity", price: `"-Infinity"`, wantErr: true},
		{name: "huge number", price: `1e300`, wantErr: true},
		{name: "past column range", price: `"10000000000"`, wantErr: true},
		{name: "negative past column range", price: `-10000000000`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := productRequest{ProductName: "Toner", Price: json.RawMessage(tt.price)}

			in, err := req.input()

			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidPrice)
				assert.Nil(t, in.Price)
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.Nil(t, in.Price)
				return
			}
			require.NotNil(t, in.Price)
			assert.Equal(t, *tt.want, *in.Price)
		})
	}
}

func floatPtr(f float64) *float64 { return &f }
