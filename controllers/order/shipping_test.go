package orderControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShippingCost(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		subtotal float64
		want     float64
	}{
		{"express is flat regardless of subtotal", DeliveryExpress, 100, ExpressShippingFee},
		{"express stays flat above threshold", DeliveryExpress, 5000, ExpressShippingFee},
		{"standard below threshold", DeliveryStandard, 1999, StandardShippingFee},
		{"standard at threshold still pays", DeliveryStandard, 2000, StandardShippingFee},
		{"standard above threshold is free", DeliveryStandard, 2000.01, 0},
		{"standard far above threshold is free", DeliveryStandard, 99999, 0},
		{"empty subtotal", DeliveryStandard, 0, StandardShippingFee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShippingCost(tt.method, tt.subtotal))
		})
	}
}
