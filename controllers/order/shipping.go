package orderControllers

// Delivery methods accepted at checkout.
const (
	DeliveryStandard = "standard"
	DeliveryExpress  = "express"
)

// Standard delivery is free above the threshold; express is always flat.
const (
	StandardShippingFee   = 100.0
	FreeShippingThreshold = 2000.0
	ExpressShippingFee    = 150.0
)

// ShippingCost depends only on the delivery method and the subtotal.
func ShippingCost(deliveryMethod string, subtotal float64) float64 {
	if deliveryMethod == DeliveryExpress {
		return ExpressShippingFee
	}
	if subtotal > FreeShippingThreshold {
		return 0
	}
	return StandardShippingFee
}
