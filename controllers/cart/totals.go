package cartControllers

import "github.com/DSALAUDDIN/eshopNew-sub000/models"

// ItemsTotal is the sum of price × quantity over the cart.
func ItemsTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// ItemsCount is the sum of quantities, not the number of lines.
func ItemsCount(items []models.CartItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
