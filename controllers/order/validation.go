package orderControllers

import (
	"regexp"
	"strings"

	"github.com/DSALAUDDIN/eshopNew-sub000/models"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// Bangladeshi numbers with optional +880/880/0 prefix.
	phonePattern    = regexp.MustCompile(`^(\+880|880|0)?[1-9]\d{8,10}$`)
	phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

type AddressInput struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	District   string `json:"district"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type PlaceOrderRequest struct {
	CartToken             string       `json:"cart_token"`
	CustomerName          string       `json:"customer_name"`
	CustomerEmail         string       `json:"customer_email"`
	CustomerPhone         string       `json:"customer_phone"`
	BillingAddress        AddressInput `json:"billing_address"`
	ShippingSameAsBilling bool         `json:"shipping_same_as_billing"`
	ShippingAddress       AddressInput `json:"shipping_address"`
	DeliveryMethod        string       `json:"delivery_method"` // standard | express
	PaymentMethod         string       `json:"payment_method"`  // cod only; online is disabled
	Notes                 string       `json:"notes"`
}

// Validate runs the whole checkout rule set and returns field → message for
// every failure. An empty map means the request may proceed; nothing is
// submitted otherwise.
func (r PlaceOrderRequest) Validate() map[string]string {
	errs := make(map[string]string)

	required := map[string]string{
		"cart_token":                  r.CartToken,
		"customer_name":               r.CustomerName,
		"customer_email":              r.CustomerEmail,
		"customer_phone":              r.CustomerPhone,
		"billing_address.line1":       r.BillingAddress.Line1,
		"billing_address.city":        r.BillingAddress.City,
		"billing_address.postal_code": r.BillingAddress.PostalCode,
	}
	if !r.ShippingSameAsBilling {
		required["shipping_address.line1"] = r.ShippingAddress.Line1
		required["shipping_address.city"] = r.ShippingAddress.City
		required["shipping_address.postal_code"] = r.ShippingAddress.PostalCode
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			errs[field] = "This field is required"
		}
	}

	if _, ok := errs["customer_email"]; !ok && !emailPattern.MatchString(strings.TrimSpace(r.CustomerEmail)) {
		errs["customer_email"] = "Invalid email address"
	}
	if _, ok := errs["customer_phone"]; !ok {
		phone := phoneSeparators.Replace(strings.TrimSpace(r.CustomerPhone))
		if !phonePattern.MatchString(phone) {
			errs["customer_phone"] = "Invalid phone number"
		}
	}

	switch r.DeliveryMethod {
	case DeliveryStandard, DeliveryExpress:
	default:
		errs["delivery_method"] = "Delivery method must be standard or express"
	}

	switch r.PaymentMethod {
	case "cod":
	case "online":
		errs["payment_method"] = "Online payment is not available yet"
	default:
		errs["payment_method"] = "Payment method must be cod"
	}

	return errs
}

func (a AddressInput) toModel() models.Address {
	return models.Address{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		District:   a.District,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
