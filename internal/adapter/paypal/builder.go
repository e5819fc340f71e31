package paypal

import (
	"fmt"
	"strings"

	"github.com/polkiloo/pawshope/internal/domain/model"
)

const intentCapture = "CAPTURE"

type orderRequest struct {
	Intent             string              `json:"intent"`
	PurchaseUnits      []purchaseUnit      `json:"purchase_units"`
	PaymentSource      *paymentSource      `json:"payment_source,omitempty"`
	ApplicationContext *applicationContext `json:"application_context,omitempty"`
}

type purchaseUnit struct {
	ReferenceID string `json:"reference_id"`
	Description string `json:"description"`
	Amount      money  `json:"amount"`
	Payee       *payee `json:"payee,omitempty"`
}

type money struct {
	CurrencyCode string `json:"currency_code"`
	Value        string `json:"value"`
}

type payee struct {
	EmailAddress string `json:"email_address"`
}

type paymentSource struct {
	Card *cardSource `json:"card,omitempty"`
}

type cardSource struct {
	ExperienceContext cardExperience `json:"experience_context"`
}

type cardExperience struct {
	PaymentMethodPreference string `json:"payment_method_preference"`
	BrandName               string `json:"brand_name"`
	Locale                  string `json:"locale"`
	LandingPage             string `json:"landing_page"`
	ShippingPreference      string `json:"shipping_preference"`
	UserAction              string `json:"user_action"`
}

type applicationContext struct {
	BrandName               string `json:"brand_name"`
	LandingPage             string `json:"landing_page"`
	UserAction              string `json:"user_action"`
	PaymentMethodPreference string `json:"payment_method_preference"`
	ShippingPreference      string `json:"shipping_preference"`
	ReturnURL               string `json:"return_url"`
	CancelURL               string `json:"cancel_url"`
}

func buildOrder(req model.CheckoutRequest) (orderRequest, error) {
	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = model.DefaultCurrency
	}

	places := model.CurrencyPlaces(currency)

	unit := purchaseUnit{
		ReferenceID: req.ReferenceID,
		Description: req.Description,
		Amount: money{
			CurrencyCode: currency,
			Value:        req.Amount.StringFixed(places),
		},
	}

	order := orderRequest{Intent: intentCapture}

	switch req.Method {
	case model.PaymentMethodCard:
		order.PaymentSource = &paymentSource{Card: &cardSource{ExperienceContext: cardExperience{
			PaymentMethodPreference: "IMMEDIATE_PAYMENT_REQUIRED",
			BrandName:               req.BrandName,
			Locale:                  "en-US",
			LandingPage:             "NO_PREFERENCE",
			ShippingPreference:      "NO_SHIPPING",
			UserAction:              "PAY_NOW",
		}}}
	case model.PaymentMethodAccount:
		if req.PayeeEmail != "" {
			unit.Payee = &payee{EmailAddress: req.PayeeEmail}
		}
		order.ApplicationContext = &applicationContext{
			BrandName:               req.BrandName,
			LandingPage:             "BILLING",
			UserAction:              "PAY_NOW",
			PaymentMethodPreference: "UNRESTRICTED",
			ShippingPreference:      "NO_SHIPPING",
			ReturnURL:               req.ReturnURL,
			CancelURL:               req.CancelURL,
		}
	default:
		return orderRequest{}, fmt.Errorf("unsupported payment method %q", req.Method)
	}

	order.PurchaseUnits = []purchaseUnit{unit}
	return order, nil
}
