package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItemRequest ligne du panier POS. Le prix de vente est relu dans le
// catalogue au moment de l'encaissement, jamais fourni par le client HTTP.
type CartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CheckoutRequest validation d'une vente ou d'une réservation.
type CheckoutRequest struct {
	Items       []CartItemRequest `json:"items"`
	ClientID    string            `json:"client_id"`
	Method      string            `json:"method"`
	Reservation bool              `json:"reservation"`
}

// CheckoutResponse résultat d'un encaissement.
type CheckoutResponse struct {
	TransactionID string          `json:"transaction_id"`
	Date          time.Time       `json:"date"`
	Total         decimal.Decimal `json:"total"`
	Method        string          `json:"method"`
	Reservation   bool            `json:"reservation"`
}

// ShareRequest demande de partage d'un reçu ou d'un devis.
type ShareRequest struct {
	Items    []CartItemRequest `json:"items"`
	ClientID string            `json:"client_id"`
	Method   string            `json:"method"`
	Quote    bool              `json:"quote"`   // devis (pas de client requis) ou facture
	Channel  string            `json:"channel"` // whatsapp ou sms
}

// ShareResponse texte du reçu et lien profond prêt à ouvrir.
type ShareResponse struct {
	Text  string          `json:"text"`
	Link  string          `json:"link"`
	Total decimal.Decimal `json:"total"`
}
