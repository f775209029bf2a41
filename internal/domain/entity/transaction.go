package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sens d'une transaction de caisse.
const (
	TransactionIn  = "IN"  // encaissement
	TransactionOut = "OUT" // décaissement
)

// Moyens de paiement acceptés. Simple étiquette : aucune conversion de devise
// n'est faite, les montants restent dans la devise saisie.
const (
	PaymentOM      = "OM"       // Orange Money
	PaymentMTN     = "MTN"      // Moov / MTN Money
	PaymentCashGNF = "CASH_GNF" // espèces franc guinéen
	PaymentUSD     = "USD"
	PaymentEUR     = "EUR"
	PaymentCFA     = "CFA"
)

// ValidPaymentMethod indique si l'étiquette de paiement est connue.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentOM, PaymentMTN, PaymentCashGNF, PaymentUSD, PaymentEUR, PaymentCFA:
		return true
	}
	return false
}

// Transaction représente un mouvement de caisse. Le journal est strictement
// append-only : une transaction n'est jamais modifiée ni supprimée par le cœur.
type Transaction struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	Type          string          `json:"type"` // TransactionIn ou TransactionOut
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	ClientID      string          `json:"clientId,omitempty"`
	SupplierID    string          `json:"supplierId,omitempty"`
	IsReservation bool            `json:"isReservation,omitempty"`
	DeliveryDate  *time.Time      `json:"deliveryDate,omitempty"`
}
