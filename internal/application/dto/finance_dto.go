package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddEntryRequest saisie manuelle d'un mouvement de caisse (charge ou encaissement).
type AddEntryRequest struct {
	Description string          `json:"description" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Method      string          `json:"method"`
	Category    string          `json:"category"`
}

// TransactionResponse mouvement du journal de caisse.
type TransactionResponse struct {
	ID            string          `json:"id"`
	Date          time.Time       `json:"date"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	ClientID      string          `json:"client_id,omitempty"`
	SupplierID    string          `json:"supplier_id,omitempty"`
	IsReservation bool            `json:"is_reservation,omitempty"`
}

// TransactionListResponse journal complet.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Total int                   `json:"total"`
}

// FinanceSummaryResponse agrégats de trésorerie, recalculés par balayage complet
// du journal à chaque lecture.
type FinanceSummaryResponse struct {
	CashIn              decimal.Decimal       `json:"cash_in"`
	CashOut             decimal.Decimal       `json:"cash_out"`
	NetProfit           decimal.Decimal       `json:"net_profit"`
	PendingReservations []TransactionResponse `json:"pending_reservations"`
}
