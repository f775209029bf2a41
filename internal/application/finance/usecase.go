package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/manyboliot2022/eynpro/internal/application/dto"
	"github.com/manyboliot2022/eynpro/internal/domain"
	"github.com/manyboliot2022/eynpro/internal/domain/entity"
	"github.com/manyboliot2022/eynpro/internal/domain/repository"
)

// Catégories par défaut des saisies manuelles.
const (
	catDepense = "Dépense"
	catRevenu  = "Revenu"
)

// UseCase cas d'usage du journal de caisse : saisies manuelles et agrégats de
// trésorerie. Les agrégats ne sont jamais stockés, ils sont recalculés par
// balayage complet du journal à chaque lecture.
type UseCase struct {
	txnRepo repository.TransactionRepository
}

// NewUseCase construit le cas d'usage.
func NewUseCase(txnRepo repository.TransactionRepository) *UseCase {
	return &UseCase{txnRepo: txnRepo}
}

// AddExpense enregistre un décaissement manuel (charge, achat, retrait).
func (uc *UseCase) AddExpense(in dto.AddEntryRequest) (*dto.TransactionResponse, error) {
	return uc.addEntry(in, entity.TransactionOut, catDepense)
}

// AddIncome enregistre un encaissement manuel hors point de vente.
func (uc *UseCase) AddIncome(in dto.AddEntryRequest) (*dto.TransactionResponse, error) {
	return uc.addEntry(in, entity.TransactionIn, catRevenu)
}

func (uc *UseCase) addEntry(in dto.AddEntryRequest, txnType, defaultCategory string) (*dto.TransactionResponse, error) {
	if in.Description == "" || in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	method := in.Method
	if method == "" {
		method = entity.PaymentCashGNF
	}
	if !entity.ValidPaymentMethod(method) {
		return nil, domain.ErrInvalidInput
	}
	category := in.Category
	if category == "" {
		category = defaultCategory
	}

	txn := &entity.Transaction{
		ID:          uuid.New().String(),
		Date:        time.Now(),
		Type:        txnType,
		Amount:      in.Amount,
		Method:      method,
		Description: in.Description,
		Category:    category,
	}
	if err := uc.txnRepo.Append(txn); err != nil {
		return nil, err
	}
	resp := toTransactionResponse(txn)
	return &resp, nil
}

// List retourne le journal complet, mouvement le plus récent en premier.
func (uc *UseCase) List() (*dto.TransactionListResponse, error) {
	txns, err := uc.txnRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(txns))
	for i := len(txns) - 1; i >= 0; i-- {
		items = append(items, toTransactionResponse(txns[i]))
	}
	return &dto.TransactionListResponse{Items: items, Total: len(items)}, nil
}

// Summary calcule les agrégats de trésorerie : total des encaissements, total
// des décaissements, résultat net et réservations en attente.
func (uc *UseCase) Summary() (*dto.FinanceSummaryResponse, error) {
	txns, err := uc.txnRepo.List()
	if err != nil {
		return nil, err
	}

	cashIn, cashOut := decimal.Zero, decimal.Zero
	var pending []dto.TransactionResponse
	for _, txn := range txns {
		switch txn.Type {
		case entity.TransactionIn:
			cashIn = cashIn.Add(txn.Amount)
		case entity.TransactionOut:
			cashOut = cashOut.Add(txn.Amount)
		}
		if txn.IsReservation {
			pending = append(pending, toTransactionResponse(txn))
		}
	}

	return &dto.FinanceSummaryResponse{
		CashIn:              cashIn,
		CashOut:             cashOut,
		NetProfit:           cashIn.Sub(cashOut),
		PendingReservations: pending,
	}, nil
}

func toTransactionResponse(txn *entity.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:            txn.ID,
		Date:          txn.Date,
		Type:          txn.Type,
		Amount:        txn.Amount,
		Method:        txn.Method,
		Description:   txn.Description,
		Category:      txn.Category,
		ClientID:      txn.ClientID,
		SupplierID:    txn.SupplierID,
		IsReservation: txn.IsReservation,
	}
}
