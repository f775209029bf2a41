package finance_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manyboliot2022/eynpro/internal/application/dto"
	"github.com/manyboliot2022/eynpro/internal/application/finance"
	"github.com/manyboliot2022/eynpro/internal/domain"
	"github.com/manyboliot2022/eynpro/internal/domain/entity"
	"github.com/manyboliot2022/eynpro/internal/infrastructure/bolt"
)

func newUseCase(t *testing.T) *finance.UseCase {
	t.Helper()
	store, err := bolt.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return finance.NewUseCase(bolt.NewTransactionRepository(store))
}

// ──────────────────────────────────────────────────────────────────────────────
// Agrégats de trésorerie
// ──────────────────────────────────────────────────────────────────────────────

// Quel que soit le journal, cashIn − cashOut == netProfit.
func TestSummary_ResultatNet(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.AddIncome(dto.AddEntryRequest{Description: "Vente comptoir", Amount: decimal.NewFromInt(150000)})
	require.NoError(t, err)
	_, err = uc.AddIncome(dto.AddEntryRequest{Description: "Acompte", Amount: decimal.NewFromInt(50000)})
	require.NoError(t, err)
	_, err = uc.AddExpense(dto.AddEntryRequest{Description: "Loyer", Amount: decimal.NewFromInt(80000)})
	require.NoError(t, err)

	s, err := uc.Summary()
	require.NoError(t, err)
	assert.True(t, s.CashIn.Equal(decimal.NewFromInt(200000)),
		"encaissements attendus 200000, obtenus %s", s.CashIn)
	assert.True(t, s.CashOut.Equal(decimal.NewFromInt(80000)),
		"décaissements attendus 80000, obtenus %s", s.CashOut)
	assert.True(t, s.NetProfit.Equal(s.CashIn.Sub(s.CashOut)),
		"le résultat net doit égaler encaissements moins décaissements")
	assert.Empty(t, s.PendingReservations)
}

// Un journal vide rend des agrégats à zéro, jamais une erreur.
func TestSummary_JournalVide(t *testing.T) {
	uc := newUseCase(t)

	s, err := uc.Summary()
	require.NoError(t, err)
	assert.True(t, s.CashIn.IsZero())
	assert.True(t, s.CashOut.IsZero())
	assert.True(t, s.NetProfit.IsZero())
}

// Les réservations non levées ressortent dans les agrégats.
func TestSummary_ReservationsEnAttente(t *testing.T) {
	store, err := bolt.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	txnRepo := bolt.NewTransactionRepository(store)
	require.NoError(t, txnRepo.Append(&entity.Transaction{
		ID:            "r1",
		Type:          entity.TransactionIn,
		Amount:        decimal.NewFromInt(30000),
		Method:        entity.PaymentOM,
		Description:   "Réservation Client",
		Category:      "Réservation",
		IsReservation: true,
	}))

	s, err := finance.NewUseCase(txnRepo).Summary()
	require.NoError(t, err)
	require.Len(t, s.PendingReservations, 1)
	assert.Equal(t, "r1", s.PendingReservations[0].ID)
	assert.True(t, s.CashIn.Equal(decimal.NewFromInt(30000)),
		"une réservation compte dans les encaissements")
}

// ──────────────────────────────────────────────────────────────────────────────
// Saisies manuelles
// ──────────────────────────────────────────────────────────────────────────────

// La dépense prend le moyen et la catégorie par défaut quand rien n'est fourni.
func TestAddExpense_ValeursParDefaut(t *testing.T) {
	uc := newUseCase(t)

	out, err := uc.AddExpense(dto.AddEntryRequest{Description: "Transport", Amount: decimal.NewFromInt(25000)})
	require.NoError(t, err)
	assert.Equal(t, "OUT", out.Type)
	assert.Equal(t, "CASH_GNF", out.Method)
	assert.Equal(t, "Dépense", out.Category)
	assert.NotEmpty(t, out.ID)
}

// Description vide, montant nul ou moyen de paiement inconnu : refusé.
func TestAddEntry_EntreesInvalides(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.AddExpense(dto.AddEntryRequest{Amount: decimal.NewFromInt(1000)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddIncome(dto.AddEntryRequest{Description: "Rien", Amount: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.AddIncome(dto.AddEntryRequest{Description: "Devise inconnue", Amount: decimal.NewFromInt(10), Method: "BTC"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Le journal est rendu mouvement le plus récent en premier.
func TestList_PlusRecentEnPremier(t *testing.T) {
	uc := newUseCase(t)

	_, err := uc.AddIncome(dto.AddEntryRequest{Description: "Premier", Amount: decimal.NewFromInt(100)})
	require.NoError(t, err)
	_, err = uc.AddIncome(dto.AddEntryRequest{Description: "Second", Amount: decimal.NewFromInt(200)})
	require.NoError(t, err)

	out, err := uc.List()
	require.NoError(t, err)
	require.Equal(t, 2, out.Total)
	assert.Equal(t, "Second", out.Items[0].Description)
	assert.Equal(t, "Premier", out.Items[1].Description)
}
