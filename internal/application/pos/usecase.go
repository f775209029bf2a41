package pos

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/manyboliot2022/eynpro/internal/application/dto"
	"github.com/manyboliot2022/eynpro/internal/domain"
	"github.com/manyboliot2022/eynpro/internal/domain/entity"
	"github.com/manyboliot2022/eynpro/internal/domain/repository"
)

// Descriptions et catégories affectées aux mouvements POS.
const (
	descVente       = "Vente POS"
	descReservation = "Réservation Client"
	catVente        = "Vente"
	catReservation  = "Réservation"
)

// UseCase cas d'usage du point de vente : encaissement d'une vente ou d'une
// réservation, et partage du reçu/devis par messagerie.
type UseCase struct {
	productRepo  repository.ProductRepository
	clientRepo   repository.ClientRepository
	txnRepo      repository.TransactionRepository
	settingsRepo repository.SettingsRepository
}

// NewUseCase construit le cas d'usage.
func NewUseCase(
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	txnRepo repository.TransactionRepository,
	settingsRepo repository.SettingsRepository,
) *UseCase {
	return &UseCase{
		productRepo:  productRepo,
		clientRepo:   clientRepo,
		txnRepo:      txnRepo,
		settingsRepo: settingsRepo,
	}
}

// Checkout valide une vente (ou une réservation) : le total est recalculé
// depuis les prix de vente courants du catalogue, puis une transaction IN est
// ajoutée au journal. Une réservation n'est jamais levée automatiquement par
// le cœur : sa clôture reste une action manuelle.
//
// Le stock n'est pas décrémenté ni verrouillé (pas de réservation d'inventaire,
// comportement de référence).
func (uc *UseCase) Checkout(in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	_, total, err := uc.priceCart(in.Items)
	if err != nil {
		return nil, err
	}

	method := in.Method
	if method == "" {
		method = entity.PaymentCashGNF
	}
	if !entity.ValidPaymentMethod(method) {
		return nil, domain.ErrInvalidInput
	}

	description, category := descVente, catVente
	if in.Reservation {
		description, category = descReservation, catReservation
	}

	txn := &entity.Transaction{
		ID:            uuid.New().String(),
		Date:          time.Now(),
		Type:          entity.TransactionIn,
		Amount:        total,
		Method:        method,
		Description:   description,
		Category:      category,
		ClientID:      in.ClientID,
		IsReservation: in.Reservation,
	}
	if err := uc.txnRepo.Append(txn); err != nil {
		return nil, err
	}

	return &dto.CheckoutResponse{
		TransactionID: txn.ID,
		Date:          txn.Date,
		Total:         total,
		Method:        method,
		Reservation:   in.Reservation,
	}, nil
}

// Share compose le reçu (ou le devis) en texte brut et le lien de messagerie
// prêt à ouvrir. Aucune mutation d'état : le partage échoue sans rien écrire.
//
// Une facture exige un client sélectionné ; un devis peut partir vers le
// numéro WhatsApp de l'entreprise (auto-envoi, comportement de référence).
func (uc *UseCase) Share(in dto.ShareRequest) (*dto.ShareResponse, error) {
	lines, total, err := uc.priceCart(in.Items)
	if err != nil {
		return nil, err
	}

	var client *entity.Client
	if in.ClientID != "" {
		client, err = uc.clientRepo.GetByID(in.ClientID)
		if err != nil {
			return nil, err
		}
	}
	if client == nil && !in.Quote {
		return nil, domain.ErrClientRequis
	}

	settings, err := uc.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	method := in.Method
	if method == "" {
		method = entity.PaymentCashGNF
	}

	receipt := Receipt{
		Brand:  *settings,
		Lines:  lines,
		Total:  total,
		Method: method,
		Quote:  in.Quote,
	}
	text := receipt.Render()

	var link string
	switch in.Channel {
	case "sms":
		phone := ""
		if client != nil {
			phone = client.Phone
		}
		link = SMSLink(phone, text)
	case "", "whatsapp":
		phone := settings.WhatsApp
		if client != nil && client.Phone != "" {
			phone = client.Phone
		}
		link = WhatsAppLink(phone, text)
	default:
		return nil, domain.ErrInvalidInput
	}

	return &dto.ShareResponse{Text: text, Link: link, Total: total}, nil
}

// priceCart relit chaque produit du panier dans le catalogue et calcule les
// montants de ligne au prix de vente courant.
func (uc *UseCase) priceCart(items []dto.CartItemRequest) ([]ReceiptLine, decimal.Decimal, error) {
	if len(items) == 0 {
		return nil, decimal.Zero, domain.ErrPanierVide
	}
	lines := make([]ReceiptLine, 0, len(items))
	total := decimal.Zero
	for _, it := range items {
		if it.Quantity < 1 {
			return nil, decimal.Zero, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(it.ProductID)
		if err != nil {
			return nil, decimal.Zero, err
		}
		if product == nil {
			return nil, decimal.Zero, domain.ErrNotFound
		}
		amount := product.SellPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		lines = append(lines, ReceiptLine{Name: product.Name, Quantity: it.Quantity, Amount: amount})
		total = total.Add(amount)
	}
	return lines, total, nil
}
