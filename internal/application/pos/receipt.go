package pos

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/manyboliot2022/eynpro/internal/domain/entity"
)

// ReceiptLine ligne d'un reçu.
type ReceiptLine struct {
	Name     string
	Quantity int
	Amount   decimal.Decimal // prix de vente × quantité
}

// Receipt objet-valeur composé au moment du partage, jamais persisté.
// Le rendu est du texte brut remis à un canal de messagerie externe
// (lien WhatsApp ou composeur SMS) : le cœur ne possède aucun protocole.
type Receipt struct {
	Brand  entity.CompanySettings
	Lines  []ReceiptLine
	Total  decimal.Decimal
	Method string
	Quote  bool // devis plutôt que facture
}

// Render produit le texte du reçu : en-tête de marque, lignes, total, moyen de
// paiement, adresse et contacts en pied.
func (r Receipt) Render() string {
	var b strings.Builder

	b.WriteString("✨ " + strings.ToUpper(r.Brand.Name) + " ✨\n")
	b.WriteString("\"" + r.Brand.Tagline + "\"\n\n")
	if r.Quote {
		b.WriteString("📜 DEVIS\n")
	} else {
		b.WriteString("🧾 FACTURE\n")
	}
	b.WriteString("--------------------------\n")
	for _, line := range r.Lines {
		b.WriteString("- " + line.Name + " x" + strconv.Itoa(line.Quantity) + " : " + FormatAmount(line.Amount) + " FG\n")
	}
	b.WriteString("--------------------------\n")
	b.WriteString("TOTAL : " + FormatAmount(r.Total) + " FG\n")
	b.WriteString("Moyen : " + r.Method + "\n\n")

	if r.Brand.MapAddress != "" {
		b.WriteString("📍 Notre Adresse / Maps :\n" + r.Brand.MapAddress + "\n\n")
	}
	b.WriteString("📞 Contacts: " + r.Brand.PhoneGN + " / " + r.Brand.PhoneSN + "\n")
	b.WriteString("💬 WhatsApp: " + r.Brand.WhatsApp + "\n")
	if r.Brand.Socials != "" {
		b.WriteString("👻 Socials: " + r.Brand.Socials + "\n")
	}
	b.WriteString("\nMerci de votre confiance !")

	return b.String()
}

// WhatsAppLink lien profond wa.me pré-rempli avec le texte du reçu.
// Les espaces du numéro sont retirés (format wa.me).
func WhatsAppLink(phone, text string) string {
	number := strings.ReplaceAll(phone, " ", "")
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(text)
}

// SMSLink URI sms: pré-rempli. Le texte est échappé pour préserver les retours
// à la ligne.
func SMSLink(phone, text string) string {
	return "sms:" + phone + "?body=" + url.QueryEscape(text)
}

// FormatAmount affiche un montant arrondi à l'unité avec séparateur de
// milliers (10200 -> "10 200").
func FormatAmount(d decimal.Decimal) string {
	s := d.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
