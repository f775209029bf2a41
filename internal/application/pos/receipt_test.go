package pos

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	cas := []struct {
		montant int64
		attendu string
	}{
		{0, "0"},
		{500, "500"},
		{10200, "10 200"},
		{26520, "26 520"},
		{1234567, "1 234 567"},
	}
	for _, c := range cas {
		assert.Equal(t, c.attendu, FormatAmount(decimal.NewFromInt(c.montant)),
			"montant %d", c.montant)
	}
}

// Les montants non entiers sont arrondis à l'unité avant affichage.
func TestFormatAmount_Arrondi(t *testing.T) {
	assert.Equal(t, "10 201", FormatAmount(decimal.NewFromFloat(10200.5)))
}

func TestWhatsAppLink_EchappeLeTexte(t *testing.T) {
	link := WhatsAppLink("+224 625 245 350", "Bonjour\nTotal : 10 200 FG")
	assert.Equal(t, "https://wa.me/+224625245350?text=Bonjour%0ATotal+%3A+10+200+FG", link)
}
