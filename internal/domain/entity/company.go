package entity

// CompanySettings configuration unique de l'entreprise (profil, contacts, logo).
// Une seule instance, écrasée en bloc à chaque sauvegarde.
type CompanySettings struct {
	Name       string `json:"name"`
	Tagline    string `json:"tagline"`
	PhoneGN    string `json:"phoneGn"`
	PhoneSN    string `json:"phoneSn"`
	WhatsApp   string `json:"whatsapp"`
	Socials    string `json:"socials"`
	MapAddress string `json:"mapAddress"`
	LogoURL    string `json:"logoUrl"`
}

// DefaultCompanySettings profil par défaut tant que l'utilisateur n'a rien enregistré.
func DefaultCompanySettings() CompanySettings {
	return CompanySettings{
		Name:       "Everything you need",
		Tagline:    "Your skin's new best friend",
		PhoneGN:    "+224 625245350",
		PhoneSN:    "+221 775889948",
		WhatsApp:   "+224 625245350",
		Socials:    "fmoriba2 et Everythinguned",
		MapAddress: "Conakry, Guinée",
		LogoURL:    "https://raw.githubusercontent.com/shadcn-ui/ui/main/apps/www/public/og.png",
	}
}
