package dto

// CompanySettingsRequest sauvegarde du profil d'entreprise (écrasement en bloc).
type CompanySettingsRequest struct {
	Name       string `json:"name" validate:"required"`
	Tagline    string `json:"tagline"`
	PhoneGN    string `json:"phone_gn"`
	PhoneSN    string `json:"phone_sn"`
	WhatsApp   string `json:"whatsapp"`
	Socials    string `json:"socials"`
	MapAddress string `json:"map_address"`
	LogoURL    string `json:"logo_url"`
}

// CompanySettingsResponse profil d'entreprise.
type CompanySettingsResponse struct {
	Name       string `json:"name"`
	Tagline    string `json:"tagline"`
	PhoneGN    string `json:"phone_gn"`
	PhoneSN    string `json:"phone_sn"`
	WhatsApp   string `json:"whatsapp"`
	Socials    string `json:"socials"`
	MapAddress string `json:"map_address"`
	LogoURL    string `json:"logo_url"`
}
