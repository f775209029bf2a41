package repository

import "github.com/manyboliot2022/eynpro/internal/domain/entity"

// SettingsRepository port de persistance du profil d'entreprise (singleton).
type SettingsRepository interface {
	// Get retourne le profil enregistré, ou le profil par défaut si rien n'a
	// jamais été sauvegardé.
	Get() (*entity.CompanySettings, error)
	Save(settings *entity.CompanySettings) error
}
