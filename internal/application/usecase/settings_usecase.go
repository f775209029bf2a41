package usecase

import (
	"strings"

	"github.com/manyboliot2022/eynpro/internal/application/dto"
	"github.com/manyboliot2022/eynpro/internal/domain"
	"github.com/manyboliot2022/eynpro/internal/domain/entity"
	"github.com/manyboliot2022/eynpro/internal/domain/repository"
)

// SettingsUseCase lecture et sauvegarde du profil d'entreprise (singleton,
// écrasé en bloc).
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construit le cas d'usage.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get retourne le profil courant (valeurs par défaut si jamais sauvegardé).
func (uc *SettingsUseCase) Get() (*dto.CompanySettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

// Save écrase le profil en bloc. Le nom de l'entreprise est requis.
func (uc *SettingsUseCase) Save(in dto.CompanySettingsRequest) (*dto.CompanySettingsResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	settings := &entity.CompanySettings{
		Name:       in.Name,
		Tagline:    in.Tagline,
		PhoneGN:    in.PhoneGN,
		PhoneSN:    in.PhoneSN,
		WhatsApp:   in.WhatsApp,
		Socials:    in.Socials,
		MapAddress: in.MapAddress,
		LogoURL:    in.LogoURL,
	}
	if err := uc.repo.Save(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.CompanySettings) *dto.CompanySettingsResponse {
	return &dto.CompanySettingsResponse{
		Name:       s.Name,
		Tagline:    s.Tagline,
		PhoneGN:    s.PhoneGN,
		PhoneSN:    s.PhoneSN,
		WhatsApp:   s.WhatsApp,
		Socials:    s.Socials,
		MapAddress: s.MapAddress,
		LogoURL:    s.LogoURL,
	}
}
