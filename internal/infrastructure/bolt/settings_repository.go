package bolt

import (
	"go.etcd.io/bbolt"

	"github.com/manyboliot2022/eynpro/internal/domain/entity"
	"github.com/manyboliot2022/eynpro/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implémentation du profil d'entreprise (document singleton).
type SettingsRepo struct {
	exec Executor
}

// NewSettingsRepository construit l'adaptateur. Passer le Store ou un Executor lié à une tx.
func NewSettingsRepository(exec Executor) *SettingsRepo {
	return &SettingsRepo{exec: exec}
}

// Get retourne le profil enregistré, ou le profil par défaut tant que rien n'a
// été sauvegardé.
func (r *SettingsRepo) Get() (*entity.CompanySettings, error) {
	var stored *entity.CompanySettings
	err := r.exec.View(func(tx *bbolt.Tx) error {
		return readDoc(tx, docSettings, &stored)
	})
	if err != nil {
		return nil, err
	}
	if stored == nil {
		def := entity.DefaultCompanySettings()
		return &def, nil
	}
	return stored, nil
}

// Save écrase le profil en bloc.
func (r *SettingsRepo) Save(settings *entity.CompanySettings) error {
	return r.exec.Update(func(tx *bbolt.Tx) error {
		return writeDoc(tx, docSettings, settings)
	})
}
