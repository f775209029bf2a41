package dto

import (
	"time"

	"github.com/manyboliot2022/eynpro/internal/domain/entity"
)

// BackupFile sauvegarde complète du magasin de documents. Les collections sont
// sérialisées telles quelles : un export puis un import reproduit exactement
// l'état antérieur.
type BackupFile struct {
	Products     []*entity.Product       `json:"products"`
	Transactions []*entity.Transaction   `json:"transactions"`
	Clients      []*entity.Client        `json:"clients"`
	Suppliers    []*entity.Supplier      `json:"suppliers"`
	OrderHistory []*entity.Order         `json:"order_history"`
	Settings     *entity.CompanySettings `json:"settings,omitempty"`
	ExportDate   time.Time               `json:"export_date"`
}

// ImportResponse résultat d'une restauration.
type ImportResponse struct {
	Products     int  `json:"products"`
	Transactions int  `json:"transactions"`
	Clients      int  `json:"clients"`
	Suppliers    int  `json:"suppliers"`
	Orders       int  `json:"orders"`
	SettingsSet  bool `json:"settings_set"`
}
