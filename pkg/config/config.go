package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config regroupe la configuration de l'application (lecture via Viper depuis env et optionnellement fichier).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Store   StoreConfig
	Costing CostingConfig
}

// AppConfig configuration générale de l'application.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuration du serveur HTTP local.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr retourne l'adresse d'écoute (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig configuration du magasin de documents embarqué (bbolt).
type StoreConfig struct {
	Path string // chemin du fichier de données
}

// CostingConfig politique de marge du calculateur de coûts.
// Les paliers et la marge catalogue sont une politique commerciale, pas une
// constante du système : ils restent modifiables par configuration.
type CostingConfig struct {
	MarkupTiers   []decimal.Decimal
	CatalogMarkup decimal.Decimal
}

// Load lit la configuration depuis les variables d'environnement (et optionnellement un fichier).
// Les env vars ont priorité. Noms attendus : APP_ENV, HTTP_PORT, DATA_PATH, COSTING_MARKUP_TIERS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Optionnel : fichier de configuration (.env ou config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // on ignore l'erreur si absent

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // on ignore l'erreur si absent

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	costing, err := costingFromEnv(v)
	if err != nil {
		return nil, err
	}

	port, err := getInt(v, "HTTP_PORT", 8080)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "eynpro"),
		},
		HTTP: HTTPConfig{
			// Application mono-utilisateur : on n'écoute que localhost par défaut.
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: port,
		},
		Store: StoreConfig{
			Path: getString(v, "DATA_PATH", "eynpro.db"),
		},
		Costing: costing,
	}

	return cfg, nil
}

// costingFromEnv construit la politique de marge. COSTING_MARKUP_TIERS est une liste
// de fractions séparées par des virgules (ex. "0,0.2,0.3,0.5,1.0").
func costingFromEnv(v *viper.Viper) (CostingConfig, error) {
	cfg := CostingConfig{
		MarkupTiers:   defaultMarkupTiers(),
		CatalogMarkup: decimal.NewFromFloat(0.3),
	}

	if raw := getString(v, "COSTING_MARKUP_TIERS", ""); raw != "" {
		tiers := make([]decimal.Decimal, 0, 5)
		for _, part := range strings.Split(raw, ",") {
			d, err := decimal.NewFromString(strings.TrimSpace(part))
			if err != nil {
				return cfg, fmt.Errorf("COSTING_MARKUP_TIERS: palier invalide %q: %w", part, err)
			}
			tiers = append(tiers, d)
		}
		cfg.MarkupTiers = tiers
	}

	if raw := getString(v, "COSTING_DEFAULT_MARKUP", ""); raw != "" {
		d, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return cfg, fmt.Errorf("COSTING_DEFAULT_MARKUP invalide %q: %w", raw, err)
		}
		cfg.CatalogMarkup = d
	}

	return cfg, nil
}

func defaultMarkupTiers() []decimal.Decimal {
	return []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromFloat(0.2),
		decimal.NewFromFloat(0.3),
		decimal.NewFromFloat(0.5),
		decimal.NewFromFloat(1.0),
	}
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) (int, error) {
	if !v.IsSet(key) {
		return def, nil
	}
	switch raw := v.Get(key).(type) {
	case int:
		return raw, nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return 0, fmt.Errorf("%s: entier invalide %q: %w", key, raw, err)
		}
		return n, nil
	default:
		return v.GetInt(key), nil
	}
}
