package domain

import "errors"

// Erreurs de domaine (sans dépendances externes).
var (
	ErrNotFound           = errors.New("ressource introuvable")
	ErrInvalidInput       = errors.New("entrée invalide")
	ErrDuplicate          = errors.New("ressource dupliquée")
	ErrDocumentCorrompu   = errors.New("document persisté corrompu")
	ErrClientRequis       = errors.New("client requis")
	ErrPanierVide         = errors.New("panier vide")
	ErrSauvegardeInvalide = errors.New("fichier de sauvegarde invalide")
)
