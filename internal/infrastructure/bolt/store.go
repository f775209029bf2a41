package bolt

import (
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/manyboliot2022/eynpro/internal/domain"
)

// Executor abstrait l'exécution sur la base ou sur une transaction déjà ouverte
// (équivalent du Querier pool-ou-tx côté SQL). Les repositories en dépendent
// pour être utilisables seuls ou liés à une transaction du TxRunner.
type Executor interface {
	View(fn func(tx *bbolt.Tx) error) error
	Update(fn func(tx *bbolt.Tx) error) error
}

// Toutes les collections vivent en documents JSON complets dans un seul bucket,
// une clé par collection : le pendant du namespace localStorage de référence.
var bucketDocuments = []byte("documents")

// Clés des documents persistés.
const (
	docProducts     = "products"
	docTransactions = "transactions"
	docClients      = "clients"
	docSuppliers    = "suppliers"
	docOrderHistory = "order_history"
	docSettings     = "company_settings"
)

var _ Executor = (*Store)(nil)

// Store magasin de documents embarqué sur bbolt. Mono-utilisateur : un seul
// fichier, ouvert en exclusivité.
type Store struct {
	db *bbolt.DB
}

// Open ouvre (ou crée) le fichier de données et garantit le bucket des documents.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("ouvrir le fichier de données %q: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketDocuments)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialiser le bucket documents: %w", err)
	}
	return &Store{db: db}, nil
}

// Close ferme le fichier de données.
func (s *Store) Close() error {
	return s.db.Close()
}

// View exécute fn dans une transaction en lecture seule.
func (s *Store) View(fn func(tx *bbolt.Tx) error) error {
	return s.db.View(fn)
}

// Update exécute fn dans une transaction en écriture.
func (s *Store) Update(fn func(tx *bbolt.Tx) error) error {
	return s.db.Update(fn)
}

var _ Executor = txExecutor{}

// txExecutor lie un repository à une transaction déjà ouverte (voir TxRunner).
type txExecutor struct {
	tx *bbolt.Tx
}

func (e txExecutor) View(fn func(tx *bbolt.Tx) error) error   { return fn(e.tx) }
func (e txExecutor) Update(fn func(tx *bbolt.Tx) error) error { return fn(e.tx) }

// readDoc décode le document key dans v. Un document absent laisse v inchangé
// (collection vide) ; un document illisible remonte ErrDocumentCorrompu au lieu
// d'être silencieusement réinitialisé.
func readDoc(tx *bbolt.Tx, key string, v any) error {
	b := tx.Bucket(bucketDocuments)
	if b == nil {
		return nil
	}
	raw := b.Get([]byte(key))
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("document %q: %w (%v)", key, domain.ErrDocumentCorrompu, err)
	}
	return nil
}

// writeDoc remplace le document key en bloc. L'atomicité vient de la
// transaction bbolt englobante : un lecteur ne voit jamais un document partiel.
func writeDoc(tx *bbolt.Tx, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoder le document %q: %w", key, err)
	}
	b := tx.Bucket(bucketDocuments)
	if b == nil {
		return fmt.Errorf("bucket documents absent")
	}
	if err := b.Put([]byte(key), raw); err != nil {
		return fmt.Errorf("écrire le document %q: %w", key, err)
	}
	return nil
}
