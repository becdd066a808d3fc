package store

import (
	"errors"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/cadastro-rh/funcionarios/backend/internal/config"
)

// ErrUnavailable indica que o banco ainda não terminou de abrir (ou a
// abertura falhou); quem chamou deve abortar a operação e reportar o erro.
var ErrUnavailable = errors.New("banco de dados indisponível")

// Database é o dono do arquivo bbolt. O handle só fica acessível depois que
// Open termina com sucesso, guardado por um estado explícito de prontidão.
type Database struct {
	cfg *config.Config

	mu    sync.RWMutex
	db    *bolt.DB
	ready bool
}

func NewDatabase(cfg *config.Config) *Database {
	return &Database{cfg: cfg}
}

// Open abre o arquivo do banco e executa a migração de esquema. Qualquer
// falha deixa o Database indisponível.
func (d *Database) Open() error {
	db, err := bolt.Open(d.cfg.Database.Path, 0o600, &bolt.Options{
		Timeout: time.Duration(d.cfg.Database.OpenTimeout) * time.Second,
	})
	if err != nil {
		return err
	}

	if err := db.Update(migrate); err != nil {
		db.Close()
		return err
	}

	d.mu.Lock()
	d.db = db
	d.ready = true
	d.mu.Unlock()

	return nil
}

// Handle devolve o handle vivo ou ErrUnavailable enquanto Open não tiver
// sido concluído.
func (d *Database) Handle() (*bolt.DB, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if !d.ready {
		return nil, ErrUnavailable
	}
	return d.db, nil
}

func (d *Database) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.ready {
		return nil
	}
	d.ready = false
	return d.db.Close()
}
