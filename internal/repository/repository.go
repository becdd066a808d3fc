package repository

import (
	"errors"

	"github.com/cadastro-rh/funcionarios/backend/internal/config"
	"github.com/cadastro-rh/funcionarios/backend/internal/store"
)

var (
	// ErrNotFound indica que não existe registro com o id pedido.
	ErrNotFound = errors.New("funcionário não encontrado")
	// ErrIteration envolve falhas no meio da varredura da listagem. As
	// linhas já emitidas não são retiradas; basta listar de novo.
	ErrIteration = errors.New("falha ao percorrer os registros")
)

type Repository struct {
	cfg *config.Config
	db  *store.Database
}

func NewRepository(cfg *config.Config, db *store.Database) *Repository {
	return &Repository{
		cfg: cfg,
		db:  db,
	}
}
