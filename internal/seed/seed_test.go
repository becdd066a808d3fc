package seed

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadastro-rh/funcionarios/backend/internal/config"
	"github.com/cadastro-rh/funcionarios/backend/internal/repository"
	"github.com/cadastro-rh/funcionarios/backend/internal/store"
)

func TestInsertRandomEmployees(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Path = filepath.Join(t.TempDir(), "funcionarios_test.db")
	cfg.Database.OpenTimeout = 1

	db := store.NewDatabase(cfg)
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })

	repo := repository.NewRepository(cfg, db)

	inserted, err := InsertRandomEmployees(repo, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, inserted)

	employees, err := repo.GetAllEmployees()
	require.NoError(t, err)
	assert.Len(t, employees, 5)
}
