package seed

import (
	"errors"
	"fmt"

	"github.com/cadastro-rh/funcionarios/backend/internal/repository"
	"github.com/cadastro-rh/funcionarios/backend/internal/store"
	"github.com/cadastro-rh/funcionarios/backend/internal/utils"
)

// InsertRandomEmployees insere n funcionários aleatórios pelo repositório.
// Colisões de índice único são sorteadas de novo, com um limite de
// tentativas para não rodar para sempre.
func InsertRandomEmployees(repo *repository.Repository, n int) (int, error) {
	inserted := 0
	attempts := 0

	for inserted < n {
		if attempts >= n*20 {
			return inserted, fmt.Errorf("muitas colisões ao gerar dados aleatórios (%d inseridos)", inserted)
		}
		attempts++

		e := utils.GenerateRandomEmployee()
		if err := repo.CreateEmployee(e); err != nil {
			var constraintErr *store.ConstraintError
			if errors.As(err, &constraintErr) {
				// Valor repetido, sorteia outro registro
				continue
			}
			return inserted, err
		}
		inserted++
	}

	return inserted, nil
}
