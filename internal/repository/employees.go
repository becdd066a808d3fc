package repository

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/cadastro-rh/funcionarios/backend/internal/domain"
	"github.com/cadastro-rh/funcionarios/backend/internal/store"
)

// CreateEmployee insere o candidato em uma transação de escrita própria.
// O id é atribuído pela sequência do bucket e nunca vem de quem chamou.
func (r *Repository) CreateEmployee(e *domain.Employee) error {
	db, err := r.db.Handle()
	if err != nil {
		return err
	}

	return db.Update(func(tx *bolt.Tx) error {
		// O id ainda não existe, então nenhuma colisão pode ser com ele mesmo
		e.ID = 0
		if err := store.CheckUnique(tx, e); err != nil {
			return err
		}

		records := store.Records(tx)
		seq, err := records.NextSequence()
		if err != nil {
			return err
		}
		e.ID = int64(seq)

		raw, err := json.Marshal(e)
		if err != nil {
			return err
		}
		if err := records.Put(store.Key(e.ID), raw); err != nil {
			return err
		}

		return store.AddIndexEntries(tx, e)
	})
}

// ForEachEmployee percorre os registros em ordem crescente de id chamando
// fn para cada um. Cada chamada abre uma transação somente leitura nova,
// então a varredura pode ser reiniciada à vontade.
func (r *Repository) ForEachEmployee(fn func(*domain.Employee) error) error {
	db, err := r.db.Handle()
	if err != nil {
		return err
	}

	return db.View(func(tx *bolt.Tx) error {
		c := store.Records(tx).Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			e := &domain.Employee{}
			if err := json.Unmarshal(v, e); err != nil {
				return fmt.Errorf("%w: %v", ErrIteration, err)
			}
			if err := fn(e); err != nil {
				return fmt.Errorf("%w: %v", ErrIteration, err)
			}
		}
		return nil
	})
}

func (r *Repository) GetAllEmployees() ([]*domain.Employee, error) {
	employees := make([]*domain.Employee, 0)

	err := r.ForEachEmployee(func(e *domain.Employee) error {
		employees = append(employees, e)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) GetEmployeeByID(id int64) (*domain.Employee, error) {
	db, err := r.db.Handle()
	if err != nil {
		return nil, err
	}

	e := &domain.Employee{}
	err = db.View(func(tx *bolt.Tx) error {
		raw := store.Records(tx).Get(store.Key(id))
		if raw == nil {
			return ErrNotFound
		}
		return json.Unmarshal(raw, e)
	})
	if err != nil {
		return nil, err
	}

	return e, nil
}

// UpdateEmployee busca o registro, sobrepõe os campos presentes no patch e
// regrava o resultado, tudo na mesma transação de escrita. Campos ausentes
// do patch são preservados e o id nunca muda.
func (r *Repository) UpdateEmployee(id int64, patch *domain.EmployeePatch) (*domain.Employee, error) {
	db, err := r.db.Handle()
	if err != nil {
		return nil, err
	}

	merged := domain.Employee{}
	err = db.Update(func(tx *bolt.Tx) error {
		records := store.Records(tx)

		raw := records.Get(store.Key(id))
		if raw == nil {
			return ErrNotFound
		}

		current := domain.Employee{}
		if err := json.Unmarshal(raw, &current); err != nil {
			return err
		}

		merged = patch.Apply(current)
		merged.ID = id

		if err := store.CheckUnique(tx, &merged); err != nil {
			return err
		}
		if err := store.RemoveIndexEntries(tx, &current); err != nil {
			return err
		}

		raw, err := json.Marshal(&merged)
		if err != nil {
			return err
		}
		if err := records.Put(store.Key(id), raw); err != nil {
			return err
		}

		return store.AddIndexEntries(tx, &merged)
	})
	if err != nil {
		return nil, err
	}

	return &merged, nil
}

// DeleteEmployee remove o registro se ele existir; remover um id ausente
// não é erro, a remoção é idempotente por id.
func (r *Repository) DeleteEmployee(id int64) error {
	db, err := r.db.Handle()
	if err != nil {
		return err
	}

	return db.Update(func(tx *bolt.Tx) error {
		records := store.Records(tx)

		raw := records.Get(store.Key(id))
		if raw == nil {
			return nil
		}

		e := &domain.Employee{}
		if err := json.Unmarshal(raw, e); err != nil {
			return err
		}
		if err := store.RemoveIndexEntries(tx, e); err != nil {
			return err
		}

		return records.Delete(store.Key(id))
	})
}
