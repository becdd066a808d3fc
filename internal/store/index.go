package store

import (
	"encoding/binary"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/cadastro-rh/funcionarios/backend/internal/domain"
)

// ConstraintError sinaliza colisão em um índice único. O campo fica
// disponível para o log de diagnóstico; a mensagem exibida ao usuário é
// sempre a falha genérica da operação.
type ConstraintError struct {
	Field string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("índice único violado no campo %s", e.Field)
}

// Records devolve o bucket de registros dentro da transação.
func Records(tx *bolt.Tx) *bolt.Bucket {
	return tx.Bucket(bucketEmployees)
}

// Key codifica um id como chave de 8 bytes big-endian, preservando a ordem
// crescente na varredura do cursor.
func Key(id int64) []byte {
	return itob(uint64(id))
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func btoi(b []byte) uint64 {
	return binary.BigEndian.Uint64(b)
}

// Em índices não únicos a chave é valor||0x00||id, permitindo valores
// repetidos apontando para registros diferentes.
func nonUniqueKey(value []byte, id uint64) []byte {
	key := make([]byte, 0, len(value)+9)
	key = append(key, value...)
	key = append(key, 0x00)
	return append(key, itob(id)...)
}

// CheckUnique verifica todos os índices únicos para o registro. Colisões
// com o próprio id não contam, o que permite a sobrescrita no update.
func CheckUnique(tx *bolt.Tx, e *domain.Employee) error {
	for _, spec := range indexes {
		if !spec.Unique {
			continue
		}
		existing := tx.Bucket(indexBucketName(spec.Field)).Get([]byte(spec.Value(e)))
		if existing != nil && int64(btoi(existing)) != e.ID {
			return &ConstraintError{Field: spec.Field}
		}
	}
	return nil
}

// AddIndexEntries insere as entradas de índice do registro. Deve rodar na
// mesma transação do put do registro para a escrita ser atômica.
func AddIndexEntries(tx *bolt.Tx, e *domain.Employee) error {
	for _, spec := range indexes {
		if err := putIndexEntry(tx, spec, e); err != nil {
			return err
		}
	}
	return nil
}

// RemoveIndexEntries apaga as entradas de índice do registro, na mesma
// transação do delete (ou antes da regravação no update).
func RemoveIndexEntries(tx *bolt.Tx, e *domain.Employee) error {
	for _, spec := range indexes {
		bucket := tx.Bucket(indexBucketName(spec.Field))
		value := []byte(spec.Value(e))

		var err error
		if spec.Unique {
			err = bucket.Delete(value)
		} else {
			err = bucket.Delete(nonUniqueKey(value, uint64(e.ID)))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func putIndexEntry(tx *bolt.Tx, spec indexSpec, e *domain.Employee) error {
	bucket := tx.Bucket(indexBucketName(spec.Field))
	value := []byte(spec.Value(e))

	if spec.Unique {
		return bucket.Put(value, itob(uint64(e.ID)))
	}
	return bucket.Put(nonUniqueKey(value, uint64(e.ID)), nil)
}
