package store

import (
	"bytes"
	"encoding/binary"
	"encoding/json"

	bolt "go.etcd.io/bbolt"

	"github.com/cadastro-rh/funcionarios/backend/internal/domain"
)

// Versão atual do esquema; deve ser incrementada sempre que o conjunto de
// índices mudar. A v1 tinha o índice de data_nascimento fora da lista.
const schemaVersion = 2

var (
	bucketEmployees  = []byte("funcionarios")
	bucketMeta       = []byte("_meta")
	keySchemaVersion = []byte("schema_version")

	indexPrefix = []byte("idx_")
)

// indexSpec declara um índice secundário sobre um campo do registro.
// Índices únicos fazem o banco rejeitar escritas com valor repetido.
type indexSpec struct {
	Field  string
	Unique bool
	Value  func(e *domain.Employee) string
}

// Conjunto declarado de índices. A migração garante exatamente este
// conjunto: cria e reconstrói os que faltam e remove os não declarados.
var indexes = []indexSpec{
	{Field: "nome", Value: func(e *domain.Employee) string { return e.Name }},
	{Field: "cpf", Unique: true, Value: func(e *domain.Employee) string { return e.CPF }},
	{Field: "email", Unique: true, Value: func(e *domain.Employee) string { return e.Email }},
	{Field: "telefone", Unique: true, Value: func(e *domain.Employee) string { return e.Phone }},
	{Field: "cargo", Value: func(e *domain.Employee) string { return e.Role }},
	{Field: "data_nascimento", Value: func(e *domain.Employee) string { return e.BirthDate }},
}

func indexBucketName(field string) []byte {
	return append(append([]byte{}, indexPrefix...), field...)
}

// migrate roda dentro da transação de abertura, uma única vez por versão de
// esquema: cria o bucket de registros na primeira abertura e reconcilia os
// buckets de índice em qualquer aumento de versão.
func migrate(tx *bolt.Tx) error {
	meta, err := tx.CreateBucketIfNotExists(bucketMeta)
	if err != nil {
		return err
	}

	current := uint64(0)
	if raw := meta.Get(keySchemaVersion); raw != nil {
		current = binary.BigEndian.Uint64(raw)
	}
	if current >= schemaVersion {
		return nil
	}

	if _, err := tx.CreateBucketIfNotExists(bucketEmployees); err != nil {
		return err
	}
	if err := ensureIndexes(tx); err != nil {
		return err
	}

	return meta.Put(keySchemaVersion, itob(schemaVersion))
}

// ensureIndexes reconcilia os buckets de índice com o conjunto declarado:
// buckets que faltam são criados e reconstruídos a partir dos registros
// existentes, buckets idx_* não declarados são removidos.
func ensureIndexes(tx *bolt.Tx) error {
	declared := make(map[string]bool, len(indexes))
	for _, spec := range indexes {
		declared[string(indexBucketName(spec.Field))] = true
	}

	// Não é permitido criar ou remover buckets durante o ForEach, então os
	// órfãos são coletados primeiro
	var orphans [][]byte
	err := tx.ForEach(func(name []byte, _ *bolt.Bucket) error {
		if bytes.HasPrefix(name, indexPrefix) && !declared[string(name)] {
			orphans = append(orphans, append([]byte{}, name...))
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, name := range orphans {
		if err := tx.DeleteBucket(name); err != nil {
			return err
		}
	}

	for _, spec := range indexes {
		name := indexBucketName(spec.Field)
		if tx.Bucket(name) != nil {
			continue
		}
		if _, err := tx.CreateBucket(name); err != nil {
			return err
		}
		if err := rebuildIndex(tx, spec); err != nil {
			return err
		}
	}

	return nil
}

// rebuildIndex repovoa um índice recém-criado varrendo todos os registros.
func rebuildIndex(tx *bolt.Tx, spec indexSpec) error {
	c := tx.Bucket(bucketEmployees).Cursor()
	for k, v := c.First(); k != nil; k, v = c.Next() {
		e := &domain.Employee{}
		if err := json.Unmarshal(v, e); err != nil {
			return err
		}
		if err := putIndexEntry(tx, spec, e); err != nil {
			return err
		}
	}
	return nil
}
