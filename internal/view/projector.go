package view

import (
	"github.com/cadastro-rh/funcionarios/backend/internal/domain"
)

// Row é uma linha da listagem: o registro mais as ações de alterar e
// excluir amarradas ao id dele.
type Row struct {
	*domain.Employee
	Actions []ActionRef `json:"acoes"`
}

type ActionRef struct {
	Action domain.Action `json:"acao"`
	ID     int64         `json:"id"`
}

// Projector monta a listagem na ordem em que os registros chegam da
// varredura (id crescente). As linhas só são acrescentadas no final, nunca
// reordenadas no meio da projeção.
type Projector struct {
	rows []Row
}

func NewProjector() *Projector {
	return &Projector{rows: make([]Row, 0)}
}

// Reset descarta o estado anterior antes de uma nova projeção.
func (p *Projector) Reset() {
	p.rows = p.rows[:0]
}

func (p *Projector) Append(e *domain.Employee) {
	p.rows = append(p.rows, Row{
		Employee: e,
		Actions: []ActionRef{
			{Action: domain.ActionEdit, ID: e.ID},
			{Action: domain.ActionDelete, ID: e.ID},
		},
	})
}

func (p *Projector) Rows() []Row {
	return p.rows
}

// Project consome a varredura preguiçosa do repositório e devolve as
// linhas prontas para exibição.
func Project(forEach func(func(*domain.Employee) error) error) ([]Row, error) {
	p := NewProjector()
	err := forEach(func(e *domain.Employee) error {
		p.Append(e)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p.Rows(), nil
}
