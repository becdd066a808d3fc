package domain

// Action identifica os comandos disparados pelos botões de cada linha da
// listagem, sempre acompanhados do id do registro alvo.
type Action string

const (
	ActionEdit   Action = "alterar"
	ActionDelete Action = "excluir"
)

func (a Action) Valid() bool {
	switch a {
	case ActionEdit, ActionDelete:
		return true
	}
	return false
}
