package domain

type Employee struct {
	ID        int64  `json:"id"`
	Name      string `json:"nome"`
	CPF       string `json:"cpf"`
	Email     string `json:"email"`
	Phone     string `json:"telefone"`
	Role      string `json:"cargo"`
	BirthDate string `json:"data_nascimento"`
}

// EmployeePatch descreve uma atualização parcial: campos nil são preservados
// no registro existente, campos preenchidos sobrescrevem o valor atual.
// O id nunca faz parte do patch, ele é atribuído somente pelo banco.
type EmployeePatch struct {
	Name      *string `json:"nome"`
	CPF       *string `json:"cpf"`
	Email     *string `json:"email"`
	Phone     *string `json:"telefone"`
	Role      *string `json:"cargo"`
	BirthDate *string `json:"data_nascimento"`
}

// Apply devolve uma cópia de e com os campos do patch sobrepostos.
func (p *EmployeePatch) Apply(e Employee) Employee {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.CPF != nil {
		e.CPF = *p.CPF
	}
	if p.Email != nil {
		e.Email = *p.Email
	}
	if p.Phone != nil {
		e.Phone = *p.Phone
	}
	if p.Role != nil {
		e.Role = *p.Role
	}
	if p.BirthDate != nil {
		e.BirthDate = *p.BirthDate
	}
	return e
}
