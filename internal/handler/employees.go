package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cadastro-rh/funcionarios/backend/internal/domain"
	"github.com/cadastro-rh/funcionarios/backend/internal/repository"
	"github.com/cadastro-rh/funcionarios/backend/internal/store"
	"github.com/cadastro-rh/funcionarios/backend/internal/view"
)

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"nome" validate:"required"`
		CPF       string `json:"cpf" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
		Phone     string `json:"telefone" validate:"required"`
		Role      string `json:"cargo" validate:"required"`
		BirthDate string `json:"data_nascimento" validate:"required,datetime=2006-01-02"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	e := &domain.Employee{
		Name:      req.Name,
		CPF:       req.CPF,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      req.Role,
		BirthDate: req.BirthDate,
	}

	if err := h.repository.CreateEmployee(e); err != nil {
		var constraintErr *store.ConstraintError
		switch {
		case errors.Is(err, store.ErrUnavailable):
			h.errorResponse(w, r, "Erro ao carregar banco de dados!")
		case errors.As(err, &constraintErr):
			// O campo duplicado vai só para o log; o usuário recebe a
			// falha genérica da operação
			slog.Warn("cadastro rejeitado por índice único", "campo", constraintErr.Field)
			h.errorResponse(w, r, "Erro ao cadastrar funcionário!")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Funcionário cadastrado com sucesso!", e)
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	rows, err := view.Project(h.repository.ForEachEmployee)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUnavailable):
			h.errorResponse(w, r, "Erro ao carregar banco de dados!")
		case errors.Is(err, repository.ErrIteration):
			slog.Error("falha na varredura da listagem", "error", err)
			h.errorResponse(w, r, "Erro ao listar funcionários!")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Lista de funcionários carregada com sucesso!", rows)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := r.Context().Value(EmployeeIDCtxKey).(int64)

	var req struct {
		Name      *string `json:"nome" validate:"omitempty,min=1"`
		CPF       *string `json:"cpf" validate:"omitempty,min=1"`
		Email     *string `json:"email" validate:"omitempty,email"`
		Phone     *string `json:"telefone" validate:"omitempty,min=1"`
		Role      *string `json:"cargo" validate:"omitempty,min=1"`
		BirthDate *string `json:"data_nascimento" validate:"omitempty,datetime=2006-01-02"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	patch := &domain.EmployeePatch{
		Name:      req.Name,
		CPF:       req.CPF,
		Email:     req.Email,
		Phone:     req.Phone,
		Role:      req.Role,
		BirthDate: req.BirthDate,
	}

	updated, err := h.repository.UpdateEmployee(id, patch)
	if err != nil {
		var constraintErr *store.ConstraintError
		switch {
		case errors.Is(err, store.ErrUnavailable):
			h.errorResponse(w, r, "Erro ao carregar banco de dados!")
		case errors.Is(err, repository.ErrNotFound):
			h.errorResponse(w, r, "Funcionário não encontrado!")
		case errors.As(err, &constraintErr):
			slog.Warn("atualização rejeitada por índice único", "id", id, "campo", constraintErr.Field)
			h.errorResponse(w, r, "Erro ao atualizar funcionário!")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Dados atualizados com sucesso!", updated)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := r.Context().Value(EmployeeIDCtxKey).(int64)

	if err := h.repository.DeleteEmployee(id); err != nil {
		switch {
		case errors.Is(err, store.ErrUnavailable):
			h.errorResponse(w, r, "Erro ao carregar banco de dados!")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "Funcionário removido com sucesso!", nil)
}

// DispatchAction recebe os comandos dos botões da listagem: alterar devolve
// o registro para preencher o formulário, excluir remove o registro.
func (h *Handler) DispatchAction(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Action domain.Action `json:"acao" validate:"required"`
		ID     int64         `json:"id" validate:"required,gt=0"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if !req.Action.Valid() {
		h.badRequest(w, r, errors.New("ação desconhecida"))
		return
	}

	switch req.Action {
	case domain.ActionEdit:
		e, err := h.repository.GetEmployeeByID(req.ID)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrUnavailable):
				h.errorResponse(w, r, "Erro ao carregar banco de dados!")
			case errors.Is(err, repository.ErrNotFound):
				h.errorResponse(w, r, "Funcionário não encontrado!")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		h.successResponse(w, r, "Funcionário carregado para alteração!", e)

	case domain.ActionDelete:
		if err := h.repository.DeleteEmployee(req.ID); err != nil {
			switch {
			case errors.Is(err, store.ErrUnavailable):
				h.errorResponse(w, r, "Erro ao carregar banco de dados!")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		h.successResponse(w, r, "Funcionário removido com sucesso!", nil)
	}
}
