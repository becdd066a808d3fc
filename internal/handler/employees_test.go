package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadastro-rh/funcionarios/backend/internal/config"
	"github.com/cadastro-rh/funcionarios/backend/internal/repository"
	"github.com/cadastro-rh/funcionarios/backend/internal/store"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Path = filepath.Join(t.TempDir(), "funcionarios_test.db")
	cfg.Database.OpenTimeout = 1
	cfg.Feedback.ClearAfter = 3
	return cfg
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := testConfig(t)
	db := store.NewDatabase(cfg)
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })

	repo := repository.NewRepository(cfg, db)
	h, err := NewHandler(cfg, repo)
	require.NoError(t, err)
	h.RegisterRoutes()

	return h
}

// newUnavailableHandler monta o handler sobre um banco que nunca abriu.
func newUnavailableHandler(t *testing.T) *Handler {
	t.Helper()

	cfg := testConfig(t)
	repo := repository.NewRepository(cfg, store.NewDatabase(cfg))
	h, err := NewHandler(cfg, repo)
	require.NoError(t, err)
	h.RegisterRoutes()

	return h
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, h *Handler, method, path string, body any) envelope {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.Mux.ServeHTTP(rec, req)

	env := envelope{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
	return env
}

func anaPayload() map[string]any {
	return map[string]any{
		"nome":            "Ana Silva",
		"cpf":             "11111111111",
		"email":           "ana@example.com",
		"telefone":        "(11) 91111-1111",
		"cargo":           "Desenvolvedora",
		"data_nascimento": "1990-01-01",
	}
}

func TestCreateEmployee_OK(t *testing.T) {
	h := newTestHandler(t)

	env := doRequest(t, h, http.MethodPost, "/funcionarios", anaPayload())
	require.True(t, env.Success)
	assert.Equal(t, "Funcionário cadastrado com sucesso!", env.Message)

	var created struct {
		ID   int64  `json:"id"`
		Name string `json:"nome"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Ana Silva", created.Name)
}

func TestCreateEmployee_MissingRequiredField(t *testing.T) {
	h := newTestHandler(t)

	payload := anaPayload()
	delete(payload, "nome")

	env := doRequest(t, h, http.MethodPost, "/funcionarios", payload)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Message)
}

func TestCreateEmployee_Duplicate(t *testing.T) {
	h := newTestHandler(t)

	require.True(t, doRequest(t, h, http.MethodPost, "/funcionarios", anaPayload()).Success)

	payload := anaPayload()
	payload["email"] = "outra@example.com"
	payload["telefone"] = "(11) 92222-2222"
	// cpf repetido

	env := doRequest(t, h, http.MethodPost, "/funcionarios", payload)
	assert.False(t, env.Success)
	assert.Equal(t, "Erro ao cadastrar funcionário!", env.Message)
}

func TestListEmployees_RowsWithActions(t *testing.T) {
	h := newTestHandler(t)
	require.True(t, doRequest(t, h, http.MethodPost, "/funcionarios", anaPayload()).Success)

	env := doRequest(t, h, http.MethodGet, "/funcionarios", nil)
	require.True(t, env.Success)
	assert.Equal(t, "Lista de funcionários carregada com sucesso!", env.Message)

	var rows []struct {
		ID      int64  `json:"id"`
		Name    string `json:"nome"`
		Actions []struct {
			Action string `json:"acao"`
			ID     int64  `json:"id"`
		} `json:"acoes"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &rows))
	require.Len(t, rows, 1)
	require.Len(t, rows[0].Actions, 2)
	assert.Equal(t, "alterar", rows[0].Actions[0].Action)
	assert.Equal(t, "excluir", rows[0].Actions[1].Action)
	assert.Equal(t, rows[0].ID, rows[0].Actions[0].ID)
}

func TestUpdateEmployee_OK(t *testing.T) {
	h := newTestHandler(t)
	require.True(t, doRequest(t, h, http.MethodPost, "/funcionarios", anaPayload()).Success)

	env := doRequest(t, h, http.MethodPatch, "/funcionarios/1", map[string]any{"cargo": "Lead"})
	require.True(t, env.Success)
	assert.Equal(t, "Dados atualizados com sucesso!", env.Message)

	var updated struct {
		Role string `json:"cargo"`
		Name string `json:"nome"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Lead", updated.Role)
	assert.Equal(t, "Ana Silva", updated.Name, "campos fora do patch são preservados")
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	h := newTestHandler(t)

	env := doRequest(t, h, http.MethodPatch, "/funcionarios/42", map[string]any{"cargo": "Lead"})
	assert.False(t, env.Success)
	assert.Equal(t, "Funcionário não encontrado!", env.Message)
}

func TestUpdateEmployee_InvalidID(t *testing.T) {
	h := newTestHandler(t)

	env := doRequest(t, h, http.MethodPatch, "/funcionarios/abc", map[string]any{"cargo": "Lead"})
	assert.False(t, env.Success)
	assert.Equal(t, "ID inválido", env.Message)
}

func TestDeleteEmployee_Idempotent(t *testing.T) {
	h := newTestHandler(t)
	require.True(t, doRequest(t, h, http.MethodPost, "/funcionarios", anaPayload()).Success)

	first := doRequest(t, h, http.MethodDelete, "/funcionarios/1", nil)
	require.True(t, first.Success)
	assert.Equal(t, "Funcionário removido com sucesso!", first.Message)

	second := doRequest(t, h, http.MethodDelete, "/funcionarios/1", nil)
	assert.True(t, second.Success, "remover de novo continua sendo sucesso")
}

func TestDispatchAction_Edit(t *testing.T) {
	h := newTestHandler(t)
	require.True(t, doRequest(t, h, http.MethodPost, "/funcionarios", anaPayload()).Success)

	env := doRequest(t, h, http.MethodPost, "/funcionarios/acoes", map[string]any{"acao": "alterar", "id": 1})
	require.True(t, env.Success)

	var e struct {
		ID    int64  `json:"id"`
		Email string `json:"email"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &e))
	assert.Equal(t, int64(1), e.ID)
	assert.Equal(t, "ana@example.com", e.Email)
}

func TestDispatchAction_Delete(t *testing.T) {
	h := newTestHandler(t)
	require.True(t, doRequest(t, h, http.MethodPost, "/funcionarios", anaPayload()).Success)

	env := doRequest(t, h, http.MethodPost, "/funcionarios/acoes", map[string]any{"acao": "excluir", "id": 1})
	require.True(t, env.Success)
	assert.Equal(t, "Funcionário removido com sucesso!", env.Message)

	list := doRequest(t, h, http.MethodGet, "/funcionarios", nil)
	require.True(t, list.Success)
	assert.Equal(t, "[]", string(bytes.TrimSpace(list.Data)))
}

func TestDispatchAction_Unknown(t *testing.T) {
	h := newTestHandler(t)

	env := doRequest(t, h, http.MethodPost, "/funcionarios/acoes", map[string]any{"acao": "promover", "id": 1})
	assert.False(t, env.Success)
	assert.Equal(t, "ação desconhecida", env.Message)
}

func TestDatabaseUnavailable(t *testing.T) {
	h := newUnavailableHandler(t)

	cases := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodPost, "/funcionarios", anaPayload()},
		{http.MethodGet, "/funcionarios", nil},
		{http.MethodPatch, "/funcionarios/1", map[string]any{"cargo": "Lead"}},
		{http.MethodDelete, "/funcionarios/1", nil},
	}

	for _, tc := range cases {
		env := doRequest(t, h, tc.method, tc.path, tc.body)
		assert.False(t, env.Success, "%s %s", tc.method, tc.path)
		assert.Equal(t, "Erro ao carregar banco de dados!", env.Message, "%s %s", tc.method, tc.path)
	}
}

func TestUIConfig(t *testing.T) {
	h := newTestHandler(t)

	env := doRequest(t, h, http.MethodGet, "/configuracao", nil)
	require.True(t, env.Success)

	var data struct {
		FeedbackClearAfter int `json:"feedback_clear_after"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 3, data.FeedbackClearAfter)
}
