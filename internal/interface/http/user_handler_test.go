package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/guhz021/microblog-api/internal/domain/apperr"
	"github.com/guhz021/microblog-api/internal/domain/entity"
)

func doRequest(t *testing.T, engine http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCreateUser(t *testing.T) {
	engine, users, _, _ := newTestRouter()

	w := doRequest(t, engine, http.MethodPost, "/usuarios", `{"nome":"Ana","email":"ana@example.com","senha":"s3nha"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %q)", w.Code, w.Body.String())
	}
	var got map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if got["nome"] != "Ana" || got["email"] != "ana@example.com" {
		t.Errorf("body = %v", got)
	}
	if _, ok := got["senha"]; ok {
		t.Error("senha must not be serialized")
	}
	if len(users.created) != 1 {
		t.Fatalf("created %d users, want 1", len(users.created))
	}
	if users.created[0].Senha == "s3nha" {
		t.Error("senha stored in plain text")
	}
}

func TestCreateUserEmptyBody(t *testing.T) {
	engine, users, _, _ := newTestRouter()

	w := doRequest(t, engine, http.MethodPost, "/usuarios", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	want := "Campos obrigatórios ausentes: nome, email."
	if w.Body.String() != want {
		t.Errorf("body = %q, want %q", w.Body.String(), want)
	}
	if len(users.calls) != 0 {
		t.Errorf("repository called: %v", users.calls)
	}
}

func TestCreateUserInvalidJSON(t *testing.T) {
	engine, _, _, _ := newTestRouter()

	w := doRequest(t, engine, http.MethodPost, "/usuarios", `{"nome":`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if w.Body.String() != "JSON inválido no corpo da requisição." {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	engine, users, _, _ := newTestRouter()
	users.createErr = apperr.ErrDuplicateEmail

	w := doRequest(t, engine, http.MethodPost, "/usuarios", `{"nome":"Ana","email":"ana@example.com"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if w.Body.String() != "Email já cadastrado." {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestListUsers(t *testing.T) {
	engine, users, _, _ := newTestRouter()
	users.listUsers = []entity.User{
		{ID: primitive.NewObjectID(), Nome: "Ana", Email: "ana@example.com", CriadoEm: time.Now()},
		{ID: primitive.NewObjectID(), Nome: "Bia", Email: "bia@example.com", CriadoEm: time.Now()},
	}

	w := doRequest(t, engine, http.MethodGet, "/usuarios", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0]["nome"] != "Ana" || got[1]["nome"] != "Bia" {
		t.Errorf("body = %v", got)
	}
}

func TestDeleteUser(t *testing.T) {
	engine, users, _, _ := newTestRouter()
	users.deleteOK = true

	w := doRequest(t, engine, http.MethodDelete, "/usuarios/"+primitive.NewObjectID().Hex(), "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "Usuário excluído com sucesso." {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestDeleteUserNotFound(t *testing.T) {
	engine, _, _, _ := newTestRouter()

	w := doRequest(t, engine, http.MethodDelete, "/usuarios/"+primitive.NewObjectID().Hex(), "")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if w.Body.String() != "Usuário não encontrado." {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestDeleteUserMalformedID(t *testing.T) {
	engine, users, _, _ := newTestRouter()

	w := doRequest(t, engine, http.MethodDelete, "/usuarios/not-an-id", "")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if w.Body.String() != "ID inválido (esperado ObjectId de 24 hex)." {
		t.Errorf("body = %q", w.Body.String())
	}
	if len(users.calls) != 0 {
		t.Errorf("repository called: %v", users.calls)
	}
}
