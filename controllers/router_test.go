package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"note_map_go/auth"
	"note_map_go/data"
	"note_map_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, data.Repository) {
	t.Helper()
	repo := data.NewMemoryRepository()
	require.NoError(t, data.EnsureDefaultUser(repo))
	srv := httptest.NewServer(NewRouter(repo))
	t.Cleanup(srv.Close)
	return srv, repo
}

// doJSON выполняет запрос с JSON-телом и декодирует JSON-ответ в out (если out != nil).
func doJSON(t *testing.T, srv *httptest.Server, method, path string, body interface{}, out interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func errorMessage(t *testing.T, srv *httptest.Server, method, path string, body interface{}, wantStatus int) string {
	t.Helper()
	var errBody map[string]string
	resp := doJSON(t, srv, method, path, body, &errBody)
	require.Equal(t, wantStatus, resp.StatusCode)
	return errBody["message"]
}

func TestHealthEndpoint(t *testing.T) {
	srv, _ := newTestServer(t)

	var body map[string]string
	resp := doJSON(t, srv, http.MethodGet, "/api/health", nil, &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body["status"])
}

func TestNotesCRUDFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	// Пустой список - это [], а не null
	var list []models.Note
	resp := doJSON(t, srv, http.MethodGet, "/api/notes", nil, &list)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	var created models.Note
	resp = doJSON(t, srv, http.MethodPost, "/api/notes", map[string]interface{}{
		"title":    "Project Ideas",
		"content":  "brainstorm",
		"position": map[string]float64{"x": 150, "y": 300},
		"color":    "#8B5CF6",
	}, &created)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Project Ideas", created.Title)
	assert.Equal(t, models.Position{X: 150, Y: 300}, created.Position)
	require.NotNil(t, created.UserID)
	assert.Equal(t, data.DefaultUserID, *created.UserID)

	var got models.Note
	resp = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/notes/%d", created.ID), nil, &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created.ID, got.ID)

	// Частичный патч: content не тронут
	var updated models.Note
	resp = doJSON(t, srv, http.MethodPut, fmt.Sprintf("/api/notes/%d", created.ID), map[string]interface{}{
		"title": "Renamed",
	}, &updated)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, "brainstorm", updated.Content)

	resp = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/notes/%d", created.ID), nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	msg := errorMessage(t, srv, http.MethodGet, fmt.Sprintf("/api/notes/%d", created.ID), nil, http.StatusNotFound)
	assert.Equal(t, "Note not found", msg)
}

func TestNoteNotFoundResponses(t *testing.T) {
	srv, _ := newTestServer(t)

	msg := errorMessage(t, srv, http.MethodGet, "/api/notes/999", nil, http.StatusNotFound)
	assert.Equal(t, "Note not found", msg)

	msg = errorMessage(t, srv, http.MethodPut, "/api/notes/999", map[string]string{"title": "x"}, http.StatusNotFound)
	assert.Equal(t, "Note not found", msg)

	msg = errorMessage(t, srv, http.MethodDelete, "/api/notes/999", nil, http.StatusNotFound)
	assert.Equal(t, "Note not found", msg)
}

func TestCreateNoteRequiresTitleAndContent(t *testing.T) {
	srv, _ := newTestServer(t)

	// Пустое тело не проходит валидацию
	msg := errorMessage(t, srv, http.MethodPost, "/api/notes", map[string]interface{}{}, http.StatusBadRequest)
	assert.Equal(t, "Invalid note data", msg)

	msg = errorMessage(t, srv, http.MethodPost, "/api/notes", map[string]string{
		"content": "body without title",
	}, http.StatusBadRequest)
	assert.Equal(t, "Invalid note data", msg)

	msg = errorMessage(t, srv, http.MethodPost, "/api/notes", map[string]string{
		"title": "title without content",
	}, http.StatusBadRequest)
	assert.Equal(t, "Invalid note data", msg)

	var notes []models.Note
	doJSON(t, srv, http.MethodGet, "/api/notes", nil, &notes)
	assert.Empty(t, notes)
}

func TestCreateNoteInvalidBody(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/notes", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestNotesUserScoping(t *testing.T) {
	srv, repo := newTestServer(t)

	other, err := repo.CreateUser(&models.InsertUser{Username: "other", Password: "secret"})
	require.NoError(t, err)

	var mine models.Note
	doJSON(t, srv, http.MethodPost, "/api/notes", map[string]string{"title": "mine", "content": "x"}, &mine)
	var theirs models.Note
	doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/notes?userId=%d", other.ID),
		map[string]string{"title": "theirs", "content": "y"}, &theirs)

	var defaultList []models.Note
	doJSON(t, srv, http.MethodGet, "/api/notes", nil, &defaultList)
	require.Len(t, defaultList, 1)
	assert.Equal(t, "mine", defaultList[0].Title)

	var otherList []models.Note
	doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/notes?userId=%d", other.ID), nil, &otherList)
	require.Len(t, otherList, 1)
	assert.Equal(t, "theirs", otherList[0].Title)
}

func TestMalformedUserIDFallsBackToDefault(t *testing.T) {
	srv, _ := newTestServer(t)

	createNoteViaAPI(t, srv, "mine")

	var notes []models.Note
	resp := doJSON(t, srv, http.MethodGet, "/api/notes?userId=abc", nil, &notes)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, notes, 1)
	require.NotNil(t, notes[0].UserID)
	assert.Equal(t, data.DefaultUserID, *notes[0].UserID)
}

func TestTagsCRUDFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	var created models.Tag
	resp := doJSON(t, srv, http.MethodPost, "/api/tags", map[string]string{
		"name": "Work", "color": "#EC4899",
	}, &created)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Work", created.Name)

	// Пустое имя отклоняется
	msg := errorMessage(t, srv, http.MethodPost, "/api/tags", map[string]string{"color": "#FFFFFF"}, http.StatusBadRequest)
	assert.Equal(t, "Invalid tag data", msg)

	var updated models.Tag
	resp = doJSON(t, srv, http.MethodPut, fmt.Sprintf("/api/tags/%d", created.ID), map[string]string{
		"color": "#10B981",
	}, &updated)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Work", updated.Name)
	assert.Equal(t, "#10B981", updated.Color)

	var list []models.Tag
	doJSON(t, srv, http.MethodGet, "/api/tags", nil, &list)
	require.Len(t, list, 1)

	resp = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/tags/%d", created.ID), nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	msg = errorMessage(t, srv, http.MethodGet, fmt.Sprintf("/api/tags/%d", created.ID), nil, http.StatusNotFound)
	assert.Equal(t, "Tag not found", msg)
}

func createNoteViaAPI(t *testing.T, srv *httptest.Server, title string) models.Note {
	t.Helper()
	var note models.Note
	resp := doJSON(t, srv, http.MethodPost, "/api/notes", map[string]string{
		"title": title, "content": "content of " + title,
	}, &note)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return note
}

func TestConnectionsFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	a := createNoteViaAPI(t, srv, "A")
	b := createNoteViaAPI(t, srv, "B")

	var conn models.Connection
	resp := doJSON(t, srv, http.MethodPost, "/api/connections", map[string]int64{
		"sourceId": a.ID, "targetId": b.ID,
	}, &conn)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, a.ID, conn.SourceID)
	assert.Equal(t, b.ID, conn.TargetID)

	// Петля - 400
	msg := errorMessage(t, srv, http.MethodPost, "/api/connections",
		map[string]int64{"sourceId": a.ID, "targetId": a.ID}, http.StatusBadRequest)
	assert.Equal(t, "Invalid connection data", msg)

	// Дубликат упорядоченной пары - 400
	errorMessage(t, srv, http.MethodPost, "/api/connections",
		map[string]int64{"sourceId": a.ID, "targetId": b.ID}, http.StatusBadRequest)

	// Встречное направление разрешено
	resp = doJSON(t, srv, http.MethodPost, "/api/connections", map[string]int64{
		"sourceId": b.ID, "targetId": a.ID,
	}, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var list []models.Connection
	doJSON(t, srv, http.MethodGet, "/api/connections", nil, &list)
	assert.Len(t, list, 2)

	resp = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/connections/%d", conn.ID), nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	msg = errorMessage(t, srv, http.MethodDelete, fmt.Sprintf("/api/connections/%d", conn.ID), nil, http.StatusNotFound)
	assert.Equal(t, "Connection not found", msg)
}

func TestDeleteNoteCascadesConnectionsOverHTTP(t *testing.T) {
	srv, _ := newTestServer(t)

	a := createNoteViaAPI(t, srv, "A")
	b := createNoteViaAPI(t, srv, "B")
	resp := doJSON(t, srv, http.MethodPost, "/api/connections",
		map[string]int64{"sourceId": a.ID, "targetId": b.ID}, nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/notes/%d", a.ID), nil, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	var conns []models.Connection
	doJSON(t, srv, http.MethodGet, "/api/connections", nil, &conns)
	assert.Empty(t, conns)

	var notes []models.Note
	doJSON(t, srv, http.MethodGet, "/api/notes", nil, &notes)
	require.Len(t, notes, 1)
	assert.Equal(t, b.ID, notes[0].ID)
}

func TestNoteTagsFlow(t *testing.T) {
	srv, _ := newTestServer(t)

	note := createNoteViaAPI(t, srv, "Tagged")
	var tag models.Tag
	resp := doJSON(t, srv, http.MethodPost, "/api/tags", map[string]string{
		"name": "Work", "color": "#EC4899",
	}, &tag)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// Привязка метки возвращает саму метку
	var attached models.Tag
	resp = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/notes/%d/tags", note.ID),
		map[string]int64{"tagId": tag.ID}, &attached)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, tag.ID, attached.ID)
	assert.Equal(t, "Work", attached.Name)

	var tags []models.Tag
	resp = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/notes/%d/tags", note.ID), nil, &tags)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, tags, 1)
	assert.Equal(t, "#EC4899", tags[0].Color)

	resp = doJSON(t, srv, http.MethodDelete, fmt.Sprintf("/api/notes/%d/tags/%d", note.ID, tag.ID), nil, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/notes/%d/tags", note.ID), nil, &tags)
	assert.Empty(t, tags)

	// Отвязка несуществующей привязки - 404
	msg := errorMessage(t, srv, http.MethodDelete,
		fmt.Sprintf("/api/notes/%d/tags/%d", note.ID, tag.ID), nil, http.StatusNotFound)
	assert.Equal(t, "Note tag not found", msg)

	// Привязка к несуществующей метке - 400
	errorMessage(t, srv, http.MethodPost, fmt.Sprintf("/api/notes/%d/tags", note.ID),
		map[string]int64{"tagId": 0}, http.StatusBadRequest)
}

func TestRegisterAndLogin(t *testing.T) {
	srv, _ := newTestServer(t)

	var registered models.AuthResponse
	resp := doJSON(t, srv, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "alice", "password": "wonderland",
	}, &registered)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, registered.Token)
	assert.Equal(t, "alice", registered.User.Username)

	claims, err := auth.ValidateToken(registered.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, claims.UserID)

	// Повторная регистрация того же имени - 409
	resp = doJSON(t, srv, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "alice", "password": "again",
	}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var logged models.AuthResponse
	resp = doJSON(t, srv, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "alice", "password": "wonderland",
	}, &logged)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, logged.Token)

	resp = doJSON(t, srv, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "alice", "password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, srv, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "nobody", "password": "x",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doJSON(t, srv, http.MethodPost, "/api/auth/register", map[string]string{
		"username": " ", "password": "x",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestOptionalJWT(t *testing.T) {
	srv, _ := newTestServer(t)

	var registered models.AuthResponse
	resp := doJSON(t, srv, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "bob", "password": "builder",
	}, &registered)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// С токеном заметка создается от имени пользователя из claims
	body, err := json.Marshal(map[string]string{"title": "token note", "content": "x"})
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/notes", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+registered.Token)
	httpResp, err := srv.Client().Do(req)
	require.NoError(t, err)
	defer httpResp.Body.Close()
	require.Equal(t, http.StatusCreated, httpResp.StatusCode)

	var note models.Note
	require.NoError(t, json.NewDecoder(httpResp.Body).Decode(&note))
	require.NotNil(t, note.UserID)
	assert.Equal(t, registered.User.ID, *note.UserID)

	// Невалидный токен отклоняется, хотя аутентификация не обязательна
	req, err = http.NewRequest(http.MethodGet, srv.URL+"/api/notes", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer not-a-token")
	httpResp, err = srv.Client().Do(req)
	require.NoError(t, err)
	httpResp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, httpResp.StatusCode)

	// Без заголовка запрос проходит с пользователем по умолчанию
	var notes []models.Note
	resp = doJSON(t, srv, http.MethodGet, "/api/notes", nil, &notes)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, notes)
}
