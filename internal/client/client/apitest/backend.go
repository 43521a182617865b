// Package apitest provides an in-memory PeerSphere backend for tests.
//
// The backend speaks the same JSON wire format as the real API and is
// mounted under /api, so a client pointed at Server().URL+"/api" works
// unchanged.
package apitest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
)

type object = map[string]any

type account struct {
	id       int64
	name     string
	email    string
	password string
}

// Recorded is one request seen by the backend.
type Recorded struct {
	Method string
	Path   string
	Query  string
	Header http.Header
	Body   string
}

// Backend is a fake PeerSphere API. The zero value is not usable; call New.
type Backend struct {
	mu       sync.Mutex
	nextID   int64
	accounts map[string]*account
	members  map[int64]map[int64]bool // group id -> user ids
	tables   map[string]map[int64]object
	requests []Recorded

	router *mux.Router
}

type resource struct {
	name   string // table and path segment
	idKey  string
	parent string // parent path segment in /{name}/{parent}/{id}
	fkKey  string
}

var resources = []resource{
	{name: "decks", idKey: "deckId", parent: "group", fkKey: "groupId"},
	{name: "flashcards", idKey: "cardId", parent: "deck", fkKey: "deckId"},
	{name: "notes", idKey: "noteId", parent: "group", fkKey: "groupId"},
	{name: "calendar", idKey: "eventId", parent: "group", fkKey: "groupId"},
}

func New() *Backend {
	b := &Backend{
		accounts: map[string]*account{},
		members:  map[int64]map[int64]bool{},
		tables: map[string]map[int64]object{
			"groups":   {},
			"messages": {},
		},
	}
	for _, r := range resources {
		b.tables[r.name] = map[int64]object{}
	}

	root := mux.NewRouter()
	api := root.PathPrefix("/api").Subrouter()
	api.Use(b.record)

	api.HandleFunc("/health", b.health).Methods(http.MethodGet)
	api.HandleFunc("/auth/register", b.register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", b.login).Methods(http.MethodPost)

	api.HandleFunc("/groups", b.createGroup).Methods(http.MethodPost)
	api.HandleFunc("/groups/join", b.joinGroup).Methods(http.MethodPost).Queries("userId", "{userId:[0-9]+}")
	api.HandleFunc("/groups/user/{id:[0-9]+}", b.userGroups).Methods(http.MethodGet)
	api.HandleFunc("/groups/{id:[0-9]+}", b.getOne("groups")).Methods(http.MethodGet)

	api.HandleFunc("/messages", b.create("messages", "messageId")).Methods(http.MethodPost)
	api.HandleFunc("/messages/group/{id:[0-9]+}", b.listMessages).Methods(http.MethodGet)

	for _, r := range resources {
		api.HandleFunc("/"+r.name, b.create(r.name, r.idKey)).Methods(http.MethodPost)
		api.HandleFunc(fmt.Sprintf("/%s/%s/{id:[0-9]+}", r.name, r.parent), b.listBy(r.name, r.fkKey, r.idKey)).Methods(http.MethodGet)
		api.HandleFunc("/"+r.name+"/{id:[0-9]+}", b.getOne(r.name)).Methods(http.MethodGet)
		api.HandleFunc("/"+r.name+"/{id:[0-9]+}", b.update(r.name)).Methods(http.MethodPut)
		api.HandleFunc("/"+r.name+"/{id:[0-9]+}", b.remove(r.name)).Methods(http.MethodDelete)
	}

	b.router = root
	return b
}

// Server starts an httptest server closed at the end of the test.
func (b *Backend) Server(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(b.router)
	t.Cleanup(srv.Close)
	return srv
}

// AddUser seeds an account and returns its id.
func (b *Backend) AddUser(name, email, password string) int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.addUserLocked(name, email, password)
}

// Requests returns a copy of the requests seen so far.
func (b *Backend) Requests() []Recorded {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Recorded(nil), b.requests...)
}

// Count returns how many rows a table ("groups", "decks", "flashcards",
// "notes", "messages", "calendar") holds.
func (b *Backend) Count(table string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.tables[table])
}

// Row returns a copy of one stored row.
func (b *Backend) Row(table string, id int64) (map[string]any, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	row, ok := b.tables[table][id]
	if !ok {
		return nil, false
	}
	out := make(map[string]any, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out, true
}

func (b *Backend) addUserLocked(name, email, password string) int64 {
	b.nextID++
	b.accounts[strings.ToLower(email)] = &account{id: b.nextID, name: name, email: email, password: password}
	return b.nextID
}

func (b *Backend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		r.Body.Close()
		r.Body = io.NopCloser(strings.NewReader(string(data)))

		b.mu.Lock()
		b.requests = append(b.requests, Recorded{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Header: r.Header.Clone(),
			Body:   string(data),
		})
		b.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, object{"error": msg})
}

func decode(r *http.Request) (object, error) {
	var obj object
	if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func pathID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id
}

func asInt64(v any) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case json.Number:
		i, _ := n.Int64()
		return i
	default:
		return 0
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func (b *Backend) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "OK")
}

func (b *Backend) register(w http.ResponseWriter, r *http.Request) {
	in, err := decode(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	name, _ := in["name"].(string)
	email, _ := in["email"].(string)
	password, _ := in["password"].(string)

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.accounts[strings.ToLower(email)]; exists {
		writeError(w, http.StatusConflict, "Email already registered")
		return
	}
	id := b.addUserLocked(name, email, password)

	// The real backend echoes a normalized email and no name.
	writeJSON(w, http.StatusCreated, object{"userId": id, "email": strings.ToLower(email), "message": "User registered successfully"})
}

func (b *Backend) login(w http.ResponseWriter, r *http.Request) {
	in, err := decode(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	email, _ := in["email"].(string)
	password, _ := in["password"].(string)

	b.mu.Lock()
	acc, ok := b.accounts[strings.ToLower(email)]
	b.mu.Unlock()

	if !ok || acc.password != password {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	writeJSON(w, http.StatusOK, object{"userId": acc.id, "name": acc.name, "email": acc.email})
}

func (b *Backend) createGroup(w http.ResponseWriter, r *http.Request) {
	in, err := decode(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	in["groupId"] = id
	in["groupCode"] = fmt.Sprintf("PS%04d", id)
	in["createdAt"] = now()
	b.tables["groups"][id] = in
	b.members[id] = map[int64]bool{asInt64(in["creatorUserId"]): true}

	writeJSON(w, http.StatusCreated, in)
}

func (b *Backend) joinGroup(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.ParseInt(r.URL.Query().Get("userId"), 10, 64)
	in, err := decode(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	code, _ := in["groupCode"].(string)

	b.mu.Lock()
	defer b.mu.Unlock()

	for id, g := range b.tables["groups"] {
		if g["groupCode"] == code {
			b.members[id][userID] = true
			writeJSON(w, http.StatusOK, g)
			return
		}
	}
	writeError(w, http.StatusNotFound, "Group not found")
}

func (b *Backend) userGroups(w http.ResponseWriter, r *http.Request) {
	userID := pathID(r)

	b.mu.Lock()
	defer b.mu.Unlock()

	out := []object{}
	for id, g := range b.tables["groups"] {
		if b.members[id][userID] {
			out = append(out, g)
		}
	}
	sortByID(out, "groupId")
	writeJSON(w, http.StatusOK, out)
}

func (b *Backend) listMessages(w http.ResponseWriter, r *http.Request) {
	groupID := pathID(r)
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	out := []object{}
	for _, m := range b.tables["messages"] {
		if asInt64(m["groupId"]) == groupID {
			out = append(out, m)
		}
	}
	sortByID(out, "messageId")
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	writeJSON(w, http.StatusOK, out)
}

func (b *Backend) create(table, idKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decode(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		b.mu.Lock()
		defer b.mu.Unlock()

		b.nextID++
		in[idKey] = b.nextID
		in["createdAt"] = now()
		b.tables[table][b.nextID] = in

		writeJSON(w, http.StatusCreated, in)
	}
}

func (b *Backend) listBy(table, fkKey, idKey string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parentID := pathID(r)

		b.mu.Lock()
		defer b.mu.Unlock()

		out := []object{}
		for _, row := range b.tables[table] {
			if asInt64(row[fkKey]) != parentID {
				continue
			}
			if table == "decks" {
				row["cardCount"] = b.countCardsLocked(asInt64(row["deckId"]))
			}
			out = append(out, row)
		}
		sortByID(out, idKey)
		writeJSON(w, http.StatusOK, out)
	}
}

func (b *Backend) countCardsLocked(deckID int64) int {
	n := 0
	for _, c := range b.tables["flashcards"] {
		if asInt64(c["deckId"]) == deckID {
			n++
		}
	}
	return n
}

func (b *Backend) getOne(table string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()

		row, ok := b.tables[table][pathID(r)]
		if !ok {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}
		writeJSON(w, http.StatusOK, row)
	}
}

func (b *Backend) update(table string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in, err := decode(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		b.mu.Lock()
		defer b.mu.Unlock()

		row, ok := b.tables[table][pathID(r)]
		if !ok {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}
		for k, v := range in {
			row[k] = v
		}
		row["updatedAt"] = now()
		writeJSON(w, http.StatusOK, row)
	}
}

func (b *Backend) remove(table string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := pathID(r)

		b.mu.Lock()
		defer b.mu.Unlock()

		if _, ok := b.tables[table][id]; !ok {
			writeError(w, http.StatusNotFound, "Not found")
			return
		}
		delete(b.tables[table], id)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, "Deleted")
	}
}

func sortByID(rows []object, key string) {
	sort.Slice(rows, func(i, j int) bool {
		return asInt64(rows[i][key]) < asInt64(rows[j][key])
	})
}
