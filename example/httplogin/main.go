// example/httplogin is a minimal net/http login handler built on PHS.
// Adapted from the teacher's example/web-server.go, trimmed of its TLS and
// audit-log machinery (out of scope for a worked example) down to the one
// thing relevant here: verifying a submitted password against a PHS hash.
package main

import (
	"crypto/rand"
	"crypto/subtle"
	"log"
	"log/slog"
	"net/http"

	"earworm"
)

// userRecord mimics a row from a credentials table: a PHS hash and the cost
// parameters it was computed under, both normally persisted alongside the
// salt.
type userRecord struct {
	salt  []byte
	hash  []byte
	tCost uint32
	mCost uint32
}

var users = map[string]userRecord{}

func registerHandler(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")
	if username == "" || password == "" {
		http.Error(w, "username and password required", http.StatusBadRequest)
		return
	}

	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	const tCost, mCost uint32 = 1000, 16
	hash := make([]byte, 32)
	if err := earworm.PHS(hash, []byte(password), salt, tCost, mCost); err != nil {
		slog.Error("registration hash failed", "user", username, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	users[username] = userRecord{salt: salt, hash: hash, tCost: tCost, mCost: mCost}
	w.WriteHeader(http.StatusCreated)
}

func loginHandler(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	rec, ok := users[username]
	if !ok {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	attempt := make([]byte, len(rec.hash))
	if err := earworm.PHS(attempt, []byte(password), rec.salt, rec.tCost, rec.mCost); err != nil {
		slog.Error("login hash failed", "user", username, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if subtle.ConstantTimeCompare(attempt, rec.hash) != 1 {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func main() {
	const arenaExponent = 20
	if err := earworm.InitializeArena(arenaExponent); err != nil {
		log.Fatalf("initialize arena: %v", err)
	}
	defer func() {
		if err := earworm.TeardownArena(); err != nil {
			log.Printf("teardown arena: %v", err)
		}
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("/register", registerHandler)
	mux.HandleFunc("/login", loginHandler)

	slog.Info("listening", "addr", ":8080")
	log.Fatal(http.ListenAndServe(":8080", mux))
}
