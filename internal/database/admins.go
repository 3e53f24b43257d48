package database

import (
	"golang.org/x/crypto/bcrypt"
)

func (db *DB) CreateAdmin(email string, pass string) error {
	db.mux.Lock()
	defer db.mux.Unlock()

	if _, ok := db.database.Admins[email]; ok {
		return ErrAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	db.database.Admins[email] = hash

	return db.writeDB()
}

func (db *DB) ValidLogin(email string, pass string) bool {
	db.mux.RLock()
	hash, ok := db.database.Admins[email]
	db.mux.RUnlock()

	if !ok {
		return false
	}

	err := bcrypt.CompareHashAndPassword(hash, []byte(pass))
	return err == nil
}

func (db *DB) AddRefreshToken(refreshToken string) error {
	db.mux.Lock()
	defer db.mux.Unlock()

	db.database.RefreshTokens[refreshToken] = true

	return db.writeDB()
}

func (db *DB) RevokeRefreshToken(refreshToken string) error {
	db.mux.Lock()
	defer db.mux.Unlock()

	delete(db.database.RefreshTokens, refreshToken)

	return db.writeDB()
}

func (db *DB) IsValidRefreshToken(refreshToken string) bool {
	db.mux.RLock()
	defer db.mux.RUnlock()

	_, ok := db.database.RefreshTokens[refreshToken]
	return ok
}
