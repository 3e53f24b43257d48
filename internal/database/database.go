package database

import (
	"encoding/json"
	"errors"
	"os"
	"sync"
)

type DB struct {
	path     string
	database *Database
	mux      *sync.RWMutex
}

type Database struct {
	BannedWords   []string          `json:"BannedWords"`
	Admins        map[string][]byte `json:"Admins"`
	RefreshTokens map[string]bool   `json:"RefreshTokens"`
}

var ErrWordExists error = errors.New("profanity already exists in profanity list")
var ErrWordNotFound error = errors.New("profanity does not exist in profanity list")
var ErrEmptyWord error = errors.New("profanity is empty")
var ErrAdminExists error = errors.New("admin already exists")

// A small starter list for clean databases.
var DefaultBannedWords = []string{
	"2 girls 1 cup",
	"ass",
	"cunt",
	"damn",
	"dick",
	"fuck",
	"penis",
	"shit",
	"twat",
	"twatting",
}

func newDatabase() *Database {
	return &Database{
		BannedWords:   []string{},
		Admins:        make(map[string][]byte),
		RefreshTokens: make(map[string]bool),
	}
}

// Initialize db from the json file at path
func InitDB(path string) (*DB, error) {
	db := DB{
		database: newDatabase(),
		mux:      &sync.RWMutex{},
		path:     path,
	}

	err := db.loadDB()
	if err != nil {
		return nil, err
	}

	return &db, nil
}

// Initialize in-memory db seeded with words, nothing is written to disk
func InitCleanDB(words []string) *DB {
	database := newDatabase()
	database.BannedWords = append(database.BannedWords, words...)

	return &DB{
		database: database,
		mux:      &sync.RWMutex{},
		path:     "",
	}
}

// Write a new database file holding words, fails if path already exists
func CreateDB(path string, words []string) (*DB, error) {
	_, err := os.Stat(path)
	if err == nil {
		return nil, os.ErrExist
	}

	db := InitCleanDB(words)
	db.path = path

	db.mux.Lock()
	defer db.mux.Unlock()

	err = db.writeDB()
	if err != nil {
		return nil, err
	}

	return db, nil
}

func (db *DB) loadDB() error {
	db.mux.Lock()
	defer db.mux.Unlock()

	dat, err := os.ReadFile(db.path)
	if err != nil {
		return err
	}

	database := Database{}
	err = json.Unmarshal(dat, &database)
	if err != nil {
		return err
	}

	if database.BannedWords == nil {
		database.BannedWords = []string{}
	}
	if database.Admins == nil {
		database.Admins = make(map[string][]byte)
	}
	if database.RefreshTokens == nil {
		database.RefreshTokens = make(map[string]bool)
	}
	db.database = &database

	return nil
}

// writeDB expects the caller to hold the write lock.
func (db *DB) writeDB() error {
	if db.path == "" {
		return nil
	}

	dat, err := json.MarshalIndent(db.database, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(db.path, dat, 0644)
}
