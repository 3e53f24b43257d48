package database

import (
	"slices"
	"strings"
)

func (db *DB) GetBannedWords() []string {
	db.mux.RLock()
	defer db.mux.RUnlock()

	return slices.Clone(db.database.BannedWords)
}

func (db *DB) AddBannedWord(word string) error {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return ErrEmptyWord
	}

	db.mux.Lock()
	defer db.mux.Unlock()

	if slices.Contains(db.database.BannedWords, word) {
		return ErrWordExists
	}

	db.database.BannedWords = append(db.database.BannedWords, word)

	err := db.writeDB()
	if err != nil {
		// Keep memory and file in step
		db.database.BannedWords = db.database.BannedWords[:len(db.database.BannedWords)-1]
		return err
	}

	return nil
}

func (db *DB) DeleteBannedWord(word string) error {
	word = strings.ToLower(strings.TrimSpace(word))

	db.mux.Lock()
	defer db.mux.Unlock()

	i := slices.Index(db.database.BannedWords, word)
	if i < 0 {
		return ErrWordNotFound
	}

	previous := db.database.BannedWords
	db.database.BannedWords = slices.Delete(slices.Clone(previous), i, i+1)

	err := db.writeDB()
	if err != nil {
		db.database.BannedWords = previous
		return err
	}

	return nil
}
