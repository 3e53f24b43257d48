package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Quorum-Code/profanitycheck/internal/cache"
	"github.com/Quorum-Code/profanitycheck/internal/database"
)

const bannedWordsKey = "BannedWordsList"

// Store is the persistent side of the profanity list.
type Store interface {
	GetBannedWords() []string
	AddBannedWord(word string) error
	DeleteBannedWord(word string) error
}

// ProfanityListRepository serves the banned word list from a cache in front
// of the database. Writes go to the database and drop the cached list.
type ProfanityListRepository struct {
	store  Store
	cache  cache.Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewProfanityListRepository(store Store, c cache.Cache, ttl time.Duration, logger *slog.Logger) *ProfanityListRepository {
	return &ProfanityListRepository{
		store:  store,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// GetProfanityList returns a snapshot the caller may keep and modify.
func (r *ProfanityListRepository) GetProfanityList(ctx context.Context) ([]string, error) {
	words, ok, err := r.cache.Get(ctx, bannedWordsKey)
	if err != nil {
		r.logger.Warn("profanity list cache read failed", "error", err)
	}
	if ok {
		return words, nil
	}

	words = r.store.GetBannedWords()
	r.logger.Debug("profanity list loaded from database", "count", len(words))

	err = r.cache.Set(ctx, bannedWordsKey, words, r.ttl)
	if err != nil {
		r.logger.Warn("profanity list cache write failed", "error", err)
	}

	return words, nil
}

// AddProfanity reports false when word is already in the list.
func (r *ProfanityListRepository) AddProfanity(ctx context.Context, word string) (bool, error) {
	err := r.store.AddBannedWord(word)
	if errors.Is(err, database.ErrWordExists) {
		r.logger.Warn("profanity list already contains word", "profanity", word)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	r.logger.Info("profanity added to the profanity list")
	r.invalidate(ctx)
	return true, nil
}

// DeleteProfanity reports false when word is not in the list.
func (r *ProfanityListRepository) DeleteProfanity(ctx context.Context, word string) (bool, error) {
	err := r.store.DeleteBannedWord(word)
	if errors.Is(err, database.ErrWordNotFound) {
		r.logger.Warn("profanity does not exist in profanity list", "profanity", word)
		return false, nil
	}
	if err != nil {
		return false, err
	}

	r.logger.Info("profanity deleted from the profanity list")
	r.invalidate(ctx)
	return true, nil
}

func (r *ProfanityListRepository) invalidate(ctx context.Context) {
	err := r.cache.Delete(ctx, bannedWordsKey)
	if err != nil {
		r.logger.Error("profanity list cache invalidation failed", "error", err)
		return
	}
	r.logger.Debug("profanity list removed from cache")
}
