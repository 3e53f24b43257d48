package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Quorum-Code/profanitycheck/internal/profanity"
)

// ListSource supplies the banned word snapshot for one check.
type ListSource interface {
	GetProfanityList(ctx context.Context) ([]string, error)
}

type Result struct {
	ContainsProfanity  bool     `json:"contains_profanity"`
	ProfanityWordCount int      `json:"profanity_word_count"`
	ProcessingTime     float64  `json:"processing_time_ms"`
	Profanities        []string `json:"profanities"`
}

type ProfanityService struct {
	list   ListSource
	logger *slog.Logger
}

func NewProfanityService(list ListSource, logger *slog.Logger) *ProfanityService {
	return &ProfanityService{list: list, logger: logger}
}

// CheckProfanity scans text against the current banned word list. The
// processing time covers the scan only, not fetching the list.
func (s *ProfanityService) CheckProfanity(ctx context.Context, text string, removePartialMatches bool) (Result, error) {
	bannedWords, err := s.list.GetProfanityList(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("get profanity list: %w", err)
	}

	start := time.Now()
	found := profanity.Detect(text, bannedWords, removePartialMatches)
	elapsed := time.Since(start)

	result := Result{
		ContainsProfanity:  len(found) > 0,
		ProfanityWordCount: len(found),
		ProcessingTime:     float64(elapsed.Microseconds()) / 1000,
		Profanities:        found,
	}

	if result.ContainsProfanity {
		s.logger.Info("text contains profanity", "count", result.ProfanityWordCount, "elapsed", elapsed)
	} else {
		s.logger.Info("text is clean", "elapsed", elapsed)
	}

	return result, nil
}
