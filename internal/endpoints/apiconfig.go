package endpoints

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/Quorum-Code/profanitycheck/internal/database"
	"github.com/Quorum-Code/profanitycheck/internal/repository"
	"github.com/Quorum-Code/profanitycheck/internal/service"
)

type ApiConfig struct {
	Hits atomic.Int64

	Db            *database.DB
	ProfanityList *repository.ProfanityListRepository
	Profanity     *service.ProfanityService
	Logger        *slog.Logger

	JWTSecret      string
	MaxUploadBytes int64
}

func respondWithError(resp http.ResponseWriter, code int, msg string) {
	type errStruct struct {
		Error string `json:"error"`
	}

	respondWithJSON(resp, code, errStruct{Error: msg})
}

func respondWithMessage(resp http.ResponseWriter, code int, msg string) {
	type msgStruct struct {
		Message string `json:"message"`
	}

	respondWithJSON(resp, code, msgStruct{Message: msg})
}

func respondWithJSON(resp http.ResponseWriter, code int, payload interface{}) {
	dat, err := json.Marshal(payload)
	if err != nil {
		slog.Error("error marshalling JSON", "error", err)
		resp.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp.Header().Set("Content-Type", "application/json")
	resp.WriteHeader(code)
	resp.Write(dat)
}
