package endpoints

import (
	"errors"
	"net/http"

	"github.com/Quorum-Code/profanitycheck/internal/auth"
	"github.com/Quorum-Code/profanitycheck/internal/database"
)

func (cfg *ApiConfig) GetProfanityList(resp http.ResponseWriter, req *http.Request) {
	words, err := cfg.ProfanityList.GetProfanityList(req.Context())
	if err != nil {
		cfg.Logger.Error("profanity list unavailable", "error", err)
		respondWithError(resp, http.StatusNotFound, "profanity list not found")
		return
	}

	respondWithJSON(resp, http.StatusOK, words)
}

func (cfg *ApiConfig) PostProfanity(resp http.ResponseWriter, req *http.Request) {
	word := req.URL.Query().Get("profanity")

	added, err := cfg.ProfanityList.AddProfanity(req.Context(), word)
	if errors.Is(err, database.ErrEmptyWord) {
		respondWithError(resp, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		cfg.Logger.Error("adding profanity failed", "error", err)
		respondWithError(resp, http.StatusInternalServerError, "adding profanity failed")
		return
	}

	if !added {
		respondWithError(resp, http.StatusBadRequest, database.ErrWordExists.Error())
		return
	}

	respondWithMessage(resp, http.StatusOK, "profanity is successfully added to the profanity list")
}

func (cfg *ApiConfig) DeleteProfanity(resp http.ResponseWriter, req *http.Request) {
	word := req.URL.Query().Get("profanity")

	deleted, err := cfg.ProfanityList.DeleteProfanity(req.Context(), word)
	if err != nil {
		cfg.Logger.Error("deleting profanity failed", "error", err)
		respondWithError(resp, http.StatusInternalServerError, "deleting profanity failed")
		return
	}

	if !deleted {
		respondWithError(resp, http.StatusBadRequest, database.ErrWordNotFound.Error())
		return
	}

	respondWithMessage(resp, http.StatusOK, "profanity is successfully deleted from the profanity list")
}

// RequireAdmin only lets requests with a valid access token through.
func (cfg *ApiConfig) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(resp http.ResponseWriter, req *http.Request) {
		if cfg.JWTSecret == "" {
			respondWithError(resp, http.StatusUnauthorized, auth.ErrNoSecret.Error())
			return
		}

		token, err := auth.GetBearerToken(req.Header)
		if err != nil {
			respondWithError(resp, http.StatusUnauthorized, err.Error())
			return
		}

		subject, err := auth.ValidateToken(token, cfg.JWTSecret, auth.AccessIssuer)
		if err != nil {
			respondWithError(resp, http.StatusUnauthorized, "unauthorized token")
			return
		}

		cfg.Logger.Debug("admin request", "subject", subject, "path", req.URL.Path)
		next(resp, req)
	}
}
