package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/Quorum-Code/profanitycheck/internal/auth"
)

func (cfg *ApiConfig) PostLoginHandler(resp http.ResponseWriter, req *http.Request) {
	type parameters struct {
		Email string `json:"email"`
		Pass  string `json:"password"`
	}

	if cfg.JWTSecret == "" {
		respondWithError(resp, http.StatusInternalServerError, "token signing is not configured")
		return
	}

	decoder := json.NewDecoder(req.Body)
	p := parameters{}
	err := decoder.Decode(&p)
	if err != nil {
		respondWithError(resp, http.StatusBadRequest, "unparseable body")
		return
	}

	if !cfg.Db.ValidLogin(p.Email, p.Pass) {
		respondWithError(resp, http.StatusUnauthorized, "incorrect login information")
		return
	}

	pair, err := auth.MakeTokenPair(p.Email, cfg.JWTSecret)
	if err != nil {
		cfg.Logger.Error("signing tokens failed", "error", err)
		respondWithError(resp, http.StatusInternalServerError, "something went wrong while tokening")
		return
	}

	err = cfg.Db.AddRefreshToken(pair.RefreshToken)
	if err != nil {
		cfg.Logger.Error("storing refresh token failed", "error", err)
		respondWithError(resp, http.StatusInternalServerError, "something went wrong while tokening")
		return
	}

	respondWithJSON(resp, http.StatusOK, pair)
}

func (cfg *ApiConfig) PostRefresh(resp http.ResponseWriter, req *http.Request) {
	if cfg.JWTSecret == "" {
		respondWithError(resp, http.StatusUnauthorized, auth.ErrNoSecret.Error())
		return
	}

	tk, err := auth.GetBearerToken(req.Header)
	if err != nil {
		respondWithError(resp, http.StatusUnauthorized, err.Error())
		return
	}

	subject, err := auth.ValidateToken(tk, cfg.JWTSecret, auth.RefreshIssuer)
	if err != nil {
		respondWithError(resp, http.StatusUnauthorized, "unauthorized token")
		return
	}

	// verify there are no revocations of this token
	if !cfg.Db.IsValidRefreshToken(tk) {
		respondWithError(resp, http.StatusUnauthorized, "refresh token revoked")
		return
	}

	ts, err := auth.MakeToken(subject, auth.AccessIssuer, cfg.JWTSecret, auth.AccessExpiry)
	if err != nil {
		cfg.Logger.Error("signing token failed", "error", err)
		respondWithError(resp, http.StatusInternalServerError, "something went wrong while tokening")
		return
	}

	type details struct {
		Token string `json:"token"`
	}

	respondWithJSON(resp, http.StatusOK, details{Token: ts})
}

func (cfg *ApiConfig) PostRevoke(resp http.ResponseWriter, req *http.Request) {
	tk, err := auth.GetBearerToken(req.Header)
	if err != nil {
		respondWithError(resp, http.StatusUnauthorized, err.Error())
		return
	}

	err = cfg.Db.RevokeRefreshToken(tk)
	if err != nil {
		cfg.Logger.Error("revoking refresh token failed", "error", err)
		respondWithError(resp, http.StatusInternalServerError, "revoking refresh token failed")
		return
	}

	resp.WriteHeader(http.StatusNoContent)
}
