package endpoints

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
)

// Allowance for the multipart envelope around the file itself.
const multipartOverhead = 1 << 20

func (cfg *ApiConfig) invalidFileMessage() string {
	return fmt.Sprintf("empty content or invalid file, only *.txt files up to %d bytes are supported", cfg.MaxUploadBytes)
}

// UploadFile checks an uploaded text file. 200 when clean, 422 when it
// contains profanity, both with the check result as body.
func (cfg *ApiConfig) UploadFile(resp http.ResponseWriter, req *http.Request) {
	req.Body = http.MaxBytesReader(resp, req.Body, cfg.MaxUploadBytes+multipartOverhead)

	file, header, err := req.FormFile("file")
	if err != nil {
		cfg.Logger.Warn("upload without readable file", "error", err)
		respondWithError(resp, http.StatusBadRequest, cfg.invalidFileMessage())
		return
	}
	defer file.Close()

	if header.Size <= 0 || header.Size > cfg.MaxUploadBytes || filepath.Ext(header.Filename) != ".txt" {
		cfg.Logger.Warn("uploaded file rejected", "filename", header.Filename, "size", header.Size)
		respondWithError(resp, http.StatusBadRequest, cfg.invalidFileMessage())
		return
	}

	dat, err := io.ReadAll(file)
	if err != nil {
		respondWithError(resp, http.StatusBadRequest, cfg.invalidFileMessage())
		return
	}

	result, err := cfg.Profanity.CheckProfanity(req.Context(), string(dat), false)
	if err != nil {
		cfg.Logger.Error("profanity check failed", "error", err)
		respondWithError(resp, http.StatusInternalServerError, "profanity check failed")
		return
	}

	if result.ContainsProfanity {
		cfg.Logger.Warn("uploaded file is not a valid text file", "filename", header.Filename)
		respondWithJSON(resp, http.StatusUnprocessableEntity, result)
		return
	}

	cfg.Logger.Info("uploaded file is a valid text file", "filename", header.Filename)
	respondWithJSON(resp, http.StatusOK, result)
}

// PostCheck checks a JSON text body and always answers 200 with the result.
func (cfg *ApiConfig) PostCheck(resp http.ResponseWriter, req *http.Request) {
	type parameters struct {
		Text                 string `json:"text"`
		RemovePartialMatches bool   `json:"remove_partial_matches"`
	}

	req.Body = http.MaxBytesReader(resp, req.Body, cfg.MaxUploadBytes+multipartOverhead)

	decoder := json.NewDecoder(req.Body)
	p := parameters{}
	err := decoder.Decode(&p)
	if err != nil {
		respondWithError(resp, http.StatusBadRequest, "unparseable body")
		return
	}

	result, err := cfg.Profanity.CheckProfanity(req.Context(), p.Text, p.RemovePartialMatches)
	if err != nil {
		cfg.Logger.Error("profanity check failed", "error", err)
		respondWithError(resp, http.StatusInternalServerError, "profanity check failed")
		return
	}

	respondWithJSON(resp, http.StatusOK, result)
}
