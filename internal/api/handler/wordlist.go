package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/molter/wordsearch/internal/api/apierr"
	"github.com/molter/wordsearch/internal/api/request"
	"github.com/molter/wordsearch/internal/api/response"
	"github.com/molter/wordsearch/internal/services/generator"
	"github.com/molter/wordsearch/internal/services/wordlist"
)

// WordListHandler handles word list endpoints
type WordListHandler struct {
	wordlists *wordlist.Service
	generator *generator.Service
}

// NewWordListHandler creates a new word list handler
func NewWordListHandler(wordlists *wordlist.Service, generator *generator.Service) *WordListHandler {
	return &WordListHandler{
		wordlists: wordlists,
		generator: generator,
	}
}

// Create handles POST /api/v1/wordlists
func (h *WordListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateWordList
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		WriteError(w, apierr.NewInvalidRequestError("Word list name is required"))
		return
	}

	list, err := h.wordlists.CreateWordList(r.Context(), name, req.Words)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.WordListFromModel(list))
}

// Get handles GET /api/v1/wordlists/{name}
func (h *WordListHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	list, err := h.wordlists.GetWordList(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WordListFromModel(list))
}

// Delete handles DELETE /api/v1/wordlists/{name}
func (h *WordListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.wordlists.DeleteWordList(r.Context(), name); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// GeneratePuzzle handles POST /api/v1/wordlists/{name}/puzzles
func (h *WordListHandler) GeneratePuzzle(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req request.GeneratePuzzle
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}

	puzzle, err := h.generator.CreatePuzzleFromWordList(r.Context(), name, req.Size, req.AllowDiagonals, req.Seed)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PuzzleFromModel(puzzle, true))
}
