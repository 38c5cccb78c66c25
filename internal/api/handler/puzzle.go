package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/molter/wordsearch/internal/api/apierr"
	"github.com/molter/wordsearch/internal/api/request"
	"github.com/molter/wordsearch/internal/api/response"
	"github.com/molter/wordsearch/internal/model"
	"github.com/molter/wordsearch/internal/services/generator"
	"github.com/molter/wordsearch/internal/services/render"
)

// PuzzleHandler handles puzzle endpoints
type PuzzleHandler struct {
	generator *generator.Service
}

// NewPuzzleHandler creates a new puzzle handler
func NewPuzzleHandler(generator *generator.Service) *PuzzleHandler {
	return &PuzzleHandler{
		generator: generator,
	}
}

// Create handles POST /api/v1/puzzles
func (h *PuzzleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePuzzle
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, apierr.NewInvalidRequestError("Invalid request body"))
		return
	}

	puzzle, err := h.generator.CreatePuzzle(r.Context(), generator.Request{
		Words:          req.Words,
		Size:           req.Size,
		AllowDiagonals: req.AllowDiagonals,
		Seed:           req.Seed,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	// The creator gets the solution key; later readers must ask for it
	response.JSON(w, http.StatusCreated, response.PuzzleFromModel(puzzle, true))
}

// Get handles GET /api/v1/puzzles/{id}
func (h *PuzzleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])

	puzzle, err := h.generator.GetPuzzle(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	includeSolution := r.URL.Query().Get("solution") == "true"
	response.JSON(w, http.StatusOK, response.PuzzleFromModel(puzzle, includeSolution))
}

// GetText handles GET /api/v1/puzzles/{id}/text
func (h *PuzzleHandler) GetText(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])

	puzzle, err := h.generator.GetPuzzle(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Text(w, http.StatusOK, render.PuzzleString(puzzle))
}

// Delete handles DELETE /api/v1/puzzles/{id}
func (h *PuzzleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PuzzleID(mux.Vars(r)["id"])

	if err := h.generator.DeletePuzzle(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
