package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/LavaJover/shvark-loyalty-service/internal/domain"
	"github.com/LavaJover/shvark-loyalty-service/internal/usecase"
	programdto "github.com/LavaJover/shvark-loyalty-service/internal/usecase/dto/program"
	"github.com/go-chi/chi/v5"
)

// AdminBonusHandler serves the administrative surface: program CRUD,
// the issuance queue and the full ledger.
type AdminBonusHandler struct {
	programUsecase  usecase.ProgramUsecase
	progressUsecase usecase.ProgressUsecase
	requestUsecase  usecase.BonusRequestUsecase
	historyUsecase  usecase.HistoryUsecase
}

func NewAdminBonusHandler(
	programUsecase usecase.ProgramUsecase,
	progressUsecase usecase.ProgressUsecase,
	requestUsecase usecase.BonusRequestUsecase,
	historyUsecase usecase.HistoryUsecase) *AdminBonusHandler {

	return &AdminBonusHandler{
		programUsecase:  programUsecase,
		progressUsecase: progressUsecase,
		requestUsecase:  requestUsecase,
		historyUsecase:  historyUsecase,
	}
}

type levelRequest struct {
	Name            string  `json:"name"`
	MinPoints       float64 `json:"min_points"`
	CashbackPercent float64 `json:"cashback_percent"`
	Color           string  `json:"color"`
	Benefits        string  `json:"benefits"`
}

type prizeRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	PointsCost  float64 `json:"points_cost"`
	Quantity    int32   `json:"quantity"`
	Enabled     bool    `json:"enabled"`
}

type programRequest struct {
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	FullDescription   string         `json:"full_description"`
	ImageURL          string         `json:"image_url"`
	RequestButtonText string         `json:"request_button_text"`
	MinThreshold      float64        `json:"min_threshold"`
	MaxAmount         float64        `json:"max_amount"`
	Enabled           bool           `json:"enabled"`
	Levels            []levelRequest `json:"levels"`
	Prizes            []prizeRequest `json:"prizes"`
}

func (h *AdminBonusHandler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := h.programUsecase.ListPrograms(false)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, programs)
}

func (h *AdminBonusHandler) CreateProgram(w http.ResponseWriter, r *http.Request) {
	var req programRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}
	program, err := h.programUsecase.CreateProgram(&programdto.CreateProgramInput{
		Title:             req.Title,
		Description:       req.Description,
		FullDescription:   req.FullDescription,
		ImageURL:          req.ImageURL,
		RequestButtonText: req.RequestButtonText,
		MinThreshold:      req.MinThreshold,
		MaxAmount:         req.MaxAmount,
		Enabled:           req.Enabled,
		Levels:            toLevelInputs(req.Levels),
		Prizes:            toPrizeInputs(req.Prizes),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, program)
}

func (h *AdminBonusHandler) UpdateProgram(w http.ResponseWriter, r *http.Request) {
	var req programRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: invalid request body", domain.ErrValidation))
		return
	}
	program, err := h.programUsecase.UpdateProgram(&programdto.UpdateProgramInput{
		ID:                chi.URLParam(r, "programID"),
		Title:             req.Title,
		Description:       req.Description,
		FullDescription:   req.FullDescription,
		ImageURL:          req.ImageURL,
		RequestButtonText: req.RequestButtonText,
		MinThreshold:      req.MinThreshold,
		MaxAmount:         req.MaxAmount,
		Enabled:           req.Enabled,
		Levels:            toLevelInputs(req.Levels),
		Prizes:            toPrizeInputs(req.Prizes),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, program)
}

func (h *AdminBonusHandler) DeleteProgram(w http.ResponseWriter, r *http.Request) {
	if err := h.programUsecase.DeleteProgram(chi.URLParam(r, "programID")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Программа удалена"})
}

func (h *AdminBonusHandler) ListProgramUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.progressUsecase.ListProgramUsers(chi.URLParam(r, "programID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

func (h *AdminBonusHandler) IssueBonus(w http.ResponseWriter, r *http.Request) {
	programID := chi.URLParam(r, "programID")
	targetUserID := chi.URLParam(r, "userID")
	bonusCode := r.URL.Query().Get("bonus_code")
	entry, err := h.requestUsecase.IssueBonus(targetUserID, programID, bonusCode, userID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Бонус выдан",
		"entry":   entry,
	})
}

func (h *AdminBonusHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.historyUsecase.GetAllHistory()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": history})
}

func toLevelInputs(levels []levelRequest) []programdto.LevelInput {
	inputs := make([]programdto.LevelInput, len(levels))
	for i, level := range levels {
		inputs[i] = programdto.LevelInput{
			Name:            level.Name,
			MinPoints:       level.MinPoints,
			CashbackPercent: level.CashbackPercent,
			Color:           level.Color,
			Benefits:        level.Benefits,
		}
	}
	return inputs
}

func toPrizeInputs(prizes []prizeRequest) []programdto.PrizeInput {
	inputs := make([]programdto.PrizeInput, len(prizes))
	for i, prize := range prizes {
		inputs[i] = programdto.PrizeInput{
			Name:        prize.Name,
			Description: prize.Description,
			ImageURL:    prize.ImageURL,
			PointsCost:  prize.PointsCost,
			Quantity:    prize.Quantity,
			Enabled:     prize.Enabled,
		}
	}
	return inputs
}
