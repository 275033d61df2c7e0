package handlers

import (
	"net/http"

	"github.com/LavaJover/shvark-loyalty-service/internal/usecase"
	"github.com/go-chi/chi/v5"
)

// BonusHandler serves the user-facing loyalty endpoints consumed by
// the storefront dashboard.
type BonusHandler struct {
	progressUsecase   usecase.ProgressUsecase
	redemptionUsecase usecase.RedemptionUsecase
	requestUsecase    usecase.BonusRequestUsecase
	historyUsecase    usecase.HistoryUsecase
}

func NewBonusHandler(
	progressUsecase usecase.ProgressUsecase,
	redemptionUsecase usecase.RedemptionUsecase,
	requestUsecase usecase.BonusRequestUsecase,
	historyUsecase usecase.HistoryUsecase) *BonusHandler {

	return &BonusHandler{
		progressUsecase:   progressUsecase,
		redemptionUsecase: redemptionUsecase,
		requestUsecase:    requestUsecase,
		historyUsecase:    historyUsecase,
	}
}

func (h *BonusHandler) GetPrograms(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "missing user"})
		return
	}
	programs, err := h.progressUsecase.GetUserPrograms(uid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"programs": programs})
}

func (h *BonusHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "missing user"})
		return
	}
	history, err := h.historyUsecase.GetUserHistory(uid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": history})
}

func (h *BonusHandler) RequestBonus(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "missing user"})
		return
	}
	programID := chi.URLParam(r, "programID")
	if err := h.requestUsecase.RequestBonus(uid, programID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Запрос отправлен! Администратор свяжется с вами."})
}

func (h *BonusHandler) RedeemPrize(w http.ResponseWriter, r *http.Request) {
	uid := userID(r)
	if uid == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "missing user"})
		return
	}
	programID := chi.URLParam(r, "programID")
	prizeID := chi.URLParam(r, "prizeID")
	redemption, err := h.redemptionUsecase.RedeemPrize(uid, programID, prizeID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message":    "Приз оформлен! Мы свяжемся с вами для доставки.",
		"redemption": redemption,
	})
}
