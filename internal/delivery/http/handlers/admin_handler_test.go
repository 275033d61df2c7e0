package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/LavaJover/shvark-loyalty-service/internal/domain"
	programdto "github.com/LavaJover/shvark-loyalty-service/internal/usecase/dto/program"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProgramUsecase struct {
	created *programdto.CreateProgramInput
	err     error
}

func (s *stubProgramUsecase) CreateProgram(input *programdto.CreateProgramInput) (*domain.BonusProgram, error) {
	s.created = input
	if s.err != nil {
		return nil, s.err
	}
	return &domain.BonusProgram{ID: "program-1", Title: input.Title}, nil
}

func (s *stubProgramUsecase) UpdateProgram(input *programdto.UpdateProgramInput) (*domain.BonusProgram, error) {
	return &domain.BonusProgram{ID: input.ID, Title: input.Title}, s.err
}

func (s *stubProgramUsecase) DeleteProgram(programID string) error { return s.err }

func (s *stubProgramUsecase) GetProgram(programID string) (*domain.BonusProgram, error) {
	return nil, s.err
}

func (s *stubProgramUsecase) ListPrograms(enabledOnly bool) ([]*domain.BonusProgram, error) {
	return nil, s.err
}

type capturingRequestUsecase struct {
	stubRequestUsecase
	gotUserID    string
	gotProgramID string
	gotCode      string
	gotIssuedBy  string
}

func (s *capturingRequestUsecase) IssueBonus(userID, programID, bonusCode, issuedBy string) (*domain.HistoryEntry, error) {
	s.gotUserID = userID
	s.gotProgramID = programID
	s.gotCode = bonusCode
	s.gotIssuedBy = issuedBy
	return s.stubRequestUsecase.IssueBonus(userID, programID, bonusCode, issuedBy)
}

func newAdminRouter(programs *stubProgramUsecase, requests *capturingRequestUsecase) chi.Router {
	handler := NewAdminBonusHandler(programs, &stubProgressUsecase{}, requests, &stubHistoryUsecase{})
	r := chi.NewRouter()
	r.Post("/api/admin/bonus/programs", handler.CreateProgram)
	r.Post("/api/admin/bonus/programs/{programID}/issue/{userID}", handler.IssueBonus)
	return r
}

func TestCreateProgramRejectsMalformedBody(t *testing.T) {
	router := newAdminRouter(&stubProgramUsecase{}, &capturingRequestUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/bonus/programs", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProgramForwardsConfiguration(t *testing.T) {
	programs := &stubProgramUsecase{}
	router := newAdminRouter(programs, &capturingRequestUsecase{})

	body := `{
		"title": "Постоянный покупатель",
		"min_threshold": 500,
		"enabled": true,
		"levels": [{"name": "Bronze", "min_points": 0, "cashback_percent": 1}],
		"prizes": [{"name": "Кружка", "points_cost": 200, "quantity": 5, "enabled": true}]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/bonus/programs", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, programs.created)
	assert.Equal(t, "Постоянный покупатель", programs.created.Title)
	assert.Equal(t, 500.0, programs.created.MinThreshold)
	require.Len(t, programs.created.Levels, 1)
	require.Len(t, programs.created.Prizes, 1)
	assert.Equal(t, int32(5), programs.created.Prizes[0].Quantity)
}

func TestIssueBonusForwardsCodeAndAdmin(t *testing.T) {
	requests := &capturingRequestUsecase{
		stubRequestUsecase: stubRequestUsecase{entry: &domain.HistoryEntry{ID: "h-1"}},
	}
	router := newAdminRouter(&stubProgramUsecase{}, requests)

	req := httptest.NewRequest(http.MethodPost,
		"/api/admin/bonus/programs/loyalty/issue/user-1?bonus_code=PROMO-2025", nil)
	req.Header.Set("X-User-ID", "admin-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", requests.gotUserID)
	assert.Equal(t, "loyalty", requests.gotProgramID)
	assert.Equal(t, "PROMO-2025", requests.gotCode)
	assert.Equal(t, "admin-1", requests.gotIssuedBy)
}

func TestIssueBonusValidationError(t *testing.T) {
	requests := &capturingRequestUsecase{
		stubRequestUsecase: stubRequestUsecase{issueErr: domain.ErrValidation},
	}
	router := newAdminRouter(&stubProgramUsecase{}, requests)

	req := httptest.NewRequest(http.MethodPost,
		"/api/admin/bonus/programs/loyalty/issue/user-1", nil)
	req.Header.Set("X-User-ID", "admin-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
