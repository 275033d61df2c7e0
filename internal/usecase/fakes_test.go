package usecase

import (
	"sync"
	"time"

	"github.com/LavaJover/shvark-loyalty-service/internal/domain"
	"github.com/google/uuid"
)

// In-memory repositories for usecase tests. They copy values on the way
// in and out and guard every mutation with a mutex, mirroring how the
// store isolates concurrent transactions.

type fakeProgramRepo struct {
	mu       sync.Mutex
	programs map[string]*domain.BonusProgram
}

func newFakeProgramRepo(programs ...*domain.BonusProgram) *fakeProgramRepo {
	repo := &fakeProgramRepo{programs: make(map[string]*domain.BonusProgram)}
	for _, program := range programs {
		repo.programs[program.ID] = program
	}
	return repo
}

func (r *fakeProgramRepo) CreateProgram(program *domain.BonusProgram) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.programs[program.ID] = program
	return nil
}

func (r *fakeProgramRepo) UpdateProgram(program *domain.BonusProgram) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.programs[program.ID]; !ok {
		return domain.ErrProgramNotFound
	}
	r.programs[program.ID] = program
	return nil
}

func (r *fakeProgramRepo) DeleteProgram(programID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.programs[programID]; !ok {
		return domain.ErrProgramNotFound
	}
	delete(r.programs, programID)
	return nil
}

func (r *fakeProgramRepo) GetProgramByID(programID string) (*domain.BonusProgram, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	program, ok := r.programs[programID]
	if !ok {
		return nil, domain.ErrProgramNotFound
	}
	return program, nil
}

func (r *fakeProgramRepo) ListPrograms(enabledOnly bool) ([]*domain.BonusProgram, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	programs := make([]*domain.BonusProgram, 0, len(r.programs))
	for _, program := range r.programs {
		if enabledOnly && !program.Enabled {
			continue
		}
		programs = append(programs, program)
	}
	return programs, nil
}

type fakeProgressRepo struct {
	mu       sync.Mutex
	progress map[string]domain.UserProgramProgress
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{progress: make(map[string]domain.UserProgramProgress)}
}

func (r *fakeProgressRepo) key(userID, programID string) string {
	return userID + "/" + programID
}

func (r *fakeProgressRepo) GetProgress(userID, programID string) (*domain.UserProgramProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	progress, ok := r.progress[r.key(userID, programID)]
	if !ok {
		return nil, domain.ErrProgressNotFound
	}
	return &progress, nil
}

func (r *fakeProgressRepo) SaveProgress(progress *domain.UserProgramProgress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.progress[r.key(progress.UserID, progress.ProgramID)] = *progress
	return nil
}

func (r *fakeProgressRepo) ListProgressByUser(userID string) ([]*domain.UserProgramProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*domain.UserProgramProgress
	for _, progress := range r.progress {
		if progress.UserID == userID {
			p := progress
			result = append(result, &p)
		}
	}
	return result, nil
}

func (r *fakeProgressRepo) ListProgressByProgram(programID string) ([]*domain.UserProgramProgress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*domain.UserProgramProgress
	for _, progress := range r.progress {
		if progress.ProgramID == programID {
			p := progress
			result = append(result, &p)
		}
	}
	return result, nil
}

func (r *fakeProgressRepo) MarkRequested(userID, programID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	progress, ok := r.progress[r.key(userID, programID)]
	if !ok || progress.BonusRequested {
		return domain.ErrAlreadyRequested
	}
	progress.BonusRequested = true
	r.progress[r.key(userID, programID)] = progress
	return nil
}

// fakeIssueRepo clears the request flag and records the ledger entry in
// one locked step, same contract as the transactional implementation.
type fakeIssueRepo struct {
	progressRepo *fakeProgressRepo
	mu           sync.Mutex
	entries      []*domain.HistoryEntry
}

func newFakeIssueRepo(progressRepo *fakeProgressRepo) *fakeIssueRepo {
	return &fakeIssueRepo{progressRepo: progressRepo}
}

func (r *fakeIssueRepo) IssueBonus(entry *domain.HistoryEntry) error {
	r.progressRepo.mu.Lock()
	defer r.progressRepo.mu.Unlock()
	key := r.progressRepo.key(entry.UserID, entry.ProgramID)
	progress, ok := r.progressRepo.progress[key]
	if !ok || !progress.BonusRequested {
		return domain.ErrNotRequested
	}
	progress.BonusRequested = false
	r.progressRepo.progress[key] = progress

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

// fakeRedemptionRepo applies the same conditional-update semantics as
// the store: the checks and the two mutations happen under one lock, so
// a losing racer leaves balance and stock untouched.
type fakeRedemptionRepo struct {
	mu           sync.Mutex
	programRepo  *fakeProgramRepo
	progressRepo *fakeProgressRepo
}

func newFakeRedemptionRepo(programRepo *fakeProgramRepo, progressRepo *fakeProgressRepo) *fakeRedemptionRepo {
	return &fakeRedemptionRepo{programRepo: programRepo, progressRepo: progressRepo}
}

func (r *fakeRedemptionRepo) RedeemPrize(userID, programID, prizeID string) (*domain.Redemption, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	program, err := r.programRepo.GetProgramByID(programID)
	if err != nil {
		return nil, err
	}
	if !program.Enabled {
		return nil, domain.ErrProgramDisabled
	}
	prize := program.FindPrize(prizeID)
	if prize == nil {
		return nil, domain.ErrPrizeNotFound
	}
	if !prize.Enabled {
		return nil, domain.ErrPrizeUnavailable
	}
	if !prize.Unlimited() && prize.Quantity <= 0 {
		return nil, domain.ErrInsufficientStock
	}

	r.progressRepo.mu.Lock()
	defer r.progressRepo.mu.Unlock()
	key := r.progressRepo.key(userID, programID)
	progress, ok := r.progressRepo.progress[key]
	if !ok || progress.BonusPoints < prize.PointsCost {
		return nil, domain.ErrInsufficientPoints
	}

	if !prize.Unlimited() {
		prize.Quantity--
	}
	progress.BonusPoints -= prize.PointsCost
	r.progressRepo.progress[key] = progress

	return &domain.Redemption{
		ID:         uuid.NewString(),
		UserID:     userID,
		ProgramID:  programID,
		PrizeID:    prizeID,
		PrizeName:  prize.Name,
		PointsCost: prize.PointsCost,
		CreatedAt:  time.Now(),
	}, nil
}

type fakeHistoryRepo struct {
	mu      sync.Mutex
	entries []*domain.HistoryEntry
}

func (r *fakeHistoryRepo) Append(entry *domain.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *fakeHistoryRepo) ListByUser(userID string) ([]*domain.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*domain.HistoryEntry
	for _, entry := range r.entries {
		if entry.UserID == userID {
			result = append(result, entry)
		}
	}
	return result, nil
}

func (r *fakeHistoryRepo) ListAll() ([]*domain.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*domain.HistoryEntry(nil), r.entries...), nil
}
