package usecase

import (
	"testing"

	"github.com/LavaJover/shvark-loyalty-service/internal/domain"
	programdto "github.com/LavaJover/shvark-loyalty-service/internal/usecase/dto/program"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createInput() *programdto.CreateProgramInput {
	return &programdto.CreateProgramInput{
		Title:        "Постоянный покупатель",
		MinThreshold: 500,
		Enabled:      true,
		Levels: []programdto.LevelInput{
			{Name: "Gold", MinPoints: 50000, CashbackPercent: 10},
			{Name: "Bronze", MinPoints: 0, CashbackPercent: 1},
		},
		Prizes: []programdto.PrizeInput{
			{Name: "Кружка", PointsCost: 200, Quantity: 5, Enabled: true},
		},
	}
}

func TestCreateProgramAssignsIDsAndSortsLevels(t *testing.T) {
	uc := NewDefaultProgramUsecase(newFakeProgramRepo())

	program, err := uc.CreateProgram(createInput())
	require.NoError(t, err)
	assert.NotEmpty(t, program.ID)
	require.Len(t, program.Levels, 2)
	assert.Equal(t, "Bronze", program.Levels[0].Name)
	assert.Equal(t, "Gold", program.Levels[1].Name)
	for _, level := range program.Levels {
		assert.NotEmpty(t, level.ID)
	}
	require.Len(t, program.Prizes, 1)
	assert.NotEmpty(t, program.Prizes[0].ID)
}

func TestCreateProgramRejectsInvalidConfiguration(t *testing.T) {
	repo := newFakeProgramRepo()
	uc := NewDefaultProgramUsecase(repo)

	input := createInput()
	input.Title = ""
	_, err := uc.CreateProgram(input)
	require.ErrorIs(t, err, domain.ErrValidation)

	programs, err := repo.ListPrograms(false)
	require.NoError(t, err)
	assert.Empty(t, programs, "invalid configuration must not be persisted")
}

func TestUpdateProgramReplacesConfiguration(t *testing.T) {
	uc := NewDefaultProgramUsecase(newFakeProgramRepo())
	created, err := uc.CreateProgram(createInput())
	require.NoError(t, err)

	updated, err := uc.UpdateProgram(&programdto.UpdateProgramInput{
		ID:      created.ID,
		Title:   "Новая программа",
		Enabled: false,
		Levels: []programdto.LevelInput{
			{Name: "Base", MinPoints: 0, CashbackPercent: 3},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Новая программа", updated.Title)
	assert.False(t, updated.Enabled)
	require.Len(t, updated.Levels, 1)
	assert.Empty(t, updated.Prizes)
}

func TestUpdateProgramUnknownID(t *testing.T) {
	uc := NewDefaultProgramUsecase(newFakeProgramRepo())

	_, err := uc.UpdateProgram(&programdto.UpdateProgramInput{ID: "missing", Title: "x"})
	assert.ErrorIs(t, err, domain.ErrProgramNotFound)
}

func TestDeleteProgram(t *testing.T) {
	uc := NewDefaultProgramUsecase(newFakeProgramRepo())
	created, err := uc.CreateProgram(createInput())
	require.NoError(t, err)

	require.NoError(t, uc.DeleteProgram(created.ID))
	_, err = uc.GetProgram(created.ID)
	assert.ErrorIs(t, err, domain.ErrProgramNotFound)
	assert.ErrorIs(t, uc.DeleteProgram(created.ID), domain.ErrProgramNotFound)
}
