package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/saras/kosakata/internal/errors"
	"github.com/saras/kosakata/internal/models"
	"github.com/saras/kosakata/internal/services"
	"github.com/saras/kosakata/internal/srs"
	"github.com/saras/kosakata/internal/testutil/mocks"
)

func TestRecordAnswer_FirstAnswerCreatesProgress(t *testing.T) {
	words := new(mocks.MockWordRepository)
	progress := new(mocks.MockProgressRepository)
	svc := services.NewPracticeService(words, progress, srs.DefaultParams(), nil)

	words.On("GetByTerm", mock.Anything, "rumah").Return(&models.Word{ID: 1, Term: "rumah"}, nil)
	progress.On("Get", mock.Anything, "rumah").Return(nil, nil)
	progress.On("Put", mock.Anything, mock.MatchedBy(func(p models.Progress) bool {
		return p.WordTerm == "rumah" && p.TimesSeen == 1 && p.Streak == 1
	})).Return(nil)
	progress.On("AppendAnswer", mock.Anything, mock.Anything).Return(nil)

	got, err := svc.RecordAnswer(context.Background(), "rumah", srs.Answer{Correct: true})

	require.NoError(t, err)
	assert.Equal(t, 1, got.Progress.TimesSeen)
	assert.False(t, got.JustMastered)
	progress.AssertExpectations(t)
}

func TestRecordAnswer_UnknownWord(t *testing.T) {
	words := new(mocks.MockWordRepository)
	progress := new(mocks.MockProgressRepository)
	svc := services.NewPracticeService(words, progress, srs.DefaultParams(), nil)

	words.On("GetByTerm", mock.Anything, "tidak-ada").Return(nil, nil)

	_, err := svc.RecordAnswer(context.Background(), "tidak-ada", srs.Answer{Correct: true})

	require.Error(t, err)
	appErr, ok := err.(*errors.AppError)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeNotFound, appErr.Code)
}

func TestRecordAnswer_MasteryFiresExactlyOnce(t *testing.T) {
	words := new(mocks.MockWordRepository)
	progress := new(mocks.MockProgressRepository)
	svc := services.NewPracticeService(words, progress, srs.DefaultParams(), nil)

	words.On("GetByTerm", mock.Anything, "rumah").Return(&models.Word{ID: 1, Term: "rumah"}, nil)

	// One correct answer away from the threshold.
	onEdge := &models.Progress{
		WordTerm: "rumah", TimesSeen: 4, TimesCorrect: 4, Streak: 4, Ease: 2.5,
		LastPracticedAt: time.Now().Add(-time.Hour), DueAt: time.Now(),
	}
	progress.On("Get", mock.Anything, "rumah").Return(onEdge, nil).Once()
	progress.On("Put", mock.Anything, mock.Anything).Return(nil)
	progress.On("AppendAnswer", mock.Anything, mock.Anything).Return(nil)

	got, err := svc.RecordAnswer(context.Background(), "rumah", srs.Answer{Correct: true})
	require.NoError(t, err)
	assert.True(t, got.JustMastered, "fifth consecutive correct answer crosses the threshold")
	assert.True(t, got.Progress.Mastered)

	// Already mastered: the flag must not fire again.
	after := got.Progress
	progress.On("Get", mock.Anything, "rumah").Return(&after, nil).Once()

	got, err = svc.RecordAnswer(context.Background(), "rumah", srs.Answer{Correct: true})
	require.NoError(t, err)
	assert.False(t, got.JustMastered)
	assert.True(t, got.Progress.Mastered)
}

func TestRecordAnswer_HistoryFailureDoesNotFailReview(t *testing.T) {
	words := new(mocks.MockWordRepository)
	progress := new(mocks.MockProgressRepository)
	svc := services.NewPracticeService(words, progress, srs.DefaultParams(), nil)

	words.On("GetByTerm", mock.Anything, "rumah").Return(&models.Word{ID: 1, Term: "rumah"}, nil)
	progress.On("Get", mock.Anything, "rumah").Return(nil, nil)
	progress.On("Put", mock.Anything, mock.Anything).Return(nil)
	progress.On("AppendAnswer", mock.Anything, mock.Anything).Return(assert.AnError)

	_, err := svc.RecordAnswer(context.Background(), "rumah", srs.Answer{Correct: true})

	assert.NoError(t, err)
}

func TestNextWords_FiltersMasteredAndExcluded(t *testing.T) {
	words := new(mocks.MockWordRepository)
	progress := new(mocks.MockProgressRepository)
	svc := services.NewPracticeService(words, progress, srs.DefaultParams(), nil)

	catalog := []models.Word{{Term: "rumah"}, {Term: "air"}, {Term: "makan"}}
	words.On("List", mock.Anything, mock.Anything).Return(catalog, nil)
	progress.On("GetAll", mock.Anything).Return(map[string]models.Progress{
		"makan": {WordTerm: "makan", TimesSeen: 8, Mastered: true},
	}, nil)

	got, err := svc.NextWords(context.Background(), 10, []string{"air"})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "rumah", got[0].Term)
}

func TestNextWords_RetriesWithoutExclusions(t *testing.T) {
	words := new(mocks.MockWordRepository)
	progress := new(mocks.MockProgressRepository)
	svc := services.NewPracticeService(words, progress, srs.DefaultParams(), nil)

	catalog := []models.Word{{Term: "rumah"}}
	words.On("List", mock.Anything, mock.Anything).Return(catalog, nil)
	progress.On("GetAll", mock.Anything).Return(map[string]models.Progress{}, nil)

	got, err := svc.NextWords(context.Background(), 5, []string{"rumah"})

	require.NoError(t, err)
	require.Len(t, got, 1, "a just-shown word beats an empty session")
	assert.Equal(t, "rumah", got[0].Term)
}

func TestNextWords_EmptyCatalogIsNotAnError(t *testing.T) {
	words := new(mocks.MockWordRepository)
	progress := new(mocks.MockProgressRepository)
	svc := services.NewPracticeService(words, progress, srs.DefaultParams(), nil)

	words.On("List", mock.Anything, mock.Anything).Return([]models.Word{}, nil)
	progress.On("GetAll", mock.Anything).Return(map[string]models.Progress{}, nil)

	got, err := svc.NextWords(context.Background(), 5, nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}
