//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"reminder-scheduler/internal/domain/reminder"
	"reminder-scheduler/internal/usecase"
	"reminder-scheduler/tests/common/builder"
	usecasemock "reminder-scheduler/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type ReminderUseCaseTestSuite struct {
	suite.Suite
	ctx      context.Context
	mockCtrl *gomock.Controller
	mockRepo *usecasemock.MockReminderRepository
	uc       usecase.ReminderUseCase
}

func (s *ReminderUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = usecasemock.NewMockReminderRepository(s.mockCtrl)
	s.uc = usecase.NewReminderUseCase(s.mockRepo, discardLogger())
}

func (s *ReminderUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReminderUseCaseSuite(t *testing.T) {
	suite.Run(t, new(ReminderUseCaseTestSuite))
}

func (s *ReminderUseCaseTestSuite) TestAddReminder() {
	s.Run("success: trims text before create", func() {
		want := builder.NewReminderBuilder().BuildDomain()
		s.mockRepo.EXPECT().Create(gomock.Any(), reminder.OwnerID(1), "buy milk tomorrow at 9").
			Return(want, nil).Times(1)

		got, err := s.uc.AddReminder(s.ctx, 1, "  buy milk tomorrow at 9 \n")
		s.Require().NoError(err)
		s.Same(want, got)
	})

	s.Run("error: empty text never reaches the repository", func() {
		for _, text := range []string{"", "   ", "\t\n"} {
			got, err := s.uc.AddReminder(s.ctx, 1, text)
			s.ErrorIs(err, reminder.ErrEmptyText)
			s.Nil(got)
		}
	})

	s.Run("error: parse failure is returned unchanged after one attempt", func() {
		s.mockRepo.EXPECT().Create(gomock.Any(), reminder.OwnerID(1), "hello").
			Return(nil, reminder.ErrParse).Times(1)

		got, err := s.uc.AddReminder(s.ctx, 1, "hello")
		s.ErrorIs(err, reminder.ErrParse)
		s.Nil(got)
	})
}

func (s *ReminderUseCaseTestSuite) TestGetRemindersList() {
	s.Run("empty list", func() {
		s.mockRepo.EXPECT().FindByOwner(gomock.Any(), reminder.OwnerID(1)).Return(nil, nil).Times(1)

		got, err := s.uc.GetRemindersList(s.ctx, 1)
		s.Require().NoError(err)
		s.Equal("No reminders in the list", got)
	})

	s.Run("numbered lines in repository order", func() {
		first := builder.NewReminderBuilder().BuildDomain()
		second := builder.NewReminderBuilder().
			WithText("call mom").
			With(func(b *builder.ReminderBuilder) { b.DueAtDisplay = "3 января 2024 г., 18:30" }).
			BuildDomain()
		s.mockRepo.EXPECT().FindByOwner(gomock.Any(), reminder.OwnerID(1)).
			Return([]*reminder.Reminder{first, second}, nil).Times(1)

		got, err := s.uc.GetRemindersList(s.ctx, 1)
		s.Require().NoError(err)
		s.Equal("1. buy milk (2 января 2024 г., 9:00)\n2. call mom (3 января 2024 г., 18:30)", got)
	})

	s.Run("repository failure", func() {
		s.mockRepo.EXPECT().FindByOwner(gomock.Any(), reminder.OwnerID(1)).
			Return(nil, errors.New("store down")).Times(1)

		_, err := s.uc.GetRemindersList(s.ctx, 1)
		s.Error(err)
	})
}

func (s *ReminderUseCaseTestSuite) TestGetReminders() {
	list := []*reminder.Reminder{builder.NewReminderBuilder().BuildDomain()}
	s.mockRepo.EXPECT().FindByOwner(gomock.Any(), reminder.OwnerID(5)).Return(list, nil).Times(1)

	got, err := s.uc.GetReminders(s.ctx, 5)
	s.Require().NoError(err)
	s.Equal(list, got)
}

func (s *ReminderUseCaseTestSuite) TestDeleteReminder() {
	rem := builder.NewReminderBuilder().BuildDomain()

	s.Run("success: returns removed reminder", func() {
		gomock.InOrder(
			s.mockRepo.EXPECT().FindByID(gomock.Any(), rem.OwnerID(), rem.ID()).Return(rem, nil),
			s.mockRepo.EXPECT().Delete(gomock.Any(), rem.OwnerID(), rem.ID()).Return(true, nil),
		)

		got, err := s.uc.DeleteReminder(s.ctx, rem.OwnerID(), rem.ID())
		s.Require().NoError(err)
		s.Same(rem, got)
	})

	s.Run("absent: nil without error", func() {
		s.mockRepo.EXPECT().FindByID(gomock.Any(), rem.OwnerID(), rem.ID()).Return(nil, nil)

		got, err := s.uc.DeleteReminder(s.ctx, rem.OwnerID(), rem.ID())
		s.NoError(err)
		s.Nil(got)
	})

	s.Run("fired between lookup and delete", func() {
		s.mockRepo.EXPECT().FindByID(gomock.Any(), rem.OwnerID(), rem.ID()).Return(rem, nil)
		s.mockRepo.EXPECT().Delete(gomock.Any(), rem.OwnerID(), rem.ID()).Return(false, nil)

		got, err := s.uc.DeleteReminder(s.ctx, rem.OwnerID(), rem.ID())
		s.NoError(err)
		s.Nil(got)
	})
}

func (s *ReminderUseCaseTestSuite) TestClearReminders() {
	s.mockRepo.EXPECT().DeleteAll(gomock.Any(), reminder.OwnerID(1)).Return(3, nil).Times(1)
	s.NoError(s.uc.ClearReminders(s.ctx, 1))

	s.mockRepo.EXPECT().DeleteAll(gomock.Any(), reminder.OwnerID(1)).Return(0, errors.New("store down")).Times(1)
	s.Error(s.uc.ClearReminders(s.ctx, 1))
}

func TestFormatReminderList_UsesDisplayNotDueAt(t *testing.T) {
	rem := builder.NewReminderBuilder().
		WithDueAt(time.Date(2030, 6, 1, 0, 0, 0, 0, time.UTC)).
		BuildDomain()

	if got := usecase.FormatReminderList([]*reminder.Reminder{rem}); got != "1. buy milk (2 января 2024 г., 9:00)" {
		t.Errorf("unexpected list rendering: %q", got)
	}
}
