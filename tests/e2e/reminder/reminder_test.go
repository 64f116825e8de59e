//go:build e2e

package reminder_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"reminder-scheduler/internal/handler/dto/response"
	"reminder-scheduler/internal/infra/kv"
	"reminder-scheduler/internal/usecase"
	"reminder-scheduler/tests/common/authtest"
	"reminder-scheduler/tests/common/dbtest"
	"reminder-scheduler/tests/common/httptest"
	"reminder-scheduler/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ownerID      = 42
	remindersURL = "/api/owners/%d/reminders"
)

type ReminderSuite struct {
	e2e.SharedSuite
	token string
}

func (s *ReminderSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.token = authtest.NewJWTHelper(s.Config.JWT).GenerateToken(s.T(), authtest.DefaultCaller)
}

func TestReminderSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReminderSuite))
}

func (s *ReminderSuite) url(owner int64) string {
	return fmt.Sprintf(remindersURL, owner)
}

func (s *ReminderSuite) addReminder(t *testing.T, owner int64, text string) response.ReminderResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, s.url(owner), map[string]string{"text": text}, s.token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.ReminderResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
	return created
}

func (s *ReminderSuite) listReminders(t *testing.T, owner int64) response.ReminderListResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, s.url(owner), nil, s.token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var list response.ReminderListResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
	return list
}

func (s *ReminderSuite) ownerEntries(t *testing.T, owner int64) int {
	return dbtest.CountEntries(t, s.DB, kv.NewKey("remindersByOwner", fmt.Sprint(owner)))
}

func (s *ReminderSuite) timeEntries(t *testing.T) int {
	return dbtest.CountEntries(t, s.DB, kv.NewKey("remindersByTime"))
}

func (s *ReminderSuite) tick(t *testing.T) usecase.TickResult {
	t.Helper()
	res, err := s.Scheduler.Tick(context.Background())
	require.NoError(t, err)
	return res
}

// =============================================================================
// TestAddReminder
// =============================================================================

func (s *ReminderSuite) TestAddReminder() {
	s.Run("Normal case: due time is read from the text and both indexes are written", func() {
		t := s.T()

		created := s.addReminder(t, ownerID, "buy milk tomorrow")

		require.NotEmpty(t, created.ID)
		require.Equal(t, "buy milk", created.Text)
		require.Equal(t, int64(ownerID), created.OwnerID)
		require.Greater(t, created.DueAt, e2e.StartTime.Unix())
		require.Contains(t, created.DueAtDisplay, "2 января 2024 г.")

		require.Equal(t, 1, s.ownerEntries(t, ownerID))
		require.Equal(t, 1, s.timeEntries(t))
	})

	s.Run("Normal case: a bare hour after the day sets the clock time", func() {
		t := s.T()

		created := s.addReminder(t, ownerID, "buy milk tomorrow at 9")

		require.Equal(t, "buy milk", created.Text)
		require.Equal(t, time.Date(2024, 1, 2, 6, 0, 0, 0, time.UTC).Unix(), created.DueAt)
		require.Equal(t, "2 января 2024 г., 9:00", created.DueAtDisplay)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, s.url(ownerID)+"/text", nil, s.token)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "1. buy milk (2 января 2024 г., 9:00)", w.Body.String())
	})

	s.Run("Error case: text without a due time is rejected and nothing is stored", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, s.url(ownerID), map[string]string{"text": "hello"}, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "")

		require.Equal(t, 0, s.ownerEntries(t, ownerID))
		require.Equal(t, 0, s.timeEntries(t))
	})

	s.Run("Error case: missing or expired service token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, s.url(ownerID), map[string]string{"text": "buy milk tomorrow"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")

		expired := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(t, authtest.DefaultCaller)
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, s.url(ownerID), map[string]string{"text": "buy milk tomorrow"}, expired)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// =============================================================================
// TestListReminders
// =============================================================================

func (s *ReminderSuite) TestListReminders() {
	s.Run("Normal case: reminders are listed in creation order and scoped to the owner", func() {
		t := s.T()

		first := s.addReminder(t, ownerID, "call mom tomorrow")
		s.Clock.Add(time.Second)
		second := s.addReminder(t, ownerID, "pay rent tomorrow")
		s.addReminder(t, 7, "walk the dog tomorrow")

		list := s.listReminders(t, ownerID)
		require.Len(t, list.Reminders, 2)
		got := []string{list.Reminders[0].ID, list.Reminders[1].ID}
		if diff := cmp.Diff([]string{first.ID, second.ID}, got); diff != "" {
			t.Errorf("reminder order mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, 2, list.Count)
	})

	s.Run("Normal case: text list is numbered", func() {
		t := s.T()

		s.addReminder(t, ownerID, "call mom tomorrow")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, s.url(ownerID)+"/text", nil, s.token)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "1. call mom (2 января 2024 г.")
	})

	s.Run("Normal case: empty text list", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, s.url(ownerID)+"/text", nil, s.token)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "No reminders in the list", w.Body.String())
	})
}

// =============================================================================
// TestDeleteReminders
// =============================================================================

func (s *ReminderSuite) TestDeleteReminders() {
	s.Run("Normal case: delete removes both entries and a second delete is 404", func() {
		t := s.T()

		created := s.addReminder(t, ownerID, "buy milk tomorrow")
		url := s.url(ownerID) + "/" + created.ID

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, 0, s.ownerEntries(t, ownerID))
		require.Equal(t, 0, s.timeEntries(t))

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, url, nil, s.token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reminder not found")
	})

	s.Run("Normal case: another owner cannot delete the reminder", func() {
		t := s.T()

		created := s.addReminder(t, ownerID, "buy milk tomorrow")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, s.url(7)+"/"+created.ID, nil, s.token)
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Equal(t, 1, s.ownerEntries(t, ownerID))
	})

	s.Run("Normal case: clear empties both indexes for the owner only", func() {
		t := s.T()

		s.addReminder(t, ownerID, "buy milk tomorrow")
		s.addReminder(t, ownerID, "call mom tomorrow")
		s.addReminder(t, 7, "walk the dog tomorrow")

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, s.url(ownerID), nil, s.token)
		require.Equal(t, http.StatusNoContent, w.Code)

		require.Equal(t, 0, s.ownerEntries(t, ownerID))
		require.Equal(t, 1, s.ownerEntries(t, 7))
		require.Equal(t, 1, s.timeEntries(t))
	})
}

// =============================================================================
// TestDispatch - scheduler against the Postgres store and the Bot API fake
// =============================================================================

func (s *ReminderSuite) TestDispatch() {
	s.Run("Normal case: a due reminder is sent once and removed", func() {
		t := s.T()

		s.addReminder(t, ownerID, "buy milk tomorrow")

		res := s.tick(t)
		require.Equal(t, usecase.TickResult{}, res, "nothing is due yet")
		require.Empty(t, s.Telegram.Messages())

		s.Clock.Add(48 * time.Hour)
		res = s.tick(t)
		require.Equal(t, usecase.TickResult{Scanned: 1, Delivered: 1}, res)

		want := []e2e.SentMessage{{ChatID: ownerID, Text: "🔔 Reminder: buy milk"}}
		if diff := cmp.Diff(want, s.Telegram.Messages()); diff != "" {
			t.Errorf("sent messages mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, 0, s.listReminders(t, ownerID).Count)
		require.Equal(t, 0, s.timeEntries(t))

		res = s.tick(t)
		require.Equal(t, 0, res.Scanned)
		require.Len(t, s.Telegram.Messages(), 1)
	})

	s.Run("Normal case: a rejected delivery still removes the reminder", func() {
		t := s.T()

		s.addReminder(t, ownerID, "buy milk tomorrow")
		s.Telegram.FailNext(1)

		s.Clock.Add(48 * time.Hour)
		res := s.tick(t)
		require.Equal(t, usecase.TickResult{Scanned: 1, Failed: 1}, res)
		require.Equal(t, 0, s.ownerEntries(t, ownerID))
		require.Equal(t, 0, s.timeEntries(t))
	})

	s.Run("Normal case: a stray time entry is cleaned up without a message", func() {
		t := s.T()

		ghost := uuid.NewString()
		key := kv.NewKey("remindersByTime", "2023-12-31T00:00:00.000Z", ghost)
		dbtest.InsertRawEntry(t, s.DB, key, []byte(fmt.Sprintf(`{"ownerId":42,"id":%q}`, ghost)))

		res := s.tick(t)
		require.Equal(t, usecase.TickResult{Scanned: 1, Orphans: 1}, res)
		require.Empty(t, s.Telegram.Messages())
		require.Equal(t, 0, s.timeEntries(t))
	})

	s.Run("Normal case: reconciliation catches up on overdue reminders", func() {
		t := s.T()

		s.addReminder(t, ownerID, "buy milk tomorrow")
		s.addReminder(t, ownerID, "call mom in 5 days")

		s.Clock.Add(48 * time.Hour)
		res, err := s.Scheduler.Reconcile(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, res.Delivered)

		list := s.listReminders(t, ownerID)
		require.Equal(t, 1, list.Count)
		require.Equal(t, "call mom", list.Reminders[0].Text)
	})
}
