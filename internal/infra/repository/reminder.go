package repository

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"reminder-scheduler/internal/domain/reminder"
	"reminder-scheduler/internal/infra"
	"reminder-scheduler/internal/infra/duetime"
	"reminder-scheduler/internal/infra/kv"
	"reminder-scheduler/internal/infra/repository/converter"
	"reminder-scheduler/internal/pkg/clock"
	"reminder-scheduler/internal/pkg/config"
)

const (
	remindersByOwner = "remindersByOwner"
	remindersByTime  = "remindersByTime"
)

type DueTimeParser interface {
	Parse(text string, reference time.Time, offset int) (at time.Time, span string, ok bool)
}

// ReminderRepository keeps each reminder under two keys:
//
//	(remindersByOwner, ownerID, id)  -> reminder
//	(remindersByTime, dueAt, id)     -> {ownerID, id}
//
// Both are always written and removed in the same store commit.
type ReminderRepository struct {
	store  kv.Store
	parser DueTimeParser
	clock  clock.Clock
	offset int
	logger *slog.Logger
}

func NewReminderRepository(store kv.Store, parser DueTimeParser, clk clock.Clock, cfg config.Config, logger *slog.Logger) *ReminderRepository {
	return &ReminderRepository{
		store:  store,
		parser: parser,
		clock:  clk,
		offset: cfg.Reminder.TimeZoneOffset,
		logger: logger,
	}
}

func ownerPrefix(ownerID reminder.OwnerID) kv.Key {
	return kv.NewKey(remindersByOwner, ownerID.String())
}

func primaryKey(ownerID reminder.OwnerID, id reminder.ID) kv.Key {
	return ownerPrefix(ownerID).Append(id.String())
}

func timeKey(dueAt time.Time, id reminder.ID) kv.Key {
	return kv.NewKey(remindersByTime, converter.FormatDueAt(dueAt), id.String())
}

func (r *ReminderRepository) Create(ctx context.Context, ownerID reminder.OwnerID, rawText string) (*reminder.Reminder, error) {
	now := r.clock.Now()

	at, span, ok := r.parser.Parse(rawText, now, r.offset)
	if !ok {
		return nil, reminder.ErrParse
	}

	text, err := reminder.NewText(duetime.StripSpan(rawText, span))
	if err != nil {
		return nil, err
	}
	due, err := reminder.NewDueTime(at, duetime.FormatRU(at, r.offset))
	if err != nil {
		return nil, reminder.ErrParse
	}
	rem, err := reminder.NewReminder(ownerID, text, due, now)
	if err != nil {
		return nil, err
	}

	primary, err := converter.EncodeReminder(rem)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCorruptRecord, "failed to encode reminder", err)
	}
	pointer, err := converter.EncodeTimeIndex(rem)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCorruptRecord, "failed to encode time index", err)
	}

	err = r.store.SetMany(ctx, []kv.Entry{
		{Key: primaryKey(ownerID, rem.ID()), Value: primary},
		{Key: timeKey(rem.DueAt(), rem.ID()), Value: pointer},
	})
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to store reminder", err,
			slog.String("owner_id", ownerID.String()))
	}

	r.logger.Debug("reminder created",
		slog.String("reminder_id", rem.ID().String()),
		slog.String("owner_id", ownerID.String()),
		slog.Time("due_at", rem.DueAt()))
	return rem, nil
}

// FindByOwner returns the owner's reminders oldest first.
func (r *ReminderRepository) FindByOwner(ctx context.Context, ownerID reminder.OwnerID) ([]*reminder.Reminder, error) {
	entries, err := r.store.ScanPrefix(ctx, ownerPrefix(ownerID))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to list reminders", err,
			slog.String("owner_id", ownerID.String()))
	}

	reminders := r.decodeAll(entries)
	slices.SortFunc(reminders, reminder.Compare)
	return reminders, nil
}

// FindAll returns every stored reminder in key order.
func (r *ReminderRepository) FindAll(ctx context.Context) ([]*reminder.Reminder, error) {
	entries, err := r.store.ScanPrefix(ctx, kv.NewKey(remindersByOwner))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to scan reminders", err)
	}
	return r.decodeAll(entries), nil
}

// decodeAll skips records that cannot be read so one bad entry does not hide
// the rest.
func (r *ReminderRepository) decodeAll(entries []kv.Entry) []*reminder.Reminder {
	reminders := make([]*reminder.Reminder, 0, len(entries))
	for _, e := range entries {
		rem, err := converter.DecodeReminder(e.Value)
		if err != nil {
			r.logger.Warn("skipping unreadable reminder record",
				slog.String("key", e.Key.String()),
				slog.String("error", err.Error()))
			continue
		}
		reminders = append(reminders, rem)
	}
	return reminders
}

// FindByID returns nil, nil when the reminder does not exist.
func (r *ReminderRepository) FindByID(ctx context.Context, ownerID reminder.OwnerID, id reminder.ID) (*reminder.Reminder, error) {
	value, ok, err := r.store.Get(ctx, primaryKey(ownerID, id))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to get reminder", err,
			slog.String("owner_id", ownerID.String()),
			slog.String("reminder_id", id.String()))
	}
	if !ok {
		return nil, nil
	}

	rem, err := converter.DecodeReminder(value)
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindCorruptRecord, "failed to decode reminder", err,
			slog.String("reminder_id", id.String()))
	}
	return rem, nil
}

// Delete removes both entries of the reminder. It reports false when the
// reminder was already gone.
func (r *ReminderRepository) Delete(ctx context.Context, ownerID reminder.OwnerID, id reminder.ID) (bool, error) {
	rem, err := r.FindByID(ctx, ownerID, id)
	if err != nil {
		return false, err
	}
	if rem == nil {
		return false, nil
	}
	if err := r.Remove(ctx, rem); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes the primary entry and its time twin in one commit.
func (r *ReminderRepository) Remove(ctx context.Context, rem *reminder.Reminder) error {
	err := r.store.DeleteMany(ctx, []kv.Key{
		primaryKey(rem.OwnerID(), rem.ID()),
		timeKey(rem.DueAt(), rem.ID()),
	})
	if err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to delete reminder", err,
			slog.String("owner_id", rem.OwnerID().String()),
			slog.String("reminder_id", rem.ID().String()))
	}
	return nil
}

// DeleteAll removes every reminder of the owner together with its time
// entries and returns how many reminders were removed.
func (r *ReminderRepository) DeleteAll(ctx context.Context, ownerID reminder.OwnerID) (int, error) {
	entries, err := r.store.ScanPrefix(ctx, ownerPrefix(ownerID))
	if err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to list reminders", err,
			slog.String("owner_id", ownerID.String()))
	}
	if len(entries) == 0 {
		return 0, nil
	}

	keys := make([]kv.Key, 0, 2*len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
		rem, err := converter.DecodeReminder(e.Value)
		if err != nil {
			// the time twin is unknown; the scheduler drops it as an orphan
			continue
		}
		keys = append(keys, timeKey(rem.DueAt(), rem.ID()))
	}

	if err := r.store.DeleteMany(ctx, keys); err != nil {
		return 0, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to delete reminders", err,
			slog.String("owner_id", ownerID.String()))
	}
	return len(entries), nil
}

// FindDue returns time-index entries due at or before now, earliest first.
func (r *ReminderRepository) FindDue(ctx context.Context, now time.Time) ([]reminder.DueEntry, error) {
	entries, err := r.store.ScanRange(ctx,
		kv.NewKey(remindersByTime),
		kv.NewKey(remindersByTime, converter.FormatDueAt(now)))
	if err != nil {
		return nil, infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to scan time index", err)
	}

	due := make([]reminder.DueEntry, 0, len(entries))
	for _, e := range entries {
		entry, ok := r.decodeDueEntry(e)
		if !ok {
			continue
		}
		due = append(due, entry)
	}
	return due, nil
}

func (r *ReminderRepository) decodeDueEntry(e kv.Entry) (reminder.DueEntry, bool) {
	if len(e.Key) != 3 {
		r.logger.Warn("ignoring malformed time index key", slog.String("key", e.Key.String()))
		return reminder.DueEntry{}, false
	}
	dueAt, err := time.Parse(converter.DueAtLayout, e.Key[1])
	if err != nil {
		r.logger.Warn("ignoring malformed time index key",
			slog.String("key", e.Key.String()),
			slog.String("error", err.Error()))
		return reminder.DueEntry{}, false
	}
	id, err := reminder.ParseID(e.Key[2])
	if err != nil {
		r.logger.Warn("ignoring malformed time index key", slog.String("key", e.Key.String()))
		return reminder.DueEntry{}, false
	}

	entry := reminder.DueEntry{ID: id, DueAt: dueAt}
	rec, err := converter.DecodeTimeIndex(e.Value)
	if err != nil || rec.ID != id.String() {
		entry.Dangling = true
		return entry, true
	}
	entry.OwnerID = reminder.OwnerID(rec.OwnerID)
	return entry, true
}

// DeleteTimeEntry drops a single time-index entry whose primary is missing.
func (r *ReminderRepository) DeleteTimeEntry(ctx context.Context, entry reminder.DueEntry) error {
	key := timeKey(entry.DueAt, entry.ID)
	if err := r.store.DeleteMany(ctx, []kv.Key{key}); err != nil {
		return infra.WrapRepoErr(r.logger, infra.KindStoreFailure, "failed to delete time index entry", err,
			slog.String("key", key.String()))
	}
	return nil
}
