package api

import "reminder-scheduler/internal/pkg/errs"

var errReminderNotFound = errs.New("reminder not found")
