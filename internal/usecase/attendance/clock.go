package attendance

import (
	"context"

	domain "github.com/glowdesk/salon-manager/internal/domain/attendance"
	"github.com/glowdesk/salon-manager/internal/httperr"
	"github.com/glowdesk/salon-manager/internal/models"
	"github.com/glowdesk/salon-manager/internal/registry"
	"github.com/glowdesk/salon-manager/internal/timezone"
)

type Clock struct {
	tables *registry.Tables
}

func NewClock(tables *registry.Tables) *Clock {
	return &Clock{tables: tables}
}

// Login opens today's attendance record for a staff member. Duplicate
// logins for the same day are not prevented.
func (uc *Clock) Login(ctx context.Context, staffID string) (*models.Attendance, error) {
	if !uc.staffExists(ctx, staffID) {
		return nil, httperr.ErrBusiness("staff_not_found")
	}

	now := timezone.Now()
	rec := models.Attendance{
		ID:        models.NewID(),
		StaffID:   staffID,
		Date:      now.Format("2006-01-02"),
		LoginAt:   now,
		CreatedAt: now,
	}

	if err := uc.tables.Attendance.Add(ctx, rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Logout stamps the most recent open record for today.
func (uc *Clock) Logout(ctx context.Context, staffID string) (*models.Attendance, error) {
	records := uc.tables.Attendance.GetAll(ctx)
	today := timezone.Today()
	now := timezone.Now()

	for i := range records {
		if records[i].StaffID == staffID && records[i].Date == today && records[i].LogoutAt == nil {
			records[i].LogoutAt = &now
			if err := uc.tables.Attendance.Save(ctx, records); err != nil {
				return nil, err
			}
			return &records[i], nil
		}
	}
	return nil, httperr.ErrBusiness("no_open_attendance")
}

type DaySummary struct {
	StaffID  string  `json:"staff_id"`
	Date     string  `json:"date"`
	Hours    float64 `json:"hours"`
	Overtime float64 `json:"overtime"`
}

// Summary tallies hours and overtime per staff member for one day.
func (uc *Clock) Summary(ctx context.Context, date string) []DaySummary {
	totals := map[string]float64{}
	order := []string{}

	for _, rec := range uc.tables.Attendance.GetAll(ctx) {
		if rec.Date != date {
			continue
		}
		if _, seen := totals[rec.StaffID]; !seen {
			order = append(order, rec.StaffID)
		}
		totals[rec.StaffID] += domain.HoursWorked(&rec)
	}

	out := make([]DaySummary, 0, len(order))
	for _, staffID := range order {
		hours := totals[staffID]
		ot := hours - domain.BaselineShiftHours
		if ot < 0 {
			ot = 0
		}
		out = append(out, DaySummary{
			StaffID:  staffID,
			Date:     date,
			Hours:    hours,
			Overtime: ot,
		})
	}
	return out
}

func (uc *Clock) staffExists(ctx context.Context, id string) bool {
	for _, s := range uc.tables.Staff.GetAll(ctx) {
		if s.ID == id {
			return true
		}
	}
	return false
}
