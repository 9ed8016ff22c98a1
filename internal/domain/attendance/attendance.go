package attendance

import "github.com/glowdesk/salon-manager/internal/models"

// BaselineShiftHours is the fixed shift length; anything beyond it
// counts as overtime.
const BaselineShiftHours = 9.0

// HoursWorked is logout minus login in hours, zero until logout is
// recorded.
func HoursWorked(rec *models.Attendance) float64 {
	if rec == nil || rec.LogoutAt == nil {
		return 0
	}
	h := rec.LogoutAt.Sub(rec.LoginAt).Hours()
	if h < 0 {
		return 0
	}
	return h
}

func Overtime(rec *models.Attendance) float64 {
	ot := HoursWorked(rec) - BaselineShiftHours
	if ot < 0 {
		return 0
	}
	return ot
}
