package attendance

import (
	"testing"
	"time"

	"github.com/glowdesk/salon-manager/internal/models"
)

func rec(login string, logout string) *models.Attendance {
	day := "2025-06-02T"
	in, _ := time.Parse(time.RFC3339, day+login+":00Z")
	r := &models.Attendance{StaffID: "s1", Date: "2025-06-02", LoginAt: in}
	if logout != "" {
		out, _ := time.Parse(time.RFC3339, day+logout+":00Z")
		r.LogoutAt = &out
	}
	return r
}

func TestHoursWorked(t *testing.T) {
	tests := []struct {
		name string
		rec  *models.Attendance
		want float64
	}{
		{"full shift", rec("09:00", "18:00"), 9},
		{"long day", rec("09:00", "19:30"), 10.5},
		{"short day", rec("10:00", "14:00"), 4},
		{"still logged in", rec("09:00", ""), 0},
		{"logout before login", rec("18:00", "09:00"), 0},
		{"nil record", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HoursWorked(tt.rec); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOvertime(t *testing.T) {
	tests := []struct {
		name string
		rec  *models.Attendance
		want float64
	}{
		{"exactly baseline", rec("09:00", "18:00"), 0},
		{"ninety minutes over", rec("09:00", "19:30"), 1.5},
		{"under baseline", rec("10:00", "14:00"), 0},
		{"still logged in", rec("09:00", ""), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overtime(tt.rec); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
