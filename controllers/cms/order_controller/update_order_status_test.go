package order_controller

import "testing"

func TestCanTransitionOrder(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{"pending", "confirmed", true},
		{"pending", "cancelled", true},
		{"confirmed", "shipped", true},
		{"confirmed", "cancelled", true},
		{"shipped", "delivered", true},
		{"shipped", "cancelled", true},

		// no skipping ahead
		{"pending", "shipped", false},
		{"pending", "delivered", false},
		{"confirmed", "delivered", false},

		// no moving backwards
		{"shipped", "confirmed", false},
		{"delivered", "shipped", false},

		// terminal states stay terminal
		{"delivered", "cancelled", false},
		{"cancelled", "pending", false},
		{"cancelled", "confirmed", false},

		// self-transitions are not updates
		{"pending", "pending", false},

		// unknown statuses never transition
		{"refunded", "cancelled", false},
		{"pending", "refunded", false},
	}

	for _, tt := range tests {
		if got := canTransitionOrder(tt.from, tt.to); got != tt.want {
			t.Errorf("canTransitionOrder(%q, %q) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestStatusMilestoneColumn(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"confirmed", "confirmed_at"},
		{"shipped", "shipped_at"},
		{"delivered", "delivered_at"},
		{"cancelled", ""},
		{"pending", ""},
	}

	for _, tt := range tests {
		if got := statusMilestoneColumn(tt.status); got != tt.want {
			t.Errorf("statusMilestoneColumn(%q) = %q, want %q", tt.status, got, tt.want)
		}
	}
}
