package api

import (
	"testing"
	"time"

	"github.com/hy4ri/backoffice-tui/internal/table"
)

func TestRecordProjection(t *testing.T) {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	order := Order{
		ID:         "o1",
		OrderID:    1001,
		Status:     OrderPending,
		Total:      0,
		Restaurant: &Ref{ID: "r1", Name: "Sushi Bar"},
		CreatedAt:  created,
	}

	rec := order.Record()
	if got := table.Resolve(rec, "restaurant.name"); got != "Sushi Bar" {
		t.Errorf("expected restaurant name, got %v", got)
	}
	if got := table.Resolve(rec, "customer.name"); got != nil {
		t.Errorf("expected nil for missing customer, got %v", got)
	}
	if got := table.Resolve(rec, "total"); got != 0.0 {
		t.Errorf("expected zero total to be present, got %v", got)
	}
	if got := table.Resolve(rec, "createdAt"); got != created {
		t.Errorf("expected created time, got %v", got)
	}
	if rec.ID() != "o1" {
		t.Errorf("expected ID o1, got %q", rec.ID())
	}

	bill := Bill{ID: "b1", Order: &OrderRef{ID: "o1", OrderID: 1001}}
	if got := table.Resolve(bill.Record(), "order.orderId"); got != 1001 {
		t.Errorf("expected order id 1001, got %v", got)
	}
	if got := table.Resolve(bill.Record(), "dueAt"); got != nil {
		t.Errorf("expected zero due date to resolve nil, got %v", got)
	}
}

func TestBillIsOverdue(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		bill Bill
		want bool
	}{
		{"unpaid past due", Bill{DueAt: now.Add(-time.Hour)}, true},
		{"paid past due", Bill{Paid: true, DueAt: now.Add(-time.Hour)}, false},
		{"unpaid future", Bill{DueAt: now.Add(time.Hour)}, false},
		{"no due date", Bill{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bill.IsOverdue(now); got != tt.want {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}
