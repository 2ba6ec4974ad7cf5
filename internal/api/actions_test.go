package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type recordedRequest struct {
	method string
	path   string
	body   map[string]interface{}
}

func newRecordingServer(t *testing.T, reqs *[]recordedRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{method: r.Method, path: r.URL.Path}
		if r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&rec.body); err != nil {
				t.Errorf("failed to decode body: %v", err)
			}
		}
		*reqs = append(*reqs, rec)

		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"id": "1", "status": "accepted"})
	}))
}

func TestActions(t *testing.T) {
	tests := []struct {
		name       string
		call       func(c *Client) error
		wantMethod string
		wantPath   string
		wantBody   map[string]interface{}
	}{
		{
			name:       "block user",
			call:       func(c *Client) error { return c.SetUserBlocked("u1", true) },
			wantMethod: http.MethodPost,
			wantPath:   "/users/u1/block",
			wantBody:   map[string]interface{}{"blocked": true},
		},
		{
			name:       "delete user",
			call:       func(c *Client) error { return c.DeleteUser("u1") },
			wantMethod: http.MethodDelete,
			wantPath:   "/users/u1",
		},
		{
			name:       "approve restaurant",
			call:       func(c *Client) error { return c.SetRestaurantApproved("r1", true) },
			wantMethod: http.MethodPost,
			wantPath:   "/restaurants/r1/approve",
			wantBody:   map[string]interface{}{"approved": true},
		},
		{
			name: "update restaurant",
			call: func(c *Client) error {
				city := "Lyon"
				_, err := c.UpdateRestaurant("r1", UpdateRestaurantRequest{City: &city})
				return err
			},
			wantMethod: http.MethodPut,
			wantPath:   "/restaurants/r1",
			wantBody:   map[string]interface{}{"city": "Lyon"},
		},
		{
			name: "advance order",
			call: func(c *Client) error {
				_, err := c.UpdateOrderStatus("o1", OrderAccepted)
				return err
			},
			wantMethod: http.MethodPut,
			wantPath:   "/orders/o1/status",
			wantBody:   map[string]interface{}{"status": "accepted"},
		},
		{
			name:       "assign courier",
			call:       func(c *Client) error { return c.AssignCourier("d1", "c9") },
			wantMethod: http.MethodPost,
			wantPath:   "/deliveries/d1/assign",
			wantBody:   map[string]interface{}{"courier_id": "c9"},
		},
		{
			name:       "close auction",
			call:       func(c *Client) error { return c.CloseAuction("a1") },
			wantMethod: http.MethodPost,
			wantPath:   "/auctions/a1/close",
		},
		{
			name:       "award tender",
			call:       func(c *Client) error { return c.AwardTender("t1", "b2") },
			wantMethod: http.MethodPost,
			wantPath:   "/tenders/t1/award",
			wantBody:   map[string]interface{}{"bidder_id": "b2"},
		},
		{
			name:       "pay bill",
			call:       func(c *Client) error { return c.MarkBillPaid("b1") },
			wantMethod: http.MethodPost,
			wantPath:   "/bills/b1/pay",
		},
		{
			name:       "delete bill",
			call:       func(c *Client) error { return c.DeleteBill("b1") },
			wantMethod: http.MethodDelete,
			wantPath:   "/bills/b1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var reqs []recordedRequest
			server := newRecordingServer(t, &reqs)
			defer server.Close()

			client := NewClient(server.URL, "test-token")
			if err := tt.call(client); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(reqs) != 1 {
				t.Fatalf("expected 1 request, got %d", len(reqs))
			}
			got := reqs[0]
			if got.method != tt.wantMethod {
				t.Errorf("expected %s, got %s", tt.wantMethod, got.method)
			}
			if got.path != tt.wantPath {
				t.Errorf("expected path %q, got %q", tt.wantPath, got.path)
			}
			for k, v := range tt.wantBody {
				if got.body[k] != v {
					t.Errorf("expected body[%s]=%v, got %v", k, v, got.body[k])
				}
			}
		})
	}
}

func TestActionValidation(t *testing.T) {
	client := NewClient("http://127.0.0.1:0", "test-token")

	if _, err := client.UpdateOrderStatus("o1", ""); err == nil {
		t.Error("expected error for empty status")
	}
	if err := client.AssignCourier("d1", ""); err == nil {
		t.Error("expected error for empty courier")
	}
	if err := client.AwardTender("t1", ""); err == nil {
		t.Error("expected error for empty bidder")
	}
}

func TestNextOrderStatus(t *testing.T) {
	tests := map[string]string{
		OrderPending:   OrderAccepted,
		OrderOnTheWay:  OrderDelivered,
		OrderDelivered: "",
		OrderCancelled: "",
		"bogus":        "",
	}
	for in, want := range tests {
		if got := NextOrderStatus(in); got != want {
			t.Errorf("NextOrderStatus(%q) = %q, want %q", in, got, want)
		}
	}
}
