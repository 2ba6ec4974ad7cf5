// Package api provides a client for the marketplace back-office REST API.
package api

import (
	"time"

	"github.com/hy4ri/backoffice-tui/internal/table"
)

// Ref is a lightweight reference to another entity embedded in a payload.
type Ref struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (r *Ref) record() any {
	if r == nil {
		return nil
	}
	return table.Record{"id": r.ID, "name": r.Name}
}

// OrderRef references an order from deliveries and bills.
type OrderRef struct {
	ID      string `json:"id"`
	OrderID int    `json:"order_id"`
}

func (r *OrderRef) record() any {
	if r == nil {
		return nil
	}
	return table.Record{"id": r.ID, "orderId": r.OrderID}
}

// User represents a platform account (customer, seller, courier or admin).
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	Blocked   bool      `json:"blocked"`
	CreatedAt time.Time `json:"created_at"`
}

// Record implements table.Recorder.
func (u User) Record() table.Record {
	return table.Record{
		"id":        u.ID,
		"name":      u.Name,
		"email":     u.Email,
		"phone":     u.Phone,
		"role":      u.Role,
		"blocked":   u.Blocked,
		"createdAt": optTime(u.CreatedAt),
	}
}

// Restaurant represents a seller storefront.
type Restaurant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Owner     *Ref      `json:"owner"`
	City      string    `json:"city"`
	Rating    float64   `json:"rating"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
}

// Record implements table.Recorder.
func (r Restaurant) Record() table.Record {
	return table.Record{
		"id":        r.ID,
		"name":      r.Name,
		"owner":     r.Owner.record(),
		"city":      r.City,
		"rating":    r.Rating,
		"approved":  r.Approved,
		"createdAt": optTime(r.CreatedAt),
	}
}

// Order statuses in lifecycle order.
const (
	OrderPending   = "pending"
	OrderAccepted  = "accepted"
	OrderPreparing = "preparing"
	OrderOnTheWay  = "on_the_way"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

var orderFlow = []string{OrderPending, OrderAccepted, OrderPreparing, OrderOnTheWay, OrderDelivered}

// NextOrderStatus returns the status that follows s, or "" when s is final
// or unknown.
func NextOrderStatus(s string) string {
	for i, st := range orderFlow {
		if st == s && i+1 < len(orderFlow) {
			return orderFlow[i+1]
		}
	}
	return ""
}

// Order represents a customer order.
type Order struct {
	ID         string    `json:"id"`
	OrderID    int       `json:"order_id"`
	Status     string    `json:"status"`
	Total      float64   `json:"total"`
	Restaurant *Ref      `json:"restaurant"`
	Customer   *Ref      `json:"customer"`
	CreatedAt  time.Time `json:"created_at"`
}

// Record implements table.Recorder.
func (o Order) Record() table.Record {
	return table.Record{
		"id":         o.ID,
		"orderId":    o.OrderID,
		"status":     o.Status,
		"total":      o.Total,
		"restaurant": o.Restaurant.record(),
		"customer":   o.Customer.record(),
		"createdAt":  optTime(o.CreatedAt),
	}
}

// Delivery represents the courier leg of an order.
type Delivery struct {
	ID          string     `json:"id"`
	Order       *OrderRef  `json:"order"`
	Courier     *Ref       `json:"courier"`
	Status      string     `json:"status"`
	Address     string     `json:"address"`
	Fee         float64    `json:"fee"`
	DeliveredAt *time.Time `json:"delivered_at"`
}

// Record implements table.Recorder.
func (d Delivery) Record() table.Record {
	rec := table.Record{
		"id":      d.ID,
		"order":   d.Order.record(),
		"courier": d.Courier.record(),
		"status":  d.Status,
		"address": d.Address,
		"fee":     d.Fee,
	}
	if d.DeliveredAt != nil {
		rec["deliveredAt"] = *d.DeliveredAt
	}
	return rec
}

// Auction represents a timed sale listing.
type Auction struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Seller        *Ref      `json:"seller"`
	StartingPrice float64   `json:"starting_price"`
	CurrentBid    float64   `json:"current_bid"`
	Bids          int       `json:"bids"`
	Status        string    `json:"status"`
	EndsAt        time.Time `json:"ends_at"`
}

// Record implements table.Recorder.
func (a Auction) Record() table.Record {
	return table.Record{
		"id":            a.ID,
		"title":         a.Title,
		"seller":        a.Seller.record(),
		"startingPrice": a.StartingPrice,
		"currentBid":    a.CurrentBid,
		"bids":          a.Bids,
		"status":        a.Status,
		"endsAt":        optTime(a.EndsAt),
	}
}

// Tender represents a buyer's request for offers.
type Tender struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Buyer     *Ref      `json:"buyer"`
	Budget    float64   `json:"budget"`
	Offers    int       `json:"offers"`
	Status    string    `json:"status"`
	AwardedTo *Ref      `json:"awarded_to"`
	Deadline  time.Time `json:"deadline"`
}

// Record implements table.Recorder.
func (t Tender) Record() table.Record {
	return table.Record{
		"id":        t.ID,
		"title":     t.Title,
		"buyer":     t.Buyer.record(),
		"budget":    t.Budget,
		"offers":    t.Offers,
		"status":    t.Status,
		"awardedTo": t.AwardedTo.record(),
		"deadline":  optTime(t.Deadline),
	}
}

// Bill represents an invoice raised against an order.
type Bill struct {
	ID       string    `json:"id"`
	Number   string    `json:"number"`
	Order    *OrderRef `json:"order"`
	Amount   float64   `json:"amount"`
	Paid     bool      `json:"paid"`
	IssuedAt time.Time `json:"issued_at"`
	DueAt    time.Time `json:"due_at"`
}

// Record implements table.Recorder.
func (b Bill) Record() table.Record {
	return table.Record{
		"id":       b.ID,
		"number":   b.Number,
		"order":    b.Order.record(),
		"amount":   b.Amount,
		"paid":     b.Paid,
		"issuedAt": optTime(b.IssuedAt),
		"dueAt":    optTime(b.DueAt),
	}
}

// IsOverdue returns true if the bill is unpaid past its due date.
func (b *Bill) IsOverdue(now time.Time) bool {
	return !b.Paid && !b.DueAt.IsZero() && b.DueAt.Before(now)
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}

// UpdateUserRequest represents the request body for updating a user.
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Role  *string `json:"role,omitempty"`
}

// UpdateRestaurantRequest represents the request body for updating a restaurant.
type UpdateRestaurantRequest struct {
	Name *string `json:"name,omitempty"`
	City *string `json:"city,omitempty"`
}

// optTime keeps zero times out of records so they resolve as missing.
func optTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
