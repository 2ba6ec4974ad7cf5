package views

import (
	"fmt"

	"github.com/hy4ri/backoffice-tui/internal/api"
	"github.com/hy4ri/backoffice-tui/internal/table"
)

var yes = table.Flag(true)
var no = table.Flag(false)

func usersPage() *Page {
	return &Page{
		Name:      "users",
		Title:     "Users",
		Icon:      "👤",
		ShortName: "Usr",
		Columns: []table.Column{
			{ID: "name", Label: "Name", Searchable: yes, Sortable: true, Width: 24},
			{ID: "email", Label: "Email", Searchable: yes, Sortable: true, Width: 30},
			{ID: "phone", Label: "Phone", Searchable: yes, Width: 16},
			{ID: "role", Label: "Role", Searchable: yes, Sortable: true},
			{ID: "blocked", Label: "Blocked", Sortable: true},
			{ID: "createdAt", Label: "Joined", Sortable: true},
		},
		Load:   recordLoader((*api.Client).GetUsers),
		Delete: (*api.Client).DeleteUser,
		Action: &Action{
			Label: "block/unblock",
			Done:  "blocked/unblocked",
			Run: func(c *api.Client, rec table.Record, _ string) error {
				blocked, _ := rec["blocked"].(bool)
				return c.SetUserBlocked(rec.ID(), !blocked)
			},
		},
	}
}

func restaurantsPage() *Page {
	return &Page{
		Name:      "restaurants",
		Title:     "Restaurants",
		Icon:      "🍽️",
		ShortName: "Rst",
		Columns: []table.Column{
			{ID: "name", Label: "Name", Sortable: true, Width: 28},
			{ID: "owner.name", Label: "Owner", Sortable: true, Width: 22},
			{ID: "city", Label: "City", Sortable: true},
			{ID: "rating", Label: "Rating", Searchable: no, Sortable: true, AlignRight: true},
			{ID: "approved", Label: "Approved", Searchable: no, Sortable: true},
			{ID: "createdAt", Label: "Created", Searchable: no, Sortable: true},
		},
		Load:   recordLoader((*api.Client).GetRestaurants),
		Delete: (*api.Client).DeleteRestaurant,
		Action: &Action{
			Label: "approve/revoke",
			Done:  "approved/revoked",
			Run: func(c *api.Client, rec table.Record, _ string) error {
				approved, _ := rec["approved"].(bool)
				return c.SetRestaurantApproved(rec.ID(), !approved)
			},
		},
	}
}

func ordersPage() *Page {
	return &Page{
		Name:      "orders",
		Title:     "Orders",
		Icon:      "🧾",
		ShortName: "Ord",
		Columns: []table.Column{
			{ID: "orderId", Label: "Order #", Searchable: yes, Sortable: true, AlignRight: true},
			{ID: "restaurant.name", Label: "Restaurant", Searchable: yes, Sortable: true, Width: 24},
			{ID: "customer.name", Label: "Customer", Searchable: yes, Sortable: true, Width: 22},
			{ID: "status", Label: "Status", Searchable: yes, Sortable: true},
			{ID: "total", Label: "Total", Sortable: true, AlignRight: true},
			{ID: "createdAt", Label: "Placed", Sortable: true},
		},
		Load:   recordLoader((*api.Client).GetOrders),
		Delete: (*api.Client).DeleteOrder,
		Action: &Action{
			Label: "advance status",
			Done:  "advanced",
			Run: func(c *api.Client, rec table.Record, _ string) error {
				status := table.Stringify(rec["status"])
				next := api.NextOrderStatus(status)
				if next == "" {
					return fmt.Errorf("order %s cannot advance from %q", table.Stringify(rec["orderId"]), status)
				}
				_, err := c.UpdateOrderStatus(rec.ID(), next)
				return err
			},
		},
	}
}

func deliveriesPage() *Page {
	return &Page{
		Name:      "deliveries",
		Title:     "Deliveries",
		Icon:      "🛵",
		ShortName: "Dlv",
		Columns: []table.Column{
			{ID: "order.orderId", Label: "Order #", Sortable: true, AlignRight: true},
			{ID: "courier.name", Label: "Courier", Sortable: true, Width: 22},
			{ID: "status", Label: "Status", Sortable: true},
			{ID: "address", Label: "Address", Width: 32},
			{ID: "fee", Label: "Fee", Searchable: no, Sortable: true, AlignRight: true},
			{ID: "deliveredAt", Label: "Delivered", Searchable: no, Sortable: true},
		},
		Load:   recordLoader((*api.Client).GetDeliveries),
		Delete: (*api.Client).DeleteDelivery,
		Action: &Action{
			Label:  "assign courier",
			Done:   "assigned",
			Prompt: "Courier ID",
			Run: func(c *api.Client, rec table.Record, input string) error {
				return c.AssignCourier(rec.ID(), input)
			},
		},
	}
}

func auctionsPage() *Page {
	return &Page{
		Name:      "auctions",
		Title:     "Auctions",
		Icon:      "🔨",
		ShortName: "Auc",
		Columns: []table.Column{
			{ID: "title", Label: "Title", Sortable: true, Width: 30},
			{ID: "seller.name", Label: "Seller", Sortable: true, Width: 20},
			{ID: "startingPrice", Label: "Start", Searchable: no, Sortable: true, AlignRight: true},
			{ID: "currentBid", Label: "Current bid", Searchable: no, Sortable: true, AlignRight: true},
			{ID: "bids", Label: "Bids", Searchable: no, Sortable: true, AlignRight: true},
			{ID: "status", Label: "Status", Sortable: true},
			{ID: "endsAt", Label: "Ends", Searchable: no, Sortable: true},
		},
		Load:   recordLoader((*api.Client).GetAuctions),
		Delete: (*api.Client).DeleteAuction,
		Action: &Action{
			Label: "close auction",
			Done:  "closed",
			Run: func(c *api.Client, rec table.Record, _ string) error {
				return c.CloseAuction(rec.ID())
			},
		},
	}
}

func tendersPage() *Page {
	return &Page{
		Name:      "tenders",
		Title:     "Tenders",
		Icon:      "📑",
		ShortName: "Tnd",
		Columns: []table.Column{
			{ID: "title", Label: "Title", Sortable: true, Width: 30},
			{ID: "buyer.name", Label: "Buyer", Sortable: true, Width: 20},
			{ID: "budget", Label: "Budget", Searchable: no, Sortable: true, AlignRight: true},
			{ID: "offers", Label: "Offers", Searchable: no, Sortable: true, AlignRight: true},
			{ID: "status", Label: "Status", Sortable: true},
			{ID: "awardedTo.name", Label: "Awarded to", Sortable: true, Width: 20},
			{ID: "deadline", Label: "Deadline", Searchable: no, Sortable: true},
		},
		Load:   recordLoader((*api.Client).GetTenders),
		Delete: (*api.Client).DeleteTender,
		Action: &Action{
			Label:  "award tender",
			Done:   "awarded",
			Prompt: "Bidder ID",
			Run: func(c *api.Client, rec table.Record, input string) error {
				return c.AwardTender(rec.ID(), input)
			},
		},
	}
}

func billsPage() *Page {
	return &Page{
		Name:      "bills",
		Title:     "Bills",
		Icon:      "💳",
		ShortName: "Bil",
		Columns: []table.Column{
			{ID: "number", Label: "Number", Searchable: yes, Sortable: true},
			{ID: "order.orderId", Label: "Order #", Searchable: yes, Sortable: true, AlignRight: true},
			{ID: "amount", Label: "Amount", Sortable: true, AlignRight: true},
			{ID: "paid", Label: "Paid", Sortable: true},
			{ID: "issuedAt", Label: "Issued", Sortable: true},
			{ID: "dueAt", Label: "Due", Sortable: true},
		},
		Load:   recordLoader((*api.Client).GetBills),
		Delete: (*api.Client).DeleteBill,
		Action: &Action{
			Label: "mark paid",
			Done:  "marked paid",
			Run: func(c *api.Client, rec table.Record, _ string) error {
				if paid, _ := rec["paid"].(bool); paid {
					return fmt.Errorf("bill %s is already paid", table.Stringify(rec["number"]))
				}
				return c.MarkBillPaid(rec.ID())
			},
		},
	}
}
