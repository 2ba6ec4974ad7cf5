package api

import (
	"fmt"
	"net/url"
)

// GetBills returns all bills.
func (c *Client) GetBills() ([]Bill, error) {
	bills, err := getList[Bill](c, "/bills", nil)
	if err != nil {
		return bills, fmt.Errorf("failed to get bills: %w", err)
	}
	return bills, nil
}

// MarkBillPaid records payment of a bill.
func (c *Client) MarkBillPaid(id string) error {
	if err := c.Post("/bills/"+url.PathEscape(id)+"/pay", nil, nil); err != nil {
		return fmt.Errorf("failed to mark bill %s paid: %w", id, err)
	}
	return nil
}

// DeleteBill deletes a bill.
func (c *Client) DeleteBill(id string) error {
	if err := c.Delete("/bills/" + url.PathEscape(id)); err != nil {
		return fmt.Errorf("failed to delete bill %s: %w", id, err)
	}
	return nil
}
