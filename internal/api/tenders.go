package api

import (
	"fmt"
	"net/url"
)

// GetTenders returns all tenders.
func (c *Client) GetTenders() ([]Tender, error) {
	tenders, err := getList[Tender](c, "/tenders", nil)
	if err != nil {
		return tenders, fmt.Errorf("failed to get tenders: %w", err)
	}
	return tenders, nil
}

// AwardTender awards a tender to the bidder with bidderID.
func (c *Client) AwardTender(id, bidderID string) error {
	if bidderID == "" {
		return fmt.Errorf("bidder ID cannot be empty")
	}
	body := map[string]string{"bidder_id": bidderID}
	if err := c.Post("/tenders/"+url.PathEscape(id)+"/award", body, nil); err != nil {
		return fmt.Errorf("failed to award tender %s: %w", id, err)
	}
	return nil
}

// DeleteTender deletes a tender.
func (c *Client) DeleteTender(id string) error {
	if err := c.Delete("/tenders/" + url.PathEscape(id)); err != nil {
		return fmt.Errorf("failed to delete tender %s: %w", id, err)
	}
	return nil
}
