package api

import (
	"fmt"
	"net/url"
)

// GetAuctions returns all auctions.
func (c *Client) GetAuctions() ([]Auction, error) {
	auctions, err := getList[Auction](c, "/auctions", nil)
	if err != nil {
		return auctions, fmt.Errorf("failed to get auctions: %w", err)
	}
	return auctions, nil
}

// CloseAuction ends an auction early.
func (c *Client) CloseAuction(id string) error {
	if err := c.Post("/auctions/"+url.PathEscape(id)+"/close", nil, nil); err != nil {
		return fmt.Errorf("failed to close auction %s: %w", id, err)
	}
	return nil
}

// DeleteAuction deletes an auction.
func (c *Client) DeleteAuction(id string) error {
	if err := c.Delete("/auctions/" + url.PathEscape(id)); err != nil {
		return fmt.Errorf("failed to delete auction %s: %w", id, err)
	}
	return nil
}
