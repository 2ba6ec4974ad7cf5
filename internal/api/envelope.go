package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
)

// envelope is the wrapped list form. NextCursor is set when more pages follow.
type envelope struct {
	Data       json.RawMessage `json:"data"`
	NextCursor *string         `json:"next_cursor"`
}

// getList fetches every page of a list endpoint. The API answers either with
// a bare JSON array or with a {"data": [...]} envelope; any other body yields
// an empty slice and ErrUnexpectedShape. A cursor the server already handed
// out stops the walk with an error.
func getList[T any](c *Client, path string, query url.Values) ([]T, error) {
	if query == nil {
		query = url.Values{}
	}
	all := make([]T, 0)
	seen := map[string]bool{}

	for {
		var raw json.RawMessage
		if err := c.GetWithQuery(path, query, &raw); err != nil {
			return nil, err
		}

		items, next, err := decodeList[T](raw)
		if err != nil {
			return make([]T, 0), err
		}
		all = append(all, items...)

		if next == "" {
			break
		}
		if seen[next] {
			return nil, fmt.Errorf("%s: server repeated cursor %q", path, next)
		}
		seen[next] = true
		query.Set("cursor", next)
	}

	return all, nil
}

func decodeList[T any](raw json.RawMessage) ([]T, string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, "", ErrUnexpectedShape
	}

	switch trimmed[0] {
	case '[':
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, "", fmt.Errorf("failed to decode list: %w", err)
		}
		return items, "", nil

	case '{':
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, "", fmt.Errorf("failed to decode envelope: %w", err)
		}
		data := bytes.TrimSpace(env.Data)
		if len(data) == 0 || data[0] != '[' {
			return nil, "", ErrUnexpectedShape
		}
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, "", fmt.Errorf("failed to decode list: %w", err)
		}
		next := ""
		if env.NextCursor != nil {
			next = *env.NextCursor
		}
		return items, next, nil
	}

	return nil, "", ErrUnexpectedShape
}
