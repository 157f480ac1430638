package pocket

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Item is one saved entry from the "list" field of a /v3/get response.
type Item struct {
	ID            string `json:"item_id"`
	ResolvedURL   string `json:"resolved_url"`
	ResolvedTitle string `json:"resolved_title"`
	Excerpt       string `json:"excerpt"`
}

// DecodeList extracts the items of a /v3/get response body in the order
// their keys appear in the document. A missing or null "list", or the empty
// array the service sends for an empty list, yields no items. Null entries
// are skipped.
func DecodeList(body []byte) ([]Item, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing response body: %w", err)
	}

	raw := bytes.TrimSpace(envelope["list"])
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if raw[0] == '[' {
		var arr []json.RawMessage
		if err := json.Unmarshal(raw, &arr); err != nil {
			return nil, fmt.Errorf("parsing list: %w", err)
		}
		if len(arr) != 0 {
			return nil, fmt.Errorf("parsing list: expected an object, got an array of %d elements", len(arr))
		}
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var items []Item
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("parsing list key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("parsing list: unexpected key %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parsing item %s: %w", key, err)
		}
		if bytes.Equal(raw, []byte("null")) {
			continue
		}
		var item Item
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("parsing item %s: %w", key, err)
		}
		if item.ID == "" {
			item.ID = key
		}
		items = append(items, item)
	}

	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return items, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("parsing list: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("parsing list: expected %q, got %v", want, tok)
	}
	return nil
}
