package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Key is a record identifier the middleware sends either as a JSON string or a number.
type Key string

// UnmarshalJSON accepts both quoted and bare numeric identifiers.
func (k *Key) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*k = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		err := json.Unmarshal(data, &s)
		if err != nil {
			return fmt.Errorf("unmarshal string key: %w", err)
		}
		*k = Key(s)
		return nil
	}

	var n json.Number
	err := json.Unmarshal(data, &n)
	if err != nil {
		return fmt.Errorf("invalid key %s: %w", string(data), err)
	}
	*k = Key(n.String())
	return nil
}

// Channel is an opaque state channel record. Decoding copies the bytes into a buffer the
// record owns; stores share that buffer with callers and never mutate it.
type Channel = json.RawMessage

// OracleQuery is an opaque oracle query record, owned and shared like Channel.
type OracleQuery = json.RawMessage

// Account holds the account details returned by the node.
// Error is only set on fallback records synthesized when the lookup failed.
type Account struct {
	ID      string      `json:"id"`
	Balance json.Number `json:"balance"`
	Error   string      `json:"error,omitempty"`
	Raw     []byte      `json:"-"`
}

// UnmarshalJSON decodes the identifying fields and keeps the full raw JSON.
func (a *Account) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID      string      `json:"id"`
		Balance json.Number `json:"balance"`
	}
	err := json.Unmarshal(data, &aux)
	if err != nil {
		return fmt.Errorf("unmarshal into aux account: %w", err)
	}

	a.ID = aux.ID
	a.Balance = aux.Balance
	a.Raw = append([]byte(nil), data...)
	return nil
}

// MarshalJSON returns the record as received, or the synthesized fields for fallback records.
func (a *Account) MarshalJSON() ([]byte, error) {
	if a.Raw != nil {
		return a.Raw, nil
	}
	type accountAlias Account
	return json.Marshal((*accountAlias)(a))
}

// Contract is a contract record keyed by its contract id.
type Contract struct {
	ID  Key    `json:"contract_id"`
	Raw []byte `json:"-"`
}

func (c *Contract) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID Key `json:"contract_id"`
	}
	err := json.Unmarshal(data, &aux)
	if err != nil {
		return fmt.Errorf("unmarshal into aux contract: %w", err)
	}

	c.ID = aux.ID
	c.Raw = append([]byte(nil), data...)
	return nil
}

func (c *Contract) MarshalJSON() ([]byte, error) {
	return marshalRaw(c.Raw)
}

// Name is an AENS name registration keyed by its middleware id.
type Name struct {
	ID   Key    `json:"id"`
	Name string `json:"name"`
	Raw  []byte `json:"-"`
}

func (n *Name) UnmarshalJSON(data []byte) error {
	var aux struct {
		ID   Key    `json:"id"`
		Name string `json:"name"`
	}
	err := json.Unmarshal(data, &aux)
	if err != nil {
		return fmt.Errorf("unmarshal into aux name: %w", err)
	}

	n.ID = aux.ID
	n.Name = aux.Name
	n.Raw = append([]byte(nil), data...)
	return nil
}

func (n *Name) MarshalJSON() ([]byte, error) {
	return marshalRaw(n.Raw)
}

// Oracle is an oracle registration keyed by its register transaction hash.
type Oracle struct {
	TransactionHash string `json:"transaction_hash"`
	Raw             []byte `json:"-"`
}

func (o *Oracle) UnmarshalJSON(data []byte) error {
	var aux struct {
		TransactionHash string `json:"transaction_hash"`
	}
	err := json.Unmarshal(data, &aux)
	if err != nil {
		return fmt.Errorf("unmarshal into aux oracle: %w", err)
	}

	o.TransactionHash = aux.TransactionHash
	o.Raw = append([]byte(nil), data...)
	return nil
}

func (o *Oracle) MarshalJSON() ([]byte, error) {
	return marshalRaw(o.Raw)
}

// Generation is a key block together with its micro blocks.
type Generation struct {
	Height int64  `json:"height"`
	Hash   string `json:"hash"`
	Raw    []byte `json:"-"`
}

func (g *Generation) UnmarshalJSON(data []byte) error {
	var aux struct {
		Height json.Number `json:"height"`
		Hash   string      `json:"hash"`
	}
	err := json.Unmarshal(data, &aux)
	if err != nil {
		return fmt.Errorf("unmarshal into aux generation: %w", err)
	}

	height, err := strconv.ParseInt(aux.Height.String(), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid generation height %q: %w", aux.Height, err)
	}
	g.Height = height
	g.Hash = aux.Hash
	g.Raw = append([]byte(nil), data...)
	return nil
}

func (g *Generation) MarshalJSON() ([]byte, error) {
	return marshalRaw(g.Raw)
}

// Generations is the payload of the generations range endpoint; Data is keyed by height.
type Generations struct {
	Data map[string]*Generation `json:"data"`
}

// Transaction is a transaction keyed by its hash.
type Transaction struct {
	Hash string `json:"hash"`
	Raw  []byte `json:"-"`
}

func (t *Transaction) UnmarshalJSON(data []byte) error {
	var aux struct {
		Hash string `json:"hash"`
	}
	err := json.Unmarshal(data, &aux)
	if err != nil {
		return fmt.Errorf("unmarshal into aux tx: %w", err)
	}

	t.Hash = aux.Hash
	t.Raw = append([]byte(nil), data...) // make a copy; safe against mutations
	return nil
}

func (t *Transaction) MarshalJSON() ([]byte, error) {
	return marshalRaw(t.Raw)
}

// TransactionPage is the payload of the interval transactions endpoint.
type TransactionPage struct {
	Transactions []*Transaction `json:"transactions"`
}

// Height is the payload of the current key block height endpoint.
type Height struct {
	Height int64 `json:"height"`
}

func marshalRaw(raw []byte) ([]byte, error) {
	if raw == nil {
		return []byte("null"), nil
	}
	return raw, nil
}
