package hiverpc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/waggle-io/waggle/chain"
)

// DynamicGlobalProperties is the subset of
// condenser_api.get_dynamic_global_properties needed to anchor and expire
// transactions.
type DynamicGlobalProperties struct {
	HeadBlockNumber uint32     `json:"head_block_number"`
	HeadBlockID     string     `json:"head_block_id"`
	Time            chain.Time `json:"time"`
	CurrentWitness  string     `json:"current_witness"`
}

// WeightedKey is one ["STM…", weight] entry in an authority's key_auths.
type WeightedKey struct {
	Key    string
	Weight uint16
}

func (wk WeightedKey) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{wk.Key, wk.Weight})
}

func (wk *WeightedKey) UnmarshalJSON(b []byte) error {
	var tuple [2]json.RawMessage
	if err := json.Unmarshal(b, &tuple); err != nil {
		return fmt.Errorf("parsing key auth tuple: %w", err)
	}
	if err := json.Unmarshal(tuple[0], &wk.Key); err != nil {
		return fmt.Errorf("parsing key auth key: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &wk.Weight); err != nil {
		return fmt.Errorf("parsing key auth weight: %w", err)
	}
	return nil
}

// WeightedAccount is one ["name", weight] entry in an authority's
// account_auths.
type WeightedAccount struct {
	Account string
	Weight  uint16
}

func (wa WeightedAccount) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{wa.Account, wa.Weight})
}

func (wa *WeightedAccount) UnmarshalJSON(b []byte) error {
	var tuple [2]json.RawMessage
	if err := json.Unmarshal(b, &tuple); err != nil {
		return fmt.Errorf("parsing account auth tuple: %w", err)
	}
	if err := json.Unmarshal(tuple[0], &wa.Account); err != nil {
		return fmt.Errorf("parsing account auth name: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &wa.Weight); err != nil {
		return fmt.Errorf("parsing account auth weight: %w", err)
	}
	return nil
}

// Authority is a weighted set of keys and delegated accounts. A transaction
// satisfies the authority when the weights of its recovered signers meet the
// threshold.
type Authority struct {
	WeightThreshold uint32            `json:"weight_threshold"`
	AccountAuths    []WeightedAccount `json:"account_auths"`
	KeyAuths        []WeightedKey     `json:"key_auths"`
}

// Account is the subset of a condenser_api account record covering identity
// and signing authorities.
type Account struct {
	ID           uint64     `json:"id"`
	Name         string     `json:"name"`
	Owner        Authority  `json:"owner"`
	Active       Authority  `json:"active"`
	Posting      Authority  `json:"posting"`
	MemoKey      string     `json:"memo_key"`
	JSONMetadata string     `json:"json_metadata"`
	Created      chain.Time `json:"created"`
}

// Block is the subset of a condenser_api block record this toolkit reads.
type Block struct {
	Previous         string                    `json:"previous"`
	Timestamp        chain.Time                `json:"timestamp"`
	Witness          string                    `json:"witness"`
	WitnessSignature string                    `json:"witness_signature"`
	BlockID          string                    `json:"block_id"`
	SigningKey       string                    `json:"signing_key"`
	Transactions     []chain.SignedTransaction `json:"transactions"`
	TransactionIDs   []string                  `json:"transaction_ids"`
}

// TransactionStatus is the receipt returned by synchronous broadcast.
type TransactionStatus struct {
	ID       string `json:"id"`
	BlockNum uint32 `json:"block_num"`
	TrxNum   uint32 `json:"trx_num"`
	Expired  bool   `json:"expired"`
}

// DynamicGlobalProperties fetches the node's current chain state.
func (c *Client) DynamicGlobalProperties(ctx context.Context) (*DynamicGlobalProperties, error) {
	var props DynamicGlobalProperties
	if err := c.Do(ctx, "condenser_api.get_dynamic_global_properties", nil, &props); err != nil {
		return nil, err
	}
	return &props, nil
}

// GetAccounts looks up accounts by name. Unknown names are simply absent
// from the result.
func (c *Client) GetAccounts(ctx context.Context, names ...string) ([]*Account, error) {
	var accounts []*Account
	if err := c.Do(ctx, "condenser_api.get_accounts", []any{names}, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetBlock fetches one block by number, or [ErrNotFound] when the node does
// not have it.
func (c *Client) GetBlock(ctx context.Context, num uint32) (*Block, error) {
	var block *Block
	if err := c.Do(ctx, "condenser_api.get_block", []any{num}, &block); err != nil {
		return nil, err
	}
	if block == nil {
		return nil, fmt.Errorf("block %d: %w", num, ErrNotFound)
	}
	return block, nil
}

// BroadcastTransaction submits a signed transaction without waiting for
// inclusion.
func (c *Client) BroadcastTransaction(ctx context.Context, stx *chain.SignedTransaction) error {
	return c.Do(ctx, "condenser_api.broadcast_transaction", []any{stx}, nil)
}

// BroadcastTransactionSynchronous submits a signed transaction and blocks
// until the node reports the inclusion receipt.
func (c *Client) BroadcastTransactionSynchronous(ctx context.Context, stx *chain.SignedTransaction) (*TransactionStatus, error) {
	var status TransactionStatus
	if err := c.Do(ctx, "condenser_api.broadcast_transaction_synchronous", []any{stx}, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
