// Package chain builds, digests, and signs Hive transactions in their JSON
// wire form.
//
// A transaction anchors itself to a recent block through the ref_block_num
// and ref_block_prefix fields, carries a list of [Operation] tuples, and
// expires at a fixed timestamp. The signing digest is the SHA-256 of the
// transaction's canonical JSON encoding; signatures are the canonical
// recoverable strings produced by the ecc package, so a signed transaction
// can be broadcast as-is through condenser_api.broadcast_transaction.
package chain

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/waggle-io/waggle/digest"
	"github.com/waggle-io/waggle/ecc"
	"github.com/waggle-io/waggle/util"
)

// TimeFormat is the chain's timestamp layout: UTC seconds with no zone
// suffix.
const TimeFormat = "2006-01-02T15:04:05"

// Time wraps [time.Time] to marshal in the chain's timestamp format.
type Time struct {
	time.Time
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(TimeFormat))
}

// UnmarshalJSON accepts the canonical node format plus the Z-suffixed and
// fractional-second variants other tooling emits.
func (t *Time) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("parsing chain timestamp: %w", err)
	}
	parsed, err := util.ParseTimestamp(s)
	if err != nil {
		return fmt.Errorf("parsing chain timestamp: %w", err)
	}
	t.Time = parsed
	return nil
}

// RefBlockNum reduces a head block number to the low 16 bits carried by the
// ref_block_num field.
func RefBlockNum(blockNum uint32) uint16 {
	return uint16(blockNum & 0xffff)
}

// RefBlockPrefix extracts the ref_block_prefix from a hex block id: the
// little-endian uint32 at byte offset 4. Block ids lead with the big-endian
// block number, so the prefix is the first word of the hash material proper.
func RefBlockPrefix(blockID string) (uint32, error) {
	raw, err := hex.DecodeString(blockID)
	if err != nil {
		return 0, fmt.Errorf("parsing block id %q: %w", blockID, err)
	}
	if len(raw) < 8 {
		return 0, fmt.Errorf("block id %q too short: %d bytes", blockID, len(raw))
	}
	return binary.LittleEndian.Uint32(raw[4:8]), nil
}

// Transaction is an unsigned transaction. [NewTransaction] initializes the
// slices so a directly marshaled transaction encodes them as arrays rather
// than null; Digest and Sign normalize nil slices on their own.
type Transaction struct {
	RefBlockNum    uint16            `json:"ref_block_num"`
	RefBlockPrefix uint32            `json:"ref_block_prefix"`
	Expiration     Time              `json:"expiration"`
	Operations     []Operation       `json:"operations"`
	Extensions     []json.RawMessage `json:"extensions"`
}

// NewTransaction builds an empty transaction anchored to the given head
// block and expiring at the given time.
func NewTransaction(headBlockNum uint32, headBlockID string, expiration time.Time) (*Transaction, error) {
	prefix, err := RefBlockPrefix(headBlockID)
	if err != nil {
		return nil, err
	}
	return &Transaction{
		RefBlockNum:    RefBlockNum(headBlockNum),
		RefBlockPrefix: prefix,
		Expiration:     Time{expiration},
		Operations:     []Operation{},
		Extensions:     []json.RawMessage{},
	}, nil
}

// PushOperation appends a named operation to the transaction.
func (tx *Transaction) PushOperation(name string, body any) {
	tx.Operations = append(tx.Operations, Operation{Name: name, Body: body})
}

// canonical returns a copy with nil slices replaced by empty ones, so
// hand-built transactions encode their arrays as arrays.
func (tx *Transaction) canonical() Transaction {
	out := *tx
	if out.Operations == nil {
		out.Operations = []Operation{}
	}
	if out.Extensions == nil {
		out.Extensions = []json.RawMessage{}
	}
	return out
}

// Digest returns the SHA-256 digest of the transaction's canonical JSON
// encoding, the value transaction signatures commit to.
func (tx *Transaction) Digest() ([]byte, error) {
	canonical := tx.canonical()
	blob, err := json.Marshal(&canonical)
	if err != nil {
		return nil, fmt.Errorf("encoding transaction: %w", err)
	}
	return digest.SHA256(blob), nil
}

// Sign digests the transaction and appends one canonical signature per key,
// returning the signed form. The receiver is not modified.
func (tx *Transaction) Sign(keys ...*ecc.PrivateKey) (*SignedTransaction, error) {
	dig, err := tx.Digest()
	if err != nil {
		return nil, err
	}
	signed := &SignedTransaction{
		Transaction: tx.canonical(),
		Signatures:  make([]string, 0, len(keys)),
	}
	for _, key := range keys {
		sig, err := key.Sign(dig)
		if err != nil {
			return nil, fmt.Errorf("signing transaction: %w", err)
		}
		signed.Signatures = append(signed.Signatures, sig.String())
	}
	return signed, nil
}

// SignedTransaction is a transaction plus its signature strings, in the
// shape condenser_api.broadcast_transaction expects.
type SignedTransaction struct {
	Transaction
	Signatures []string `json:"signatures"`
}

// SignerKeys recovers the public key behind each signature. Broadcast nodes
// run the same recovery to decide which authorities the transaction
// satisfies.
func (stx *SignedTransaction) SignerKeys() ([]*ecc.PublicKey, error) {
	dig, err := stx.Transaction.Digest()
	if err != nil {
		return nil, err
	}
	keys := make([]*ecc.PublicKey, 0, len(stx.Signatures))
	for i, text := range stx.Signatures {
		sig, err := ecc.ParseSignature(text)
		if err != nil {
			return nil, fmt.Errorf("parsing signature %d: %w", i, err)
		}
		pub, err := sig.RecoverPublicKey(dig)
		if err != nil {
			return nil, fmt.Errorf("recovering signer %d: %w", i, err)
		}
		keys = append(keys, pub)
	}
	return keys, nil
}
