// Package hiverpc is a minimal JSON-RPC 2.0 client for Hive API nodes.
//
// Every call is an HTTP POST of a single request object against the node
// root. [Client.Do] handles the envelope and error mapping; the typed
// helpers in this package cover the condenser_api methods the rest of the
// toolkit needs. Calling code that needs other methods can invoke Do
// directly with its own params and result types.
package hiverpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/carlmjohnson/versioninfo"

	"github.com/waggle-io/waggle/util"
)

// DefaultHost is the public API node used when a [Client] has no Host set.
const DefaultHost = "https://api.hive.blog"

// ErrNotFound reports that the node does not know the requested object,
// such as a block number past the current head.
var ErrNotFound = errors.New("hiverpc: not found")

type Client struct {
	// Client is an HTTP client to use. If not set, defaults to util.RobustHTTPClient().
	Client    *http.Client
	Host      string
	UserAgent *string
	Headers   map[string]string

	nextID atomic.Uint64
}

func (c *Client) getClient() *http.Client {
	if c.Client == nil {
		return util.RobustHTTPClient()
	}
	return c.Client
}

func (c *Client) getHost() string {
	if c.Host == "" {
		return DefaultHost
	}
	return c.Host
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      uint64 `json:"id"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
	ID      json.RawMessage `json:"id"`
}

// RPCError is the error object a node returns inside the JSON-RPC envelope.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (re *RPCError) Error() string {
	return fmt.Sprintf("%d: %s", re.Code, re.Message)
}

// Error is a transport-level failure: the node answered with a non-200
// status. The JSON-RPC error object, if one could be read from the body, is
// wrapped inside.
type Error struct {
	StatusCode int
	Wrapped    error
}

func (e *Error) Error() string {
	if e.Wrapped == nil {
		return fmt.Sprintf("RPC ERROR %d", e.StatusCode)
	}
	return fmt.Sprintf("RPC ERROR %d: %s", e.StatusCode, e.Wrapped)
}

func (e *Error) Unwrap() error {
	if e.Wrapped == nil {
		return nil
	}
	return e.Wrapped
}

func (e *Error) IsThrottled() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// Do performs one JSON-RPC call. A nil params is sent as an empty positional
// array, which is what condenser_api methods without arguments expect. When
// out is non-nil the result field is decoded into it.
func (c *Client) Do(ctx context.Context, method string, params any, out any) error {
	if params == nil {
		params = []any{}
	}
	body, err := json.Marshal(&request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      c.nextID.Add(1),
	})
	if err != nil {
		return fmt.Errorf("encoding rpc request: %w", err)
	}

	req, err := http.NewRequest("POST", c.getHost(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.UserAgent != nil {
		req.Header.Set("User-Agent", *c.UserAgent)
	} else {
		req.Header.Set("User-Agent", "waggle/"+versioninfo.Short())
	}
	for k, v := range c.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.getClient().Do(req.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		var envelope response
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error == nil {
			return &Error{StatusCode: resp.StatusCode}
		}
		return &Error{StatusCode: resp.StatusCode, Wrapped: envelope.Error}
	}

	var envelope response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decoding rpc response: %w", err)
	}
	if envelope.Error != nil {
		return envelope.Error
	}

	if out != nil {
		if len(envelope.Result) == 0 {
			return fmt.Errorf("rpc response for %s carried no result", method)
		}
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("decoding rpc result: %w", err)
		}
	}
	return nil
}
