// Package ethereum implements jobwatch.ReceiptSource for Ethereum-compatible
// nodes using a JSON-RPC client.
package ethereum

import (
	"github.com/gabapcia/claimwatch/internal/jobwatch"
	"github.com/gabapcia/claimwatch/internal/pkg/transport/jsonrpc"
)

// client looks up receipts on one Ethereum-compatible network.
type client struct {
	conn jsonrpc.Client // nil until the network is configured
}

// Ensure client implements the jobwatch.ReceiptSource interface at compile time.
var _ jobwatch.ReceiptSource = (*client)(nil)

// NewClient creates a receipt source backed by conn. A nil conn yields a
// source that reports jobwatch.ErrSourceUnavailable until replaced.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
