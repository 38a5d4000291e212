package jobwatch

import (
	"context"
	"errors"

	"github.com/gabapcia/claimwatch/internal/pkg/types"
)

// ErrSourceUnavailable is returned by a ReceiptSource that is not connected yet.
// The watcher treats it like any other transient failure.
var ErrSourceUnavailable = errors.New("receipt source unavailable")

// ReceiptStatus is the execution result carried by a receipt.
type ReceiptStatus string

const (
	// ReceiptStatusUnknown is used when the chain does not report a status.
	ReceiptStatusUnknown  ReceiptStatus = ""
	ReceiptStatusSuccess  ReceiptStatus = "success"
	ReceiptStatusReverted ReceiptStatus = "reverted"
)

// Receipt is the mined result of a transaction. It is immutable once observed.
type Receipt struct {
	TxHash          string        `json:"txHash"`
	BlockHash       string        `json:"blockHash"`
	BlockNumber     types.Hex     `json:"blockNumber"`
	From            string        `json:"from"`
	To              string        `json:"to,omitempty"`
	ContractAddress string        `json:"contractAddress,omitempty"`
	GasUsed         types.Hex     `json:"gasUsed"`
	Status          ReceiptStatus `json:"status,omitempty"`
}

// ReceiptSource looks up transaction receipts on one network.
type ReceiptSource interface {
	// FetchReceipt returns the receipt for txHash. The boolean is false when
	// the transaction is not mined yet.
	FetchReceipt(ctx context.Context, txHash string) (Receipt, bool, error)
}
