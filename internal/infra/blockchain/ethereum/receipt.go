package ethereum

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/claimwatch/internal/jobwatch"
	"github.com/gabapcia/claimwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/claimwatch/internal/pkg/types"
)

// ReceiptResponse is a transaction receipt as returned by eth_getTransactionReceipt.
type ReceiptResponse struct {
	TransactionHash   string    `json:"transactionHash"`
	TransactionIndex  types.Hex `json:"transactionIndex"`
	BlockHash         string    `json:"blockHash"`
	BlockNumber       types.Hex `json:"blockNumber"`
	From              string    `json:"from"`
	To                string    `json:"to"`
	ContractAddress   string    `json:"contractAddress"`
	CumulativeGasUsed types.Hex `json:"cumulativeGasUsed"`
	GasUsed           types.Hex `json:"gasUsed"`
	EffectiveGasPrice types.Hex `json:"effectiveGasPrice"`
	Type              types.Hex `json:"type"`

	// Status is 0x1 or 0x0 since Byzantium and absent before it.
	Status types.Hex `json:"status"`
}

func (r ReceiptResponse) toReceipt() jobwatch.Receipt {
	return jobwatch.Receipt{
		TxHash:          r.TransactionHash,
		BlockHash:       r.BlockHash,
		BlockNumber:     r.BlockNumber,
		From:            r.From,
		To:              r.To,
		ContractAddress: r.ContractAddress,
		GasUsed:         r.GasUsed,
		Status:          receiptStatus(r.Status),
	}
}

func receiptStatus(status types.Hex) jobwatch.ReceiptStatus {
	v, ok := status.Uint64()
	switch {
	case !ok:
		return jobwatch.ReceiptStatusUnknown
	case v == 1:
		return jobwatch.ReceiptStatusSuccess
	default:
		return jobwatch.ReceiptStatusReverted
	}
}

// FetchReceipt returns the receipt of txHash. A null result means the
// transaction is not mined yet.
func (c *client) FetchReceipt(ctx context.Context, txHash string) (jobwatch.Receipt, bool, error) {
	if c.conn == nil {
		return jobwatch.Receipt{}, false, jobwatch.ErrSourceUnavailable
	}

	data, err := c.conn.Fetch(ctx, "eth_getTransactionReceipt", txHash)
	if err != nil {
		return jobwatch.Receipt{}, false, err
	}

	if jsonrpc.IsNull(data) {
		return jobwatch.Receipt{}, false, nil
	}

	var receipt ReceiptResponse
	if err := json.Unmarshal(data, &receipt); err != nil {
		return jobwatch.Receipt{}, false, fmt.Errorf("decode receipt %s: %w", txHash, err)
	}

	return receipt.toReceipt(), true, nil
}
