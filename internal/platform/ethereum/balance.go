package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/sony/gobreaker"

	"taskboard-backend/internal/common/logger"
)

// ErrNoEndpoint is returned when no JSON-RPC endpoint is configured.
var ErrNoEndpoint = errors.New("ethereum rpc endpoint not configured")

// BalanceReader is the subset of ethclient.Client used here.
type BalanceReader interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}

// BalanceClient reads native balances through a circuit breaker and a per-call timeout.
type BalanceClient struct {
	reader  BalanceReader
	closer  func()
	cb      *gobreaker.CircuitBreaker
	timeout time.Duration
}

// Dial connects to rpcURL. An empty URL yields a client whose lookups fail with ErrNoEndpoint.
func Dial(ctx context.Context, rpcURL string, timeout time.Duration) (*BalanceClient, error) {
	if rpcURL == "" {
		return NewBalanceClient(nil, timeout), nil
	}
	ec, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial ethereum rpc: %w", err)
	}
	c := NewBalanceClient(ec, timeout)
	c.closer = ec.Close
	return c, nil
}

func NewBalanceClient(reader BalanceReader, timeout time.Duration) *BalanceClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "eth-balance",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
		},
	})
	return &BalanceClient{reader: reader, cb: cb, timeout: timeout}
}

// Balance returns the latest balance of address formatted in ether.
func (c *BalanceClient) Balance(ctx context.Context, address string) (string, error) {
	if c.reader == nil {
		return "", ErrNoEndpoint
	}
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("invalid address %q", address)
	}

	res, err := c.cb.Execute(func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()
		return c.reader.BalanceAt(ctx, common.HexToAddress(address), nil)
	})
	if err != nil {
		return "", fmt.Errorf("eth_getBalance %s: %w", address, err)
	}
	return FormatEther(res.(*big.Int)), nil
}

func (c *BalanceClient) Close() {
	if c.closer != nil {
		c.closer()
	}
}

var weiPerEther = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// FormatEther renders wei as a decimal ether string keeping at least one fractional digit:
// 0 -> "0.0", 1.5e18 -> "1.5", 1 -> "0.000000000000000001".
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0.0"
	}
	sign := ""
	v := new(big.Int).Set(wei)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}

	whole, frac := new(big.Int).QuoRem(v, weiPerEther, new(big.Int))
	digits := frac.Text(10)
	fracStr := strings.TrimRight(strings.Repeat("0", 18-len(digits))+digits, "0")
	if fracStr == "" {
		fracStr = "0"
	}
	return sign + whole.String() + "." + fracStr
}
