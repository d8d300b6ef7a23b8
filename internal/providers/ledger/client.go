package ledger

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/travelmate/community-hub/internal/adapter"
	"github.com/travelmate/community-hub/internal/domain"
	"github.com/travelmate/community-hub/internal/logger"
)

// createCommunityABI is the fragment of the community factory contract the
// client needs: the createCommunity call and the CommunityCreated event
const createCommunityABI = `[
	{"inputs":[{"name":"name","type":"string"},{"name":"maxMembers","type":"uint256"}],"name":"createCommunity","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"anonymous":false,"inputs":[{"indexed":true,"name":"communityId","type":"uint256"},{"indexed":false,"name":"name","type":"string"},{"indexed":false,"name":"admin","type":"address"}],"name":"CommunityCreated","type":"event"}
]`

// Client submits community creation transactions to the ledger and waits
// for confirmation
//
//go:generate mockgen -source=client.go -destination=../../mocks/ledger_client.go -package=mocks -mock_names=Client=MockLedgerClient
type Client interface {
	// SubmitCreateCommunity signs and submits a createCommunity call, then
	// blocks until the transaction is confirmed or the configured
	// confirmation timeout elapses. On ErrConfirmationTimeout an unconfirmed
	// receipt carrying the tx hash is returned alongside the error so the
	// caller can record the ambiguous transaction.
	SubmitCreateCommunity(ctx context.Context, name string, capacity int64) (*domain.LedgerReceipt, error)

	// FetchReceipt retrieves the receipt for a previously submitted
	// transaction, used by the reconciler to resolve ambiguous outcomes
	FetchReceipt(ctx context.Context, txHash string) (*domain.LedgerReceipt, error)

	// ContractAddress returns the configured factory contract address
	ContractAddress() string

	// Close closes the connection
	Close()
}

// Config holds the ledger client configuration
type Config struct {
	ChainID             int64
	ContractAddress     string
	PrivateKey          string
	GasLimit            uint64
	SubmitMaxAttempts   uint64
	ConfirmationTimeout time.Duration
	ReceiptPollInterval time.Duration
}

type client struct {
	config   Config
	eth      adapter.EthClient
	key      *ecdsa.PrivateKey
	from     common.Address
	contract common.Address
	chainID  *big.Int
	abi      abi.ABI
}

// NewClient creates a ledger client. Missing signer or contract
// configuration is fatal and reported here, before any network call.
func NewClient(cfg Config, eth adapter.EthClient) (Client, error) {
	if cfg.ContractAddress == "" {
		return nil, fmt.Errorf("%w: contract address missing", domain.ErrLedgerNotConfigured)
	}
	if cfg.PrivateKey == "" {
		return nil, fmt.Errorf("%w: signing key missing", domain.ErrLedgerNotConfigured)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid signing key: %v", domain.ErrLedgerNotConfigured, err)
	}

	parsedABI, err := abi.JSON(strings.NewReader(createCommunityABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse contract ABI: %w", err)
	}

	if cfg.SubmitMaxAttempts == 0 {
		cfg.SubmitMaxAttempts = 3
	}
	if cfg.ReceiptPollInterval == 0 {
		cfg.ReceiptPollInterval = 2 * time.Second
	}
	if cfg.ConfirmationTimeout == 0 {
		cfg.ConfirmationTimeout = 90 * time.Second
	}

	return &client{
		config:   cfg,
		eth:      eth,
		key:      key,
		from:     crypto.PubkeyToAddress(key.PublicKey),
		contract: common.HexToAddress(cfg.ContractAddress),
		chainID:  big.NewInt(cfg.ChainID),
		abi:      parsedABI,
	}, nil
}

// SubmitCreateCommunity signs and submits the createCommunity call and waits
// for the receipt
func (c *client) SubmitCreateCommunity(ctx context.Context, name string, capacity int64) (*domain.LedgerReceipt, error) {
	data, err := c.abi.Pack("createCommunity", name, big.NewInt(capacity))
	if err != nil {
		return nil, fmt.Errorf("failed to pack createCommunity call: %w", err)
	}

	txHash, err := c.submitWithRetry(ctx, data)
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Transaction submitted, awaiting confirmation",
		zap.String("tx_hash", txHash.Hex()),
		zap.String("contract", c.contract.Hex()))

	return c.waitForReceipt(ctx, txHash)
}

// submitWithRetry broadcasts the transaction, retrying transient RPC
// failures with exponential backoff. The nonce is refetched on every
// attempt so a retry never reuses a consumed nonce.
func (c *client) submitWithRetry(ctx context.Context, data []byte) (common.Hash, error) {
	var txHash common.Hash

	operation := func() error {
		nonce, err := c.eth.PendingNonceAt(ctx, c.from)
		if err != nil {
			return fmt.Errorf("failed to fetch nonce: %w", err)
		}

		gasPrice, err := c.eth.SuggestGasPrice(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch gas price: %w", err)
		}

		tx := types.NewTx(&types.LegacyTx{
			Nonce:    nonce,
			To:       &c.contract,
			Gas:      c.config.GasLimit,
			GasPrice: gasPrice,
			Data:     data,
		})

		signedTx, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.key)
		if err != nil {
			// Signing is local; a failure here will not heal on retry
			return backoff.Permanent(fmt.Errorf("failed to sign transaction: %w", err))
		}

		if err := c.eth.SendTransaction(ctx, signedTx); err != nil {
			return fmt.Errorf("failed to send transaction: %w", err)
		}

		txHash = signedTx.Hash()
		return nil
	}

	b := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.config.SubmitMaxAttempts-1)
	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return common.Hash{}, err
	}

	return txHash, nil
}

// waitForReceipt polls for the transaction receipt until it is mined or the
// confirmation timeout elapses. A timeout is classified as
// ErrConfirmationTimeout: the mutation state is unknown, not failed.
func (c *client) waitForReceipt(ctx context.Context, txHash common.Hash) (*domain.LedgerReceipt, error) {
	waitCtx, cancel := context.WithTimeout(ctx, c.config.ConfirmationTimeout)
	defer cancel()

	var receipt *types.Receipt

	operation := func() error {
		r, err := c.eth.TransactionReceipt(waitCtx, txHash)
		if err != nil {
			if errors.Is(err, ethereum.NotFound) {
				return fmt.Errorf("transaction pending: %w", err)
			}
			return err
		}
		receipt = r
		return nil
	}

	b := backoff.WithContext(backoff.NewConstantBackOff(c.config.ReceiptPollInterval), waitCtx)
	if err := backoff.Retry(operation, b); err != nil {
		if waitCtx.Err() != nil && ctx.Err() == nil {
			unconfirmed := &domain.LedgerReceipt{TxHash: txHash.Hex(), Confirmed: false}
			return unconfirmed, fmt.Errorf("%w: tx %s", domain.ErrConfirmationTimeout, txHash.Hex())
		}
		return nil, err
	}

	if receipt.Status == types.ReceiptStatusFailed {
		return nil, fmt.Errorf("%w: tx %s", domain.ErrTransactionReverted, txHash.Hex())
	}

	return mapReceipt(receipt), nil
}

// FetchReceipt retrieves the receipt for a known transaction hash
func (c *client) FetchReceipt(ctx context.Context, txHash string) (*domain.LedgerReceipt, error) {
	receipt, err := c.eth.TransactionReceipt(ctx, common.HexToHash(txHash))
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, fmt.Errorf("%w: tx %s", domain.ErrConfirmationTimeout, txHash)
		}
		return nil, fmt.Errorf("failed to fetch receipt: %w", err)
	}

	if receipt.Status == types.ReceiptStatusFailed {
		return nil, fmt.Errorf("%w: tx %s", domain.ErrTransactionReverted, txHash)
	}

	return mapReceipt(receipt), nil
}

// ContractAddress returns the configured factory contract address
func (c *client) ContractAddress() string {
	return c.contract.Hex()
}

// Close closes the connection
func (c *client) Close() {
	c.eth.Close()
}

// mapReceipt converts a go-ethereum receipt into the immutable domain
// receipt, preserving event order
func mapReceipt(receipt *types.Receipt) *domain.LedgerReceipt {
	events := make([]domain.RawEvent, 0, len(receipt.Logs))
	for _, l := range receipt.Logs {
		topics := make([]string, len(l.Topics))
		for i, t := range l.Topics {
			topics[i] = t.Hex()
		}
		events = append(events, domain.RawEvent{
			Emitter: l.Address.Hex(),
			Topics:  topics,
			Data:    l.Data,
		})
	}

	return &domain.LedgerReceipt{
		TxHash:      receipt.TxHash.Hex(),
		Confirmed:   true,
		BlockNumber: receipt.BlockNumber.Uint64(),
		Events:      events,
	}
}
