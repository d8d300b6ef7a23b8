package ledger

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelmate/community-hub/internal/domain"
	"github.com/travelmate/community-hub/internal/logger"
	"github.com/travelmate/community-hub/internal/mocks"
)

// Well-known throwaway key, never use outside tests
const testPrivateKey = "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318"

const testContractAddr = "0x00000000000000000000000000000000000000CC"

func testConfig() Config {
	return Config{
		ChainID:             1,
		ContractAddress:     testContractAddr,
		PrivateKey:          testPrivateKey,
		GasLimit:            500000,
		SubmitMaxAttempts:   3,
		ConfirmationTimeout: 200 * time.Millisecond,
		ReceiptPollInterval: 10 * time.Millisecond,
	}
}

func setupClient(t *testing.T) (Client, *mocks.MockEthClient, *gomock.Controller) {
	require.NoError(t, logger.Initialize(logger.Config{Debug: true}))

	ctrl := gomock.NewController(t)
	eth := mocks.NewMockEthClient(ctrl)

	c, err := NewClient(testConfig(), eth)
	require.NoError(t, err)

	return c, eth, ctrl
}

func TestNewClient_MissingSignerIsConfigurationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.PrivateKey = ""

	_, err := NewClient(cfg, mocks.NewMockEthClient(ctrl))
	assert.ErrorIs(t, err, domain.ErrLedgerNotConfigured)

	cfg = testConfig()
	cfg.ContractAddress = ""

	_, err = NewClient(cfg, mocks.NewMockEthClient(ctrl))
	assert.ErrorIs(t, err, domain.ErrLedgerNotConfigured)
}

func TestSubmitCreateCommunity_Confirmed(t *testing.T) {
	c, eth, ctrl := setupClient(t)
	defer ctrl.Finish()

	var sentTx *types.Transaction
	eth.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(5), nil)
	eth.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1_000_000_000), nil)
	eth.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, tx *types.Transaction) error {
			sentTx = tx
			return nil
		})
	eth.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
			return &types.Receipt{
				Status:      types.ReceiptStatusSuccessful,
				TxHash:      txHash,
				BlockNumber: big.NewInt(1042),
			}, nil
		})

	receipt, err := c.SubmitCreateCommunity(context.Background(), "Delhi Explorers", 50)
	require.NoError(t, err)

	assert.True(t, receipt.Confirmed)
	assert.Equal(t, uint64(1042), receipt.BlockNumber)
	assert.Equal(t, sentTx.Hash().Hex(), receipt.TxHash)
	assert.Equal(t, uint64(5), sentTx.Nonce())
	assert.Equal(t, testContractAddr, sentTx.To().Hex())
}

func TestSubmitCreateCommunity_BroadcastRetriesWithFreshNonce(t *testing.T) {
	c, eth, ctrl := setupClient(t)
	defer ctrl.Finish()

	// First broadcast fails transiently; the retry refetches the nonce so a
	// consumed nonce is never reused
	gomock.InOrder(
		eth.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(5), nil),
		eth.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(6), nil),
	)
	eth.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1_000_000_000), nil).Times(2)
	gomock.InOrder(
		eth.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(errors.New("connection reset")),
		eth.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, tx *types.Transaction) error {
				assert.Equal(t, uint64(6), tx.Nonce())
				return nil
			}),
	)
	eth.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
			return &types.Receipt{
				Status:      types.ReceiptStatusSuccessful,
				TxHash:      txHash,
				BlockNumber: big.NewInt(1),
			}, nil
		})

	receipt, err := c.SubmitCreateCommunity(context.Background(), "Delhi Explorers", 50)
	require.NoError(t, err)
	assert.True(t, receipt.Confirmed)
}

func TestSubmitCreateCommunity_ConfirmationTimeoutCarriesTxHash(t *testing.T) {
	c, eth, ctrl := setupClient(t)
	defer ctrl.Finish()

	eth.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(5), nil)
	eth.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1_000_000_000), nil)
	eth.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil)
	eth.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).
		Return(nil, ethereum.NotFound).
		AnyTimes()

	receipt, err := c.SubmitCreateCommunity(context.Background(), "Delhi Explorers", 50)
	assert.ErrorIs(t, err, domain.ErrConfirmationTimeout)

	// The unconfirmed receipt travels with the error so the caller can
	// record the ambiguous transaction
	require.NotNil(t, receipt)
	assert.False(t, receipt.Confirmed)
	assert.NotEmpty(t, receipt.TxHash)
}

func TestSubmitCreateCommunity_Reverted(t *testing.T) {
	c, eth, ctrl := setupClient(t)
	defer ctrl.Finish()

	eth.EXPECT().PendingNonceAt(gomock.Any(), gomock.Any()).Return(uint64(5), nil)
	eth.EXPECT().SuggestGasPrice(gomock.Any()).Return(big.NewInt(1_000_000_000), nil)
	eth.EXPECT().SendTransaction(gomock.Any(), gomock.Any()).Return(nil)
	eth.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
			return &types.Receipt{
				Status:      types.ReceiptStatusFailed,
				TxHash:      txHash,
				BlockNumber: big.NewInt(1),
			}, nil
		})

	_, err := c.SubmitCreateCommunity(context.Background(), "Delhi Explorers", 50)
	assert.ErrorIs(t, err, domain.ErrTransactionReverted)
}

func TestFetchReceipt_PendingMapsToConfirmationTimeout(t *testing.T) {
	c, eth, ctrl := setupClient(t)
	defer ctrl.Finish()

	eth.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).Return(nil, ethereum.NotFound)

	_, err := c.FetchReceipt(context.Background(), "0xabc")
	assert.ErrorIs(t, err, domain.ErrConfirmationTimeout)
}

func TestFetchReceipt_PreservesEventOrder(t *testing.T) {
	c, eth, ctrl := setupClient(t)
	defer ctrl.Finish()

	contract := common.HexToAddress(testContractAddr)
	eth.EXPECT().TransactionReceipt(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
			return &types.Receipt{
				Status:      types.ReceiptStatusSuccessful,
				TxHash:      txHash,
				BlockNumber: big.NewInt(1),
				Logs: []*types.Log{
					{Address: contract, Topics: []common.Hash{common.HexToHash("0x01")}},
					{Address: contract, Topics: []common.Hash{common.HexToHash("0x02")}},
				},
			}, nil
		})

	receipt, err := c.FetchReceipt(context.Background(), "0xabc")
	require.NoError(t, err)
	require.Len(t, receipt.Events, 2)
	assert.Equal(t, common.HexToHash("0x01").Hex(), receipt.Events[0].Topics[0])
	assert.Equal(t, common.HexToHash("0x02").Hex(), receipt.Events[1].Topics[0])
}
