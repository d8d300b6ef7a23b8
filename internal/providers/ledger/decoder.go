package ledger

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/travelmate/community-hub/internal/domain"
)

// communityCreatedEventSignature is the topic hash for
// CommunityCreated(uint256 indexed communityId, string name, address admin)
var communityCreatedEventSignature = crypto.Keccak256Hash([]byte("CommunityCreated(uint256,string,address)"))

// Decoder extracts the ledger-assigned community identifier from a
// confirmed receipt's event records
type Decoder struct {
	contract common.Address
}

// NewDecoder creates a decoder bound to the factory contract address
func NewDecoder(contractAddress string) *Decoder {
	return &Decoder{contract: common.HexToAddress(contractAddress)}
}

// DecodeCommunityID scans the receipt's events in receipt order and returns
// the community id of the first CommunityCreated event emitted by the
// configured contract. Non-matching and structurally incompatible events are
// skipped; a transaction can emit unrelated events. Returns
// domain.ErrEventNotFound when the scan is exhausted without a match: the
// mutation is confirmed but the contract did not honor its event contract.
func (d *Decoder) DecodeCommunityID(receipt *domain.LedgerReceipt) (string, error) {
	for _, event := range receipt.Events {
		if !strings.EqualFold(event.Emitter, d.contract.Hex()) {
			continue
		}
		if len(event.Topics) < 2 {
			// CommunityCreated carries the id as an indexed topic
			continue
		}
		if common.HexToHash(event.Topics[0]) != communityCreatedEventSignature {
			continue
		}

		id := new(big.Int).SetBytes(common.HexToHash(event.Topics[1]).Bytes())
		return id.String(), nil
	}

	return "", domain.ErrEventNotFound
}
