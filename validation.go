package crossq

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

const txHashTextLen = 66 // "0x" + 32 bytes in hex

// ValidateAddress checks the textual form of a 0x-prefixed 20-byte account or
// contract address. Casing is not significant and no checksum is enforced;
// semantic resolution of which network the address belongs to is the caller's
// concern.
func ValidateAddress(address string) error {
	if !strings.HasPrefix(address, "0x") || !common.IsHexAddress(address) {
		return NewInvalidAddressError(address)
	}

	return nil
}

// ValidateTransactionHash checks the textual form of a 0x-prefixed 32-byte
// transaction hash.
func ValidateTransactionHash(hash string) error {
	if len(hash) != txHashTextLen {
		return NewInvalidTransactionHashError(hash)
	}
	if _, err := hexutil.Decode(hash); err != nil {
		return NewInvalidTransactionHashError(hash)
	}

	return nil
}
