package types

import (
	"github.com/ethereum/go-ethereum/common"
)

// CrossDomainMessage correlates a base-layer enqueue event with its
// rollup-side counterpart. QueueIndex is the sequential position assigned to
// the message at enqueue time; Commitment is the opaque 32-byte identifier the
// queue contract reports for that position. No internal structure of the
// commitment is interpreted here.
type CrossDomainMessage struct {
	QueueIndex uint64      `json:"queueIndex"`
	Commitment common.Hash `json:"commitment"`
}
