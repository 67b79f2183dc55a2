package evm

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// ContractDeployBackend is the client surface every component in this package
// reads through. *ethclient.Client satisfies it for both HTTP and WebSocket
// transports.
type ContractDeployBackend interface {
	bind.ContractBackend
	bind.DeployBackend
}
