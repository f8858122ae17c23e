package rpcpool

import "time"

const (
	DefaultConnectTimeout = 10 * time.Second
	DefaultProbeInterval  = 15 * time.Second
	DefaultProbeTimeout   = 10 * time.Second
)

// DefaultEndpoints are tried in order when no RPC URLs are configured.
var DefaultEndpoints = []string{
	"https://api.mainnet.abs.xyz",
	"https://abstract.drpc.org",
}
