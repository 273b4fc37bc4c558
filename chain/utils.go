package chain

import (
	"fmt"
	"strings"
)

const (
	MainNet = "mainnet"
	TestNet = "testnet"
)

// ParseNetwork reports whether name selects mainnet.
func ParseNetwork(name string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", MainNet, "main":
		return true, nil
	case TestNet, "test", "testnet3":
		return false, nil
	default:
		return false, fmt.Errorf("unknown network %q", name)
	}
}

func NetworkName(mainnet bool) string {
	if mainnet {
		return MainNet
	}
	return TestNet
}
