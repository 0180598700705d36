package config

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/payproto/payproto/netparams"
)

// NetworkFlags holds the network configuration, that is which network is
// selected.
type NetworkFlags struct {
	Testnet bool `long:"testnet" description:"Use the test network"`
	Simnet  bool `long:"simnet" description:"Use the simulation test network"`

	ActiveNetParams *netparams.Params
}

// ResolveNetwork parses the network command line arguments and sets
// ActiveNetParams accordingly. The main network is the default. It
// returns an error if more than one network was selected.
func (networkFlags *NetworkFlags) ResolveNetwork(parser *flags.Parser) error {
	networkFlags.ActiveNetParams = &netparams.MainnetParams
	// Multiple networks can't be selected simultaneously.
	numNets := 0
	if networkFlags.Testnet {
		numNets++
		networkFlags.ActiveNetParams = &netparams.TestnetParams
	}
	if networkFlags.Simnet {
		numNets++
		networkFlags.ActiveNetParams = &netparams.SimnetParams
	}
	if numNets > 1 {
		message := "Multiple network parameters (testnet, simnet) cannot be " +
			"used together. Please choose only one network"
		err := errors.Errorf(message)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return err
	}

	return nil
}

// NetParams returns the ActiveNetParams
func (networkFlags *NetworkFlags) NetParams() *netparams.Params {
	return networkFlags.ActiveNetParams
}
