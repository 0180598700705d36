package main

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/payproto/payproto/infrastructure/config"
	"github.com/payproto/payproto/infrastructure/logger"
)

const (
	createSubCmd  = "create"
	inspectSubCmd = "inspect"
	paySubCmd     = "pay"
	ackSubCmd     = "ack"
)

type configFlags struct {
	DebugLevel string `long:"debuglevel" short:"d" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	config.NetworkFlags
}

type createConfig struct {
	ToAddress  string  `long:"to-address" short:"t" description:"The address the request pays to" required:"true"`
	Amount     float64 `long:"amount" short:"v" description:"The requested amount in BTC (0 lets the payer decide)"`
	Memo       string  `long:"memo" short:"m" description:"A note to display to the payer"`
	PaymentURL string  `long:"payment-url" short:"u" description:"The URL the resulting payment should be submitted to"`
	OutFile    string  `long:"out" short:"o" description:"File to write the serialized payment request to" required:"true"`
	config.NetworkFlags
}

type inspectConfig struct {
	RequestFile   string `long:"request-file" short:"f" description:"File holding the serialized payment request" required:"true"`
	TrustRootFile string `long:"trust-roots" short:"r" description:"PEM file holding the trusted root certificates"`
	config.NetworkFlags
}

type payConfig struct {
	TransactionFiles []string `long:"transaction-file" short:"x" description:"File holding a serialized transaction satisfying the request (may be repeated)" required:"true"`
	RefundAddress    string   `long:"refund-address" description:"The address a refund may be sent to"`
	RefundAmount     float64  `long:"refund-amount" description:"The refund amount in BTC (required with refund-address)"`
	Memo             string   `long:"memo" short:"m" description:"A note to send to the merchant"`
	RequestFile      string   `long:"request-file" short:"f" description:"The payment request being satisfied; its merchant data is echoed back"`
	OutFile          string   `long:"out" short:"o" description:"File to write the serialized payment to" required:"true"`
	config.NetworkFlags
}

type ackConfig struct {
	PaymentFile string `long:"payment-file" short:"f" description:"File holding the serialized payment to acknowledge"`
	AckFile     string `long:"ack-file" short:"a" description:"File holding a serialized ack to print the memo of"`
	Memo        string `long:"memo" short:"m" description:"A note to send back to the payer"`
	OutFile     string `long:"out" short:"o" description:"File to write the serialized ack to"`
	config.NetworkFlags
}

func parseCommandLine() (subCommand string, config interface{}) {
	cfg := &configFlags{}
	parser := flags.NewParser(cfg, flags.PrintErrors|flags.HelpFlag)

	createConf := &createConfig{}
	parser.AddCommand(createSubCmd, "Creates a payment request",
		"Creates an unauthenticated payment request paying the given address and writes it to a file", createConf)

	inspectConf := &inspectConfig{}
	parser.AddCommand(inspectSubCmd, "Validates a payment request",
		"Decodes and validates a payment request against the selected network and prints the resulting intent", inspectConf)

	payConf := &payConfig{}
	parser.AddCommand(paySubCmd, "Creates a payment message",
		"Creates the payment message that satisfies a request from one or more serialized transactions", payConf)

	ackConf := &ackConfig{}
	parser.AddCommand(ackSubCmd, "Creates or reads a payment ack",
		"With payment-file, acknowledges a payment; with ack-file, prints the ack's memo", ackConf)

	_, err := parser.Parse()
	if err != nil {
		var flagsErr *flags.Error
		if ok := errors.As(err, &flagsErr); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
		return "", nil
	}

	if cfg.DebugLevel != "" {
		if err := logger.SetLogLevels(cfg.DebugLevel); err != nil {
			printErrorAndExit(err)
		}
	}

	switch parser.Command.Active.Name {
	case createSubCmd:
		combineNetworkFlags(&createConf.NetworkFlags, &cfg.NetworkFlags)
		if err := createConf.ResolveNetwork(parser); err != nil {
			printErrorAndExit(err)
		}
		return createSubCmd, createConf
	case inspectSubCmd:
		combineNetworkFlags(&inspectConf.NetworkFlags, &cfg.NetworkFlags)
		if err := inspectConf.ResolveNetwork(parser); err != nil {
			printErrorAndExit(err)
		}
		return inspectSubCmd, inspectConf
	case paySubCmd:
		combineNetworkFlags(&payConf.NetworkFlags, &cfg.NetworkFlags)
		if err := payConf.ResolveNetwork(parser); err != nil {
			printErrorAndExit(err)
		}
		return paySubCmd, payConf
	case ackSubCmd:
		combineNetworkFlags(&ackConf.NetworkFlags, &cfg.NetworkFlags)
		if err := ackConf.ResolveNetwork(parser); err != nil {
			printErrorAndExit(err)
		}
		return ackSubCmd, ackConf
	}

	return parser.Command.Active.Name, nil
}

func combineNetworkFlags(dst, src *config.NetworkFlags) {
	dst.Testnet = dst.Testnet || src.Testnet
	dst.Simnet = dst.Simnet || src.Simnet
}
