package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/payproto/payproto/version"
)

func main() {
	subCmd, config := parseCommandLine()
	log.Debugf("payprotoctl version %s", version.Version())

	var err error
	switch subCmd {
	case createSubCmd:
		err = create(config.(*createConfig))
	case inspectSubCmd:
		err = inspect(config.(*inspectConfig))
	case paySubCmd:
		err = pay(config.(*payConfig))
	case ackSubCmd:
		err = ack(config.(*ackConfig))
	default:
		err = errors.Errorf("Unknown sub-command '%s'\n", subCmd)
	}

	if err != nil {
		printErrorAndExit(err)
	}
}

func printErrorAndExit(err error) {
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	os.Exit(1)
}
