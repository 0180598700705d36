package main

import (
	"fmt"
	"io/ioutil"
	"time"

	"github.com/payproto/payproto/payment"
	"github.com/payproto/payproto/util"
)

func create(conf *createConfig) error {
	amount, err := util.NewAmount(conf.Amount)
	if err != nil {
		return err
	}
	toAddress, err := util.DecodeAddress(conf.ToAddress, conf.NetParams())
	if err != nil {
		return err
	}

	request, err := payment.CreatePaymentRequest(conf.NetParams(), amount,
		toAddress, conf.Memo, conf.PaymentURL, time.Now())
	if err != nil {
		return err
	}
	serialized, err := request.Serialize()
	if err != nil {
		return err
	}

	if err := ioutil.WriteFile(conf.OutFile, serialized, 0600); err != nil {
		return err
	}
	fmt.Printf("Wrote a %d byte payment request for network %s to %s\n",
		len(serialized), conf.NetParams().Name, conf.OutFile)
	return nil
}
