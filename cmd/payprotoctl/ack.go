package main

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"

	"github.com/payproto/payproto/payment"
	"github.com/payproto/payproto/wire"
)

func ack(conf *ackConfig) error {
	switch {
	case conf.AckFile != "":
		return printAckMemo(conf.AckFile)
	case conf.PaymentFile != "":
		return createAck(conf)
	default:
		return errors.New("either payment-file or ack-file must be given")
	}
}

func createAck(conf *ackConfig) error {
	if conf.OutFile == "" {
		return errors.New("out is required when acknowledging a payment")
	}
	serializedPayment, err := ioutil.ReadFile(conf.PaymentFile)
	if err != nil {
		return err
	}
	paymentMessage, err := wire.DeserializePayment(serializedPayment)
	if err != nil {
		return err
	}

	ackMessage := payment.CreatePaymentAck(paymentMessage, conf.Memo)
	serialized, err := ackMessage.Serialize()
	if err != nil {
		return err
	}

	if err := ioutil.WriteFile(conf.OutFile, serialized, 0600); err != nil {
		return err
	}
	fmt.Printf("Wrote a %d byte payment ack to %s\n", len(serialized), conf.OutFile)
	return nil
}

func printAckMemo(ackFile string) error {
	serialized, err := ioutil.ReadFile(ackFile)
	if err != nil {
		return err
	}
	ackMessage, err := wire.DeserializePaymentAck(serialized)
	if err != nil {
		return err
	}

	if memo, ok := payment.PaymentAckMemo(ackMessage); ok {
		fmt.Printf("Memo: %s\n", memo)
	} else {
		fmt.Println("The ack carries no memo")
	}
	return nil
}
