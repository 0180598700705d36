package main

import (
	"fmt"
	"io/ioutil"

	"github.com/payproto/payproto/payment"
	"github.com/payproto/payproto/util"
	"github.com/payproto/payproto/wire"
)

func pay(conf *payConfig) error {
	transactions := make([][]byte, 0, len(conf.TransactionFiles))
	for _, transactionFile := range conf.TransactionFiles {
		transaction, err := ioutil.ReadFile(transactionFile)
		if err != nil {
			return err
		}
		transactions = append(transactions, transaction)
	}

	var refundAddress util.Address
	var refundAmount *util.Amount
	if conf.RefundAddress != "" {
		var err error
		refundAddress, err = util.DecodeAddress(conf.RefundAddress, conf.NetParams())
		if err != nil {
			return err
		}
		amount, err := util.NewAmount(conf.RefundAmount)
		if err != nil {
			return err
		}
		refundAmount = &amount
	}

	// The merchant data of the request being satisfied is echoed back so
	// the merchant can correlate the payment.
	var merchantData []byte
	if conf.RequestFile != "" {
		serializedRequest, err := ioutil.ReadFile(conf.RequestFile)
		if err != nil {
			return err
		}
		request, err := wire.DeserializePaymentRequest(serializedRequest)
		if err != nil {
			return err
		}
		details, err := wire.DeserializePaymentDetails(request.SerializedPaymentDetails)
		if err != nil {
			return err
		}
		merchantData = details.MerchantData
	}

	paymentMessage, err := payment.CreatePayment(transactions, refundAddress,
		refundAmount, conf.Memo, merchantData)
	if err != nil {
		return err
	}
	serialized, err := paymentMessage.Serialize()
	if err != nil {
		return err
	}

	if err := ioutil.WriteFile(conf.OutFile, serialized, 0600); err != nil {
		return err
	}
	fmt.Printf("Wrote a %d byte payment with %d transactions to %s\n",
		len(serialized), len(transactions), conf.OutFile)
	return nil
}
