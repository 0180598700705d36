package main

import (
	"fmt"
	"io/ioutil"

	"github.com/payproto/payproto/payment"
)

func inspect(conf *inspectConfig) error {
	serialized, err := ioutil.ReadFile(conf.RequestFile)
	if err != nil {
		return err
	}
	trustStore, err := loadTrustStore(conf.TrustRootFile)
	if err != nil {
		return err
	}

	validator := payment.NewValidator(payment.Config{
		Params:     conf.NetParams(),
		TrustStore: trustStore,
	})
	intent, err := validator.ParsePaymentRequest(serialized)
	if err != nil {
		return err
	}

	fmt.Printf("Request hash:\t%x\n", intent.PaymentRequestHash)
	if intent.IsVerified() {
		fmt.Printf("Payee:\t\t%s\n", intent.PayeeName)
		if intent.PayeeOrganization != "" {
			fmt.Printf("Organization:\t%s\n", intent.PayeeOrganization)
		}
		fmt.Printf("Verified by:\t%s\n", intent.PayeeVerifiedBy)
	} else {
		fmt.Println("Payee:\t\tunverified")
	}
	for i, output := range intent.Outputs {
		fmt.Printf("Output %d:\t%s (script %x)\n", i, output.Amount, output.Script)
	}
	fmt.Printf("Total:\t\t%s\n", intent.TotalAmount())
	if intent.Memo != "" {
		fmt.Printf("Memo:\t\t%s\n", intent.Memo)
	}
	if intent.HasPaymentURL() {
		fmt.Printf("Payment URL:\t%s\n", intent.PaymentURL)
	}
	if intent.MerchantData != nil {
		fmt.Printf("Merchant data:\t%x\n", intent.MerchantData)
	}
	return nil
}
