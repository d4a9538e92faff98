package configs

import (
	"log"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// NewMidtransClient builds the Snap client used by the checkout flow.
// Returns nil when no server key is configured; orders are then
// created without a payment URL.
func NewMidtransClient(env ENV) *snap.Client {
	if env.MidtransServerKey == "" {
		return nil
	}

	client := &snap.Client{}
	client.New(env.MidtransServerKey, midtrans.Sandbox)
	log.Println("✅ Midtrans Snap Client initialized.")

	return client
}
