package payment

import (
	"klinik-backend/internal/models"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// Gateway abstraksi pembuatan link pembayaran, biar handler gampang di-stub di test
type Gateway interface {
	CreatePaymentLink(t *models.Transaction, payer *models.User) (snapToken, redirectURL string, err error)
}

// SnapGateway implementasi Gateway di atas Midtrans Snap
type SnapGateway struct {
	client snap.Client
}

// NewSnap membuat client Snap. production=false berarti sandbox.
func NewSnap(serverKey string, production bool) *SnapGateway {
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}

	var s snap.Client
	s.New(serverKey, env)

	return &SnapGateway{client: s}
}

// CreatePaymentLink minta token Snap untuk satu transaksi obat.
// OrderID Midtrans = ID transaksi kita, jadi webhook gampang cocokkan balik.
func (g *SnapGateway) CreatePaymentLink(t *models.Transaction, payer *models.User) (string, string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  t.ID,
			GrossAmt: int64(t.Harga), // Midtrans minta int64
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: payer.Name,
			Email: payer.Email,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    t.ID,
				Name:  t.Obat,
				Price: int64(t.Harga),
				Qty:   1,
			},
		},
	}

	resp, errSnap := g.client.CreateTransaction(req)
	if errSnap != nil {
		return "", "", errSnap
	}

	return resp.Token, resp.RedirectURL, nil
}
