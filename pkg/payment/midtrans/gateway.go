package midtrans

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"

	"bookverse-be/internal/pkg/apperr"
	"bookverse-be/pkg/payment"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/coreapi"
	"github.com/midtrans/midtrans-go/snap"
)

// Gateway implements payment.Gateway on top of the Midtrans Snap and Core APIs.
type Gateway struct {
	snapClient snap.Client
	coreClient coreapi.Client
	serverKey  string
}

func NewGateway(serverKey string, isProduction bool) *Gateway {
	env := midtrans.Sandbox
	if isProduction {
		env = midtrans.Production
	}

	g := &Gateway{serverKey: serverKey}
	g.snapClient.New(serverKey, env)
	g.coreClient.New(serverKey, env)
	return g
}

func (g *Gateway) CreateSession(_ context.Context, req *payment.SessionRequest) (*payment.Session, error) {
	items := make([]midtrans.ItemDetails, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, midtrans.ItemDetails{
			ID:    it.Id,
			Name:  truncate(it.Name, 50),
			Price: it.Price,
			Qty:   it.Qty,
		})
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderId,
			GrossAmt: req.GrossAmount,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		},
		Items:           &items,
		EnabledPayments: snap.AllSnapPaymentType,
	}

	if req.ExpiryMinutes > 0 {
		snapReq.Expiry = &snap.ExpiryDetails{
			Unit:     "minutes",
			Duration: int64(req.ExpiryMinutes),
		}
	}
	if req.FinishURL != "" {
		snapReq.Callbacks = &snap.Callbacks{Finish: req.FinishURL}
	}

	resp, midErr := g.snapClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("%w: midtrans snap: %s", apperr.ErrGatewayUnavailable, midErr.GetMessage())
	}

	return &payment.Session{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

func (g *Gateway) QueryStatus(_ context.Context, orderId string) (*payment.Status, error) {
	resp, midErr := g.coreClient.CheckTransaction(orderId)
	if midErr != nil {
		return nil, fmt.Errorf("%w: midtrans check: %s", apperr.ErrGatewayUnavailable, midErr.GetMessage())
	}

	return &payment.Status{
		OrderId:              resp.OrderID,
		TransactionStatus:    resp.TransactionStatus,
		FraudStatus:          resp.FraudStatus,
		PaymentType:          resp.PaymentType,
		GatewayTransactionId: resp.TransactionID,
	}, nil
}

func (g *Gateway) Cancel(_ context.Context, orderId string) error {
	_, midErr := g.coreClient.CancelTransaction(orderId)
	if midErr != nil {
		return fmt.Errorf("%w: midtrans cancel: %s", apperr.ErrGatewayUnavailable, midErr.GetMessage())
	}
	return nil
}

// VerifySignature checks the Midtrans webhook signature:
// SHA512(order_id + status_code + gross_amount + server_key).
func (g *Gateway) VerifySignature(orderId, statusCode, grossAmount, signatureKey string) bool {
	input := orderId + statusCode + grossAmount + g.serverKey
	expected := fmt.Sprintf("%x", sha512.Sum512([]byte(input)))
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signatureKey)) == 1
}

// truncate cuts on a rune boundary so multibyte titles never produce
// invalid UTF-8 in the gateway payload.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
