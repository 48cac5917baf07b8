package enum

// PaymentMethod represents how a bill was settled
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodMobile PaymentMethod = "mobile"
	PaymentMethodOther  PaymentMethod = "other"
)

func (p PaymentMethod) String() string {
	return string(p)
}

// IsValid reports whether p is one of the accepted payment methods
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodMobile, PaymentMethodOther:
		return true
	}
	return false
}

// ParsePaymentMethod normalizes a raw payment method string, defaulting
// to cash when empty
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	if s == "" {
		return PaymentMethodCash, true
	}
	p := PaymentMethod(s)
	return p, p.IsValid()
}
