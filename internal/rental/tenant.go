package rental

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// Tenant is the occupant of a property. A tenant only exists while a
// property holds it.
type Tenant struct {
	name          string
	paymentStatus bool
	out           io.Writer
}

// NewTenant creates a tenant whose confirmations are written to out.
// A nil writer discards them.
func NewTenant(name string, out io.Writer) *Tenant {
	if out == nil {
		out = io.Discard
	}
	return &Tenant{
		name: name,
		out:  out,
	}
}

// PayRent records a payment of amount. The amount is not validated.
func (t *Tenant) PayRent(amount decimal.Decimal) {
	fmt.Fprintf(t.out, "%s has paid a total amount of: %s\n", t.name, FormatAmount(amount))
	t.paymentStatus = true
}

// ClearOutstandingDues resets the payment status.
func (t *Tenant) ClearOutstandingDues() {
	t.paymentStatus = false
	fmt.Fprintf(t.out, "%s has cleared all outstanding dues.\n", t.name)
}

func (t *Tenant) PaymentStatus() bool {
	return t.paymentStatus
}

func (t *Tenant) Name() string {
	return t.name
}
