package ledger

import (
	"fmt"
	"io"
	"time"

	"rental-manager/internal/rental"
)

// WriteHistory prints the payments and lease events recorded this session.
func WriteHistory(w io.Writer, repo Repository) error {
	payments, err := repo.ListPayments()
	if err != nil {
		return err
	}
	events, err := repo.ListLeaseEvents()
	if err != nil {
		return err
	}

	if len(payments) == 0 && len(events) == 0 {
		fmt.Fprintln(w, "No ledger entries recorded this session.")
		return nil
	}

	if len(payments) > 0 {
		fmt.Fprintln(w, "Payments")
		fmt.Fprintf(w, "%-20s  %-24s  %-16s  %-16s\n", "Paid At", "Address", "Tenant", "Total")
		for _, p := range payments {
			fmt.Fprintf(w, "%-20s  %-24s  %-16s  %-16s\n",
				p.PaidAt.Format(time.DateTime), p.Address, p.TenantName, rental.FormatAmount(p.Total))
		}
	}

	if len(events) > 0 {
		fmt.Fprintln(w, "Lease Events")
		fmt.Fprintf(w, "%-20s  %-24s  %-16s  %-8s\n", "At", "Address", "Tenant", "Event")
		for _, e := range events {
			fmt.Fprintf(w, "%-20s  %-24s  %-16s  %-8s\n",
				e.At.Format(time.DateTime), e.Address, e.TenantName, e.Kind)
		}
	}

	return nil
}
