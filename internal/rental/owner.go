package rental

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Owner holds the properties managed during a session, in insertion order.
type Owner struct {
	name       string
	properties []*Property
}

// Report is the owner's financial summary over occupied properties.
type Report struct {
	Owner         string
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetIncome     decimal.Decimal
}

func NewOwner(name string) *Owner {
	return &Owner{
		name:       name,
		properties: make([]*Property, 0),
	}
}

func (o *Owner) Name() string {
	return o.name
}

// AddProperty appends a property. Duplicate addresses are accepted.
func (o *Owner) AddProperty(property *Property) {
	o.properties = append(o.properties, property)
}

// Properties returns the properties in insertion order.
func (o *Owner) Properties() []*Property {
	properties := make([]*Property, len(o.properties))
	copy(properties, o.properties)
	return properties
}

// FindPropertyByAddress returns the first property whose address matches,
// ignoring case.
func (o *Owner) FindPropertyByAddress(address string) (*Property, bool) {
	for _, property := range o.properties {
		if strings.EqualFold(property.Address(), address) {
			return property, true
		}
	}
	return nil, false
}

// GenerateFinancialReport sums the rent of occupied properties. Expenses are
// accumulated as rent minus rent and therefore stay zero.
func (o *Owner) GenerateFinancialReport() Report {
	totalIncome := decimal.Zero
	totalExpenses := decimal.Zero

	for _, property := range o.properties {
		if property.IsOccupied() {
			totalIncome = totalIncome.Add(property.MonthlyRent())
			totalExpenses = totalExpenses.Add(property.MonthlyRent().Sub(property.MonthlyRent()))
		}
	}

	return Report{
		Owner:         o.name,
		TotalIncome:   totalIncome,
		TotalExpenses: totalExpenses,
		NetIncome:     totalIncome.Sub(totalExpenses),
	}
}

// WriteTo prints the report header followed by the three totals.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "Financial Report for %s\nTotal Income: %s\nTotal Expenses: %s\nNet Income: %s\n",
		r.Owner, FormatAmount(r.TotalIncome), FormatAmount(r.TotalExpenses), FormatAmount(r.NetIncome))
	return int64(n), err
}
