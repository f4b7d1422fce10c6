package rental

import "github.com/shopspring/decimal"

// Property is a rental unit identified by its address.
//
// occupied always mirrors tenant != nil. The bill fields may be written while
// vacant; they are only billed by CollectRent.
type Property struct {
	address            string
	monthlyRent        decimal.Decimal
	electricityBill    decimal.Decimal
	maintenanceCharges decimal.Decimal
	tenant             *Tenant
	occupied           bool
}

// Statement is the breakdown of a single rent collection.
type Statement struct {
	Address     string
	Tenant      string
	Rent        decimal.Decimal
	Electricity decimal.Decimal
	Maintenance decimal.Decimal
	Total       decimal.Decimal
}

// NewProperty creates a vacant property with no outstanding bills.
func NewProperty(address string, monthlyRent decimal.Decimal) *Property {
	return &Property{
		address:            address,
		monthlyRent:        monthlyRent,
		electricityBill:    decimal.Zero,
		maintenanceCharges: decimal.Zero,
	}
}

// AssignTenant hands the tenant to this property. It does not check whether
// the property is already occupied; a previous tenant is replaced as is.
func (p *Property) AssignTenant(tenant *Tenant) {
	p.tenant = tenant
	p.occupied = tenant != nil
}

// CollectRent bills the tenant for rent plus outstanding dues and clears the
// dues. It reports false and does nothing when the property is vacant.
func (p *Property) CollectRent() (Statement, bool) {
	if p.tenant == nil {
		return Statement{}, false
	}

	st := Statement{
		Address:     p.address,
		Tenant:      p.tenant.Name(),
		Rent:        p.monthlyRent,
		Electricity: p.electricityBill,
		Maintenance: p.maintenanceCharges,
		Total:       p.monthlyRent.Add(p.electricityBill).Add(p.maintenanceCharges),
	}
	p.tenant.PayRent(st.Total)
	p.clearDues()

	return st, true
}

// RecordElectricityUsage replaces the electricity bill with usage * ratePerUnit.
func (p *Property) RecordElectricityUsage(usage, ratePerUnit decimal.Decimal) {
	p.electricityBill = usage.Mul(ratePerUnit)
}

// SetMaintenanceCharges replaces the maintenance charges.
func (p *Property) SetMaintenanceCharges(charges decimal.Decimal) {
	p.maintenanceCharges = charges
}

// EndLease clears the tenant's dues and releases it. No-op when vacant.
func (p *Property) EndLease() {
	if p.tenant == nil {
		return
	}
	p.tenant.ClearOutstandingDues()
	p.tenant = nil
	p.occupied = false
}

func (p *Property) clearDues() {
	p.electricityBill = decimal.Zero
	p.maintenanceCharges = decimal.Zero
}

func (p *Property) IsOccupied() bool {
	return p.occupied
}

func (p *Property) MonthlyRent() decimal.Decimal {
	return p.monthlyRent
}

func (p *Property) Address() string {
	return p.address
}

func (p *Property) ElectricityBill() decimal.Decimal {
	return p.electricityBill
}

func (p *Property) MaintenanceCharges() decimal.Decimal {
	return p.maintenanceCharges
}

// Tenant returns the current tenant, or nil when vacant.
func (p *Property) Tenant() *Tenant {
	return p.tenant
}
