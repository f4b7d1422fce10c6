package menu

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"rental-manager/internal/ledger"
	"rental-manager/internal/logger"
	"rental-manager/internal/rental"
)

const (
	optionAddProperty = iota + 1
	optionAssignTenant
	optionCollectRent
	optionRecordElectricity
	optionSetMaintenance
	optionEndLease
	optionReport
	optionExit
)

const menuText = `
Rental House Management System
1. Add Property
2. Assign Tenant
3. Collect Rent
4. Record Electricity Usage
5. Set Maintenance Charges
6. End Lease
7. Generate Financial Report
8. Exit
`

// Console runs the interactive menu over a single owner. Lookup and occupancy
// guards live here; the rental types perform no checks of their own.
type Console struct {
	owner  *rental.Owner
	input  *prompter
	out    io.Writer
	ledger ledger.Repository
	logger *logger.Logger
	now    func() time.Time
}

// NewConsole creates a console. repo may be nil to run without a ledger.
func NewConsole(owner *rental.Owner, in io.Reader, out io.Writer, repo ledger.Repository, log *logger.Logger) *Console {
	if log == nil {
		log = logger.Discard()
	}
	return &Console{
		owner:  owner,
		input:  newPrompter(in, out),
		out:    out,
		ledger: repo,
		logger: log,
		now:    time.Now,
	}
}

// Run shows the menu until the user exits or input ends. Malformed numeric
// input aborts the loop with an error wrapping ErrMalformedInput.
func (c *Console) Run() error {
	c.logger.WithField("owner", c.owner.Name()).Debug("Menu started")

	for {
		fmt.Fprint(c.out, menuText)
		choice, err := c.input.readInt("Choose an option: ")
		if err == nil {
			if choice == optionExit {
				fmt.Fprintln(c.out, "Exiting...")
				return nil
			}
			err = c.dispatch(choice)
		}

		if errors.Is(err, io.EOF) {
			c.logger.Debug("Input closed, leaving menu")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) dispatch(choice int) error {
	switch choice {
	case optionAddProperty:
		return c.addProperty()
	case optionAssignTenant:
		return c.assignTenant()
	case optionCollectRent:
		return c.collectRent()
	case optionRecordElectricity:
		return c.recordElectricityUsage()
	case optionSetMaintenance:
		return c.setMaintenanceCharges()
	case optionEndLease:
		return c.endLease()
	case optionReport:
		return c.generateReport()
	default:
		c.logger.WithField("choice", choice).Info("Invalid menu option")
		fmt.Fprintln(c.out, "Invalid option. Please try again.")
		return nil
	}
}

func (c *Console) addProperty() error {
	address, err := c.input.readLine("Enter property address: ")
	if err != nil {
		return err
	}
	rent, err := c.input.readAmount("Enter monthly rent: ")
	if err != nil {
		return err
	}

	c.owner.AddProperty(rental.NewProperty(address, rent))
	c.logger.WithFields(logrus.Fields{
		"address": address,
		"rent":    rent.String(),
	}).Debug("Property added")
	fmt.Fprintln(c.out, "Property added.")
	return nil
}

func (c *Console) assignTenant() error {
	address, err := c.input.readLine("Enter property address to assign tenant: ")
	if err != nil {
		return err
	}

	property, ok := c.owner.FindPropertyByAddress(address)
	if !ok || property.IsOccupied() {
		c.lookupMiss(address, "assign tenant")
		fmt.Fprintln(c.out, "Property not found or already occupied.")
		return nil
	}

	name, err := c.input.readLine("Enter tenant name: ")
	if err != nil {
		return err
	}

	property.AssignTenant(rental.NewTenant(name, c.out))
	c.recordLeaseEvent(property.Address(), name, ledger.LeaseAssigned)
	fmt.Fprintln(c.out, "Tenant assigned.")
	return nil
}

func (c *Console) collectRent() error {
	address, err := c.input.readLine("Enter property address to collect rent: ")
	if err != nil {
		return err
	}

	property, ok := c.occupiedProperty(address, "collect rent")
	if !ok {
		return nil
	}

	statement, paid := property.CollectRent()
	if !paid {
		return nil
	}

	c.logger.WithFields(logrus.Fields{
		"address": statement.Address,
		"tenant":  statement.Tenant,
		"amount":  statement.Total.String(),
	}).Debug("Rent collected")

	if c.ledger != nil {
		if err := c.ledger.RecordPayment(ledger.NewPayment(statement, c.now())); err != nil {
			c.logger.WithError(err).WithField("address", statement.Address).Error("Failed to record payment in ledger")
		}
	}
	return nil
}

func (c *Console) recordElectricityUsage() error {
	address, err := c.input.readLine("Enter property address to record electricity usage: ")
	if err != nil {
		return err
	}

	property, ok := c.occupiedProperty(address, "record electricity usage")
	if !ok {
		return nil
	}

	usage, err := c.input.readAmount("Enter electricity usage (in units): ")
	if err != nil {
		return err
	}
	rate, err := c.input.readAmount("Enter rate per unit: ")
	if err != nil {
		return err
	}

	property.RecordElectricityUsage(usage, rate)
	c.logger.WithFields(logrus.Fields{
		"address": property.Address(),
		"amount":  property.ElectricityBill().String(),
	}).Debug("Electricity usage recorded")
	fmt.Fprintln(c.out, "Electricity usage recorded.")
	return nil
}

func (c *Console) setMaintenanceCharges() error {
	address, err := c.input.readLine("Enter property address to set maintenance charges: ")
	if err != nil {
		return err
	}

	property, ok := c.owner.FindPropertyByAddress(address)
	if !ok {
		c.lookupMiss(address, "set maintenance charges")
		fmt.Fprintln(c.out, "Property not found.")
		return nil
	}

	charges, err := c.input.readAmount("Enter maintenance charges: ")
	if err != nil {
		return err
	}

	property.SetMaintenanceCharges(charges)
	c.logger.WithFields(logrus.Fields{
		"address": property.Address(),
		"amount":  charges.String(),
	}).Debug("Maintenance charges set")
	fmt.Fprintln(c.out, "Maintenance charges set.")
	return nil
}

func (c *Console) endLease() error {
	address, err := c.input.readLine("Enter property address to end lease: ")
	if err != nil {
		return err
	}

	property, ok := c.occupiedProperty(address, "end lease")
	if !ok {
		return nil
	}

	name := property.Tenant().Name()
	property.EndLease()
	c.recordLeaseEvent(property.Address(), name, ledger.LeaseEnded)
	fmt.Fprintln(c.out, "Lease ended, property is now vacant.")
	return nil
}

func (c *Console) generateReport() error {
	report := c.owner.GenerateFinancialReport()
	c.logger.WithFields(logrus.Fields{
		"income":   report.TotalIncome.String(),
		"expenses": report.TotalExpenses.String(),
	}).Debug("Financial report generated")
	_, err := report.WriteTo(c.out)
	return err
}

// occupiedProperty looks up an occupied property, printing the shared
// failure message when there is none.
func (c *Console) occupiedProperty(address, action string) (*rental.Property, bool) {
	property, ok := c.owner.FindPropertyByAddress(address)
	if !ok || !property.IsOccupied() {
		c.lookupMiss(address, action)
		fmt.Fprintln(c.out, "Property not found or no tenant assigned.")
		return nil, false
	}
	return property, true
}

func (c *Console) lookupMiss(address, action string) {
	c.logger.WithFields(logrus.Fields{
		"address": address,
		"action":  action,
	}).Info("Property lookup failed")
}

func (c *Console) recordLeaseEvent(address, tenant string, kind ledger.LeaseEventKind) {
	c.logger.WithFields(logrus.Fields{
		"address": address,
		"tenant":  tenant,
		"event":   string(kind),
	}).Debug("Lease updated")

	if c.ledger == nil {
		return
	}
	event := &ledger.LeaseEvent{
		Address:    address,
		TenantName: tenant,
		Kind:       kind,
		At:         c.now(),
	}
	if err := c.ledger.RecordLeaseEvent(event); err != nil {
		c.logger.WithError(err).WithField("address", address).Error("Failed to record lease event in ledger")
	}
}
