package rental

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwner_FindPropertyByAddress(t *testing.T) {
	owner := NewOwner("John Doe")
	owner.AddProperty(NewProperty("123 Main St", dec(1000)))
	owner.AddProperty(NewProperty("9 Elm Rd", dec(700)))

	p, ok := owner.FindPropertyByAddress("123 main st")
	require.True(t, ok)
	assert.Equal(t, "123 Main St", p.Address())

	p, ok = owner.FindPropertyByAddress("9 ELM RD")
	require.True(t, ok)
	assert.Equal(t, "9 Elm Rd", p.Address())

	p, ok = owner.FindPropertyByAddress("123 Main")
	assert.False(t, ok)
	assert.Nil(t, p)
}

func TestOwner_FindPropertyByAddressFirstMatchWins(t *testing.T) {
	owner := NewOwner("John Doe")
	first := NewProperty("1 Duplicate Ln", dec(100))
	second := NewProperty("1 DUPLICATE LN", dec(200))
	owner.AddProperty(first)
	owner.AddProperty(second)

	p, ok := owner.FindPropertyByAddress("1 duplicate ln")

	require.True(t, ok)
	assert.Same(t, first, p)
	assert.Len(t, owner.Properties(), 2)
}

func TestOwner_PropertiesKeepsInsertionOrder(t *testing.T) {
	owner := NewOwner("John Doe")
	addresses := []string{"c", "a", "b"}
	for _, a := range addresses {
		owner.AddProperty(NewProperty(a, dec(1)))
	}

	properties := owner.Properties()
	require.Len(t, properties, 3)
	for i, a := range addresses {
		assert.Equal(t, a, properties[i].Address())
	}

	properties[0] = nil
	assert.NotNil(t, owner.Properties()[0])
}

func TestOwner_GenerateFinancialReport(t *testing.T) {
	owner := NewOwner("John Doe")
	occupiedA := NewProperty("A", dec(1000))
	occupiedB := NewProperty("B", dec(1500))
	vacant := NewProperty("C", dec(2000))
	occupiedA.AssignTenant(NewTenant("Alice", nil))
	occupiedB.AssignTenant(NewTenant("Bob", nil))
	occupiedA.SetMaintenanceCharges(dec(300))
	owner.AddProperty(occupiedA)
	owner.AddProperty(occupiedB)
	owner.AddProperty(vacant)

	report := owner.GenerateFinancialReport()

	assert.Equal(t, "John Doe", report.Owner)
	assert.True(t, report.TotalIncome.Equal(dec(2500)), "got %s", report.TotalIncome)
	assert.True(t, report.TotalExpenses.IsZero())
	assert.True(t, report.NetIncome.Equal(dec(2500)))

	var out bytes.Buffer
	_, err := report.WriteTo(&out)
	require.NoError(t, err)
	assert.Equal(t, "Financial Report for John Doe\n"+
		"Total Income: Rs 2500.00\n"+
		"Total Expenses: Rs 0.00\n"+
		"Net Income: Rs 2500.00\n", out.String())
}

func TestOwner_GenerateFinancialReportDoesNotMutate(t *testing.T) {
	owner := NewOwner("John Doe")
	p := NewProperty("A", dec(1000))
	p.AssignTenant(NewTenant("Alice", nil))
	p.RecordElectricityUsage(dec(10), dec(2))
	owner.AddProperty(p)

	first := owner.GenerateFinancialReport()
	second := owner.GenerateFinancialReport()

	assert.Equal(t, first, second)
	assert.True(t, p.ElectricityBill().Equal(dec(20)))
	assert.True(t, p.IsOccupied())
}

func TestOwner_GenerateFinancialReportEmpty(t *testing.T) {
	report := NewOwner("Nobody").GenerateFinancialReport()

	assert.True(t, report.TotalIncome.IsZero())
	assert.True(t, report.TotalExpenses.IsZero())
	assert.True(t, report.NetIncome.IsZero())
}
