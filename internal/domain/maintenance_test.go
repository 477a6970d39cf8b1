package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validMaintenance() *Maintenance {
	return &Maintenance{
		ID:            "m1",
		Title:         "Filter change",
		EquipmentID:   "e1",
		EquipmentName: "HVAC Unit 3",
		ScheduledDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Priority:      PriorityMedium,
		Status:        MaintenancePlanned,
	}
}

func TestMaintenanceValidate(t *testing.T) {
	require.NoError(t, validMaintenance().Validate())
}

func TestMaintenanceValidate_RecurringRequiresFrequency(t *testing.T) {
	m := validMaintenance()
	m.IsRecurring = true
	m.Frequency = ""

	err := m.Validate()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "frequency", verr.Field)
}

func TestMaintenanceValidate_RecurringUnknownFrequency(t *testing.T) {
	m := validMaintenance()
	m.IsRecurring = true
	m.Frequency = "fortnightly"

	err := m.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "frequency", verr.Field)
}

func TestMaintenanceValidate_MissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Maintenance)
		field  string
	}{
		{"title", func(m *Maintenance) { m.Title = "" }, "title"},
		{"equipment", func(m *Maintenance) { m.EquipmentID = "" }, "equipmentId"},
		{"scheduled date", func(m *Maintenance) { m.ScheduledDate = time.Time{} }, "scheduledDate"},
		{"priority", func(m *Maintenance) { m.Priority = "urgent" }, "priority"},
		{"status", func(m *Maintenance) { m.Status = "done" }, "status"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := validMaintenance()
			tc.mutate(m)
			err := m.Validate()
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestChainRootID(t *testing.T) {
	m := validMaintenance()
	assert.Equal(t, "m1", m.ChainRootID(), "root points at itself")

	root := "m0"
	m.ParentMaintenanceID = &root
	assert.Equal(t, "m0", m.ChainRootID(), "successor points at the chain root")
}

func TestParseFrequency(t *testing.T) {
	for lit := range ValidFrequencies {
		f, err := ParseFrequency(lit)
		require.NoError(t, err)
		assert.Equal(t, Frequency(lit), f)
	}

	_, err := ParseFrequency("每月")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}
