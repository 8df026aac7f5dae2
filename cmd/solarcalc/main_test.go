package main

import (
	"bytes"
	"errors"
	"testing"

	"solarhub/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInventory(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run([]string{"-ac15Ton", "1", "-ac1Ton", "2", "-other", "40", "-other-desc", "router"}, &out, &errOut))

	s := out.String()
	assert.Contains(t, s, "Connected Load")
	assert.Contains(t, s, "AC 1.5 ton")
	assert.Contains(t, s, "Other (router)")
	assert.Contains(t, s, "5040 (5.04 kW)")
	assert.Contains(t, s, "Recommended System (calculator)")
}

func TestRunWizard(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-ac15Ton", "1", "-ac1Ton", "2", "-strategy", "wizard"}, &out, &out))

	s := out.String()
	assert.Contains(t, s, "Recommended System (wizard)")
	assert.Contains(t, s, "28 kWh")
	assert.Contains(t, s, "PKR 1050000")
}

func TestRunConsumption(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-monthly", "1200"}, &out, &out))

	s := out.String()
	assert.NotContains(t, s, "Connected Load")
	assert.Contains(t, s, "40.00 kWh")
	assert.Contains(t, s, "10 kW")
}

func TestRunEmptyLoad(t *testing.T) {
	var out bytes.Buffer
	err := run(nil, &out, &out)
	var verr *types.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "appliances")
}

func TestRunBadFlags(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run([]string{"-fans", "many"}, &out, &out))
	assert.Error(t, run([]string{"-strategy", "unified", "-fans", "1"}, &out, &out))
}
