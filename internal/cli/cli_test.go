package cli

import (
	"context"
	"io"
	"testing"

	"github.com/alexanderramin/driveline/internal/catalog"
	"github.com/alexanderramin/driveline/internal/recommend"
	"github.com/alexanderramin/driveline/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	vehicles := catalog.NewMemoryVehicleRepo()
	require.NoError(t, vehicles.Put(context.Background(), testutil.NewTestVehicle("veh-1", "Trailfinder")))
	return &App{
		Vehicles:      vehicles,
		Leads:         catalog.NewMemoryLeadRepo(),
		Orchestrator:  recommend.New(nil, nil),
		IsInteractive: func() bool { return false },
	}
}

func execute(t *testing.T, app *App, args ...string) error {
	t.Helper()
	root := NewRootCmd(app)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.Execute()
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	root := NewRootCmd(newTestApp(t))

	names := make(map[string]bool)
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"recommend", "catalog", "estimate", "safety", "serve"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRecommendCmd_Deterministic(t *testing.T) {
	err := execute(t, newTestApp(t),
		"recommend", "--strategy", "deterministic",
		"--budget", "40000", "--body-style", "suv", "--fuel-type", "hybrid")
	assert.NoError(t, err)
}

func TestRecommendCmd_InvalidStrategy(t *testing.T) {
	err := execute(t, newTestApp(t),
		"recommend", "--strategy", "psychic", "--budget", "40000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid strategy")
}

func TestRecommendCmd_InteractiveNeedsTerminal(t *testing.T) {
	err := execute(t, newTestApp(t), "recommend", "--interactive")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

func TestSafetyCmd_UnknownVehicle(t *testing.T) {
	err := execute(t, newTestApp(t), "safety", "veh-missing")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestEstimateCmd_RequiresFlags(t *testing.T) {
	err := execute(t, newTestApp(t), "estimate", "loan")
	assert.Error(t, err)
}

func TestEstimateCmd_Loan(t *testing.T) {
	err := execute(t, newTestApp(t), "estimate", "loan", "--price", "30000", "--zip", "60601")
	assert.NoError(t, err)
}
