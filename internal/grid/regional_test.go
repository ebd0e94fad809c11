package grid

import (
	"testing"

	"grid-scenario/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionalFlows_BaselinePricesLeaveInputsUnchanged(t *testing.T) {
	groups := []model.GSPGroup{
		group("GSP1", 120, 80, 60, 40, 150, 180),
		group("GSP2", 90, 110, 30, 55, 130, 160),
	}
	res, err := RegionalFlows(groups, baselineEconomic(), baselineMarket())
	require.NoError(t, err)
	require.Len(t, res, 2)

	for _, g := range groups {
		r := res[g.Name]
		assert.Equal(t, *g.ElectricityImport, r.ElectricityImport)
		assert.Equal(t, *g.ElectricityExport, r.ElectricityExport)
		assert.Equal(t, *g.GasImport, r.GasImport)
		assert.Equal(t, *g.GasExport, r.GasExport)
	}
	assert.InDelta(t, 40, res["GSP1"].NetElectricity, 1e-9)
	assert.InDelta(t, -25, res["GSP2"].NetGas, 1e-9)
}

func TestRegionalFlows_PriceScaling(t *testing.T) {
	market := model.EnergyMarketConditions{ElectricityPrice: f(150), GasPrice: f(37.5)}
	res, err := RegionalFlows([]model.GSPGroup{group("GSP1", 100, 40, 80, 20, 0, 0)}, baselineEconomic(), market)
	require.NoError(t, err)

	r := res["GSP1"]
	assert.InDelta(t, 150, r.ElectricityImport, 1e-9)
	assert.InDelta(t, 60, r.ElectricityExport, 1e-9)
	assert.InDelta(t, 90, r.NetElectricity, 1e-9)
	assert.InDelta(t, 40, r.GasImport, 1e-9)
	assert.InDelta(t, 10, r.GasExport, 1e-9)
	assert.InDelta(t, 30, r.NetGas, 1e-9)
}

func TestRegionalFlows_DuplicateNamesRejected(t *testing.T) {
	groups := []model.GSPGroup{
		group("GSP1", 1, 1, 1, 1, 1, 1),
		group("GSP1", 2, 2, 2, 2, 2, 2),
	}
	_, err := RegionalFlows(groups, baselineEconomic(), baselineMarket())
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestRegionalFlows_MissingFlowField(t *testing.T) {
	g := group("GSP1", 1, 1, 1, 1, 1, 1)
	g.GasExport = nil
	_, err := RegionalFlows([]model.GSPGroup{g}, baselineEconomic(), baselineMarket())

	var ve *model.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, []string{"gas_export"}, ve.Fields)
}

func TestRegionalFlows_NonPositivePrice(t *testing.T) {
	market := baselineMarket()
	market.GasPrice = f(0)
	_, err := RegionalFlows([]model.GSPGroup{group("GSP1", 1, 1, 1, 1, 1, 1)}, baselineEconomic(), market)
	assert.ErrorIs(t, err, model.ErrDivision)
}

func TestRegionalFlows_Empty(t *testing.T) {
	res, err := RegionalFlows(nil, baselineEconomic(), baselineMarket())
	require.NoError(t, err)
	assert.Empty(t, res)
}
