package grid

import (
	"testing"

	"grid-scenario/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetDemand(t *testing.T) {
	groups := []model.GSPGroup{
		group("North", 0, 0, 0, 0, 1000, 700),
		group("South", 0, 0, 0, 0, 400, 300),
	}
	gen := &model.GenerationResult{Total: 600}
	gas := &model.GasNetworkResult{NetAvailability: 500}

	res, err := NetDemand(groups, gen, gas)
	require.NoError(t, err)
	assert.Equal(t, model.GroupNetDemand{Electricity: 400, Gas: 200}, res.ByGroup["North"])
	assert.Equal(t, model.GroupNetDemand{Electricity: -200, Gas: -200}, res.ByGroup["South"])
	assert.Equal(t, model.NationalNetDemand{Electricity: 200, Gas: 0}, res.Total)
}

func TestNetDemand_MissingDemandIsRejectedWithoutMutation(t *testing.T) {
	groups := []model.GSPGroup{
		group("GSP1", 0, 0, 0, 0, 150, 180),
		group("GSP2", 0, 0, 0, 0, 130, 160),
	}
	groups[1].ElectricityDemand = nil
	before := model.CloneGroups(groups)

	res, err := NetDemand(groups, &model.GenerationResult{Total: 10}, &model.GasNetworkResult{NetAvailability: 10})
	require.ErrorIs(t, err, model.ErrValidation)
	assert.Nil(t, res)
	assert.Equal(t, before, groups)
}

func TestNetDemand_DuplicateNames(t *testing.T) {
	groups := []model.GSPGroup{
		group("GSP1", 0, 0, 0, 0, 1, 1),
		group("GSP1", 0, 0, 0, 0, 2, 2),
	}
	_, err := NetDemand(groups, &model.GenerationResult{}, &model.GasNetworkResult{})
	assert.ErrorIs(t, err, model.ErrValidation)
}
