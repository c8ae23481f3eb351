package ecology

const (
	GrowEnergy       = 0.5
	MoveEnergyCost   = 1.0
	MinMoveEnergy    = 1.0
	FailedActionCost = 0.2
	OffspringFactor  = 2.0

	MinVisiblePlantsToEat = 2

	CritterBaseEnergy = 10.0

	SnakeBaseEnergy         = 10.0
	SnakeReproduceThreshold = 45.0

	PlantBaseEnergy         = 3.0
	PlantEnergySpread       = 4.0
	PlantReproduceThreshold = 15.0
	PlantMaxGrowEnergy      = 20.0

	PlantEaterBaseEnergy         = 15.0
	PlantEaterReproduceThreshold = 45.0

	PredatorBaseEnergy         = 135.0
	PredatorReproduceThreshold = 300.0
)

// Diet names the symbols eaters look for in their view.
type Diet struct {
	Plant byte
	Prey  []byte
}

func DefaultDiet() Diet {
	return Diet{Plant: '*', Prey: []byte{'~', 'O'}}
}
