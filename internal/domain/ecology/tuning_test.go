package ecology

import "testing"

func TestTuningThresholdsOrdered(t *testing.T) {
	if PlantReproduceThreshold >= PlantMaxGrowEnergy {
		t.Fatalf("plants must be able to seed before they stop growing")
	}
	if PlantEaterReproduceThreshold <= OffspringFactor*PlantEaterBaseEnergy {
		t.Fatalf("plant eaters must afford offspring once past threshold")
	}
	if PredatorReproduceThreshold <= OffspringFactor*PredatorBaseEnergy {
		t.Fatalf("predators must afford offspring once past threshold")
	}
	if FailedActionCost <= 0 || GrowEnergy <= 0 {
		t.Fatalf("penalty and growth must be positive")
	}
}
