package ports

import "ecosim/internal/domain/ecology"

type TurnMetrics interface {
	RecordTurn(report ecology.TurnReport)
	RecordConflict()
	RecordFailure()
}
