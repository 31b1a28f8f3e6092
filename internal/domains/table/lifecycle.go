package table

import (
	"carre/shared/constant"
)

// transitions is the explicit edge set of the table state graph. Release
// (any state back to libre) is handled separately because it also clears
// the client fields.
var transitions = map[string][]string{
	constant.TableStatusFree:      {constant.TableStatusReserved},
	constant.TableStatusReserved:  {constant.TableStatusConfirmed},
	constant.TableStatusConfirmed: {constant.TableStatusPaid},
	constant.TableStatusPaid:      {},
}

// CanTransition reports whether moving from one status to another is a
// permitted forward edge. Same-state moves are always allowed.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}

	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// IsValidStatus reports whether the given status is one of the lifecycle
// states.
func IsValidStatus(status string) bool {
	for _, s := range constant.TableStatuses {
		if s == status {
			return true
		}
	}

	return false
}
