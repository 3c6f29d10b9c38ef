package entities

// EntityKind identifies which lifecycle a status belongs to.
type EntityKind string

const (
	EntityKindServiceOrder     EntityKind = "SERVICE_ORDER"
	EntityKindBudget           EntityKind = "BUDGET"
	EntityKindServiceExecution EntityKind = "SERVICE_EXECUTION"
)

// transitionTable maps (entity kind, current status) to the statuses it may move to.
//
// Every lifecycle method consults this table; there are no inline transition checks
// anywhere else in the domain.
var transitionTable = map[EntityKind]map[string][]string{
	EntityKindServiceOrder: {
		string(ServiceOrderStatusRequested):        {string(ServiceOrderStatusReceived), string(ServiceOrderStatusRejected), string(ServiceOrderStatusCancelled)},
		string(ServiceOrderStatusReceived):         {string(ServiceOrderStatusInDiagnosis), string(ServiceOrderStatusCancelled)},
		string(ServiceOrderStatusInDiagnosis):      {string(ServiceOrderStatusAwaitingApproval), string(ServiceOrderStatusCancelled)},
		string(ServiceOrderStatusAwaitingApproval): {string(ServiceOrderStatusApproved), string(ServiceOrderStatusRejected)},
		string(ServiceOrderStatusApproved):         {string(ServiceOrderStatusInExecution)},
		string(ServiceOrderStatusScheduled):        {string(ServiceOrderStatusInExecution)},
		string(ServiceOrderStatusInExecution):      {string(ServiceOrderStatusFinished)},
		string(ServiceOrderStatusFinished):         {string(ServiceOrderStatusDelivered)},
		// Post-delivery dispute/return path.
		string(ServiceOrderStatusDelivered): {string(ServiceOrderStatusRejected)},
		string(ServiceOrderStatusRejected):  {},
		string(ServiceOrderStatusCancelled): {},
	},
	EntityKindBudget: {
		string(BudgetStatusGenerated): {string(BudgetStatusSent)},
		string(BudgetStatusSent):      {string(BudgetStatusReceived), string(BudgetStatusApproved), string(BudgetStatusRejected)},
		string(BudgetStatusReceived):  {string(BudgetStatusApproved), string(BudgetStatusRejected)},
		string(BudgetStatusApproved):  {},
		string(BudgetStatusRejected):  {},
	},
	EntityKindServiceExecution: {
		string(ServiceExecutionStatusAssigned):   {string(ServiceExecutionStatusInProgress)},
		string(ServiceExecutionStatusInProgress): {string(ServiceExecutionStatusCompleted)},
		string(ServiceExecutionStatusCompleted):  {},
	},
}

var finalStatuses = map[EntityKind]map[string]bool{
	EntityKindServiceOrder: {
		string(ServiceOrderStatusRejected):  true,
		string(ServiceOrderStatusCancelled): true,
		string(ServiceOrderStatusDelivered): true,
	},
	EntityKindBudget: {
		string(BudgetStatusApproved): true,
		string(BudgetStatusRejected): true,
	},
	EntityKindServiceExecution: {
		string(ServiceExecutionStatusCompleted): true,
	},
}

// AllowedTransitions returns a copy of the statuses reachable from `from`.
// Unknown kinds or statuses yield an empty slice.
func AllowedTransitions(kind EntityKind, from string) []string {
	next := transitionTable[kind][from]
	out := make([]string, len(next))
	copy(out, next)
	return out
}

func CanTransition(kind EntityKind, from, to string) bool {
	for _, s := range transitionTable[kind][from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns an *InvalidStatusTransitionError when from -> to is not in the table.
func ValidateTransition(kind EntityKind, from, to string) error {
	if !CanTransition(kind, from, to) {
		return &InvalidStatusTransitionError{EntityKind: kind, From: from, To: to}
	}
	return nil
}

// IsFinalStatus reports whether status is classified as final for kind.
//
// DELIVERED is final for service orders even though DELIVERED -> REJECTED is legal:
// no forward workflow step follows a delivery, only the dispute edge.
func IsFinalStatus(kind EntityKind, status string) bool {
	return finalStatuses[kind][status]
}

// IsKnownStatus reports whether status belongs to kind's state machine.
func IsKnownStatus(kind EntityKind, status string) bool {
	_, ok := transitionTable[kind][status]
	return ok
}
