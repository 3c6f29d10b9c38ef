package entities

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderIn(status ServiceOrderStatus) ServiceOrder {
	o := NewServiceOrder("os-1", "client-1", "vehicle-1", "", ServiceOrderOriginClient)
	o.Status = status
	return o
}

func TestNewServiceOrder_InitialStatusByOrigin(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	freezeClock(t, now)

	client := NewServiceOrder("os-1", "c-1", "v-1", "  noise on brakes ", ServiceOrderOriginClient)
	assert.Equal(t, ServiceOrderStatusRequested, client.Status)
	assert.Equal(t, "noise on brakes", client.Notes)
	assert.Equal(t, now, client.RequestDate)
	assert.Nil(t, client.DeliveryDate)

	employee := NewServiceOrder("os-2", "c-1", "v-1", "", ServiceOrderOriginEmployee)
	assert.Equal(t, ServiceOrderStatusReceived, employee.Status)
}

func TestServiceOrder_TransitionMethods(t *testing.T) {
	methods := []struct {
		name string
		call func(o *ServiceOrder) error
		from []ServiceOrderStatus
		to   ServiceOrderStatus
	}{
		{name: "MarkReceived", call: (*ServiceOrder).MarkReceived, from: []ServiceOrderStatus{ServiceOrderStatusRequested}, to: ServiceOrderStatusReceived},
		{name: "MarkInDiagnosis", call: (*ServiceOrder).MarkInDiagnosis, from: []ServiceOrderStatus{ServiceOrderStatusReceived}, to: ServiceOrderStatusInDiagnosis},
		{name: "MarkAwaitingApproval", call: (*ServiceOrder).MarkAwaitingApproval, from: []ServiceOrderStatus{ServiceOrderStatusInDiagnosis}, to: ServiceOrderStatusAwaitingApproval},
		{name: "MarkApproved", call: (*ServiceOrder).MarkApproved, from: []ServiceOrderStatus{ServiceOrderStatusAwaitingApproval}, to: ServiceOrderStatusApproved},
		{name: "MarkInExecution", call: (*ServiceOrder).MarkInExecution, from: []ServiceOrderStatus{ServiceOrderStatusApproved, ServiceOrderStatusScheduled}, to: ServiceOrderStatusInExecution},
		{name: "MarkFinished", call: (*ServiceOrder).MarkFinished, from: []ServiceOrderStatus{ServiceOrderStatusInExecution}, to: ServiceOrderStatusFinished},
		{name: "MarkDelivered", call: (*ServiceOrder).MarkDelivered, from: []ServiceOrderStatus{ServiceOrderStatusFinished}, to: ServiceOrderStatusDelivered},
		{name: "MarkRejected", call: (*ServiceOrder).MarkRejected, from: []ServiceOrderStatus{ServiceOrderStatusRequested, ServiceOrderStatusAwaitingApproval, ServiceOrderStatusDelivered}, to: ServiceOrderStatusRejected},
		{name: "Cancel", call: func(o *ServiceOrder) error { return o.Cancel("client gave up") }, from: []ServiceOrderStatus{ServiceOrderStatusRequested, ServiceOrderStatusReceived, ServiceOrderStatusInDiagnosis}, to: ServiceOrderStatusCancelled},
	}

	for _, m := range methods {
		legal := map[ServiceOrderStatus]bool{}
		for _, s := range m.from {
			legal[s] = true
		}
		for _, status := range allServiceOrderStatuses {
			t.Run(m.name+" from "+string(status), func(t *testing.T) {
				o := orderIn(status)
				before := o
				err := m.call(&o)
				if legal[status] {
					require.NoError(t, err)
					assert.Equal(t, m.to, o.Status)
					assert.False(t, o.UpdatedAt.Before(before.UpdatedAt))
					return
				}
				var transitionErr *InvalidStatusTransitionError
				require.True(t, errors.As(err, &transitionErr), "expected transition error, got %v", err)
				assert.Equal(t, string(status), transitionErr.From)
				assert.Equal(t, string(m.to), transitionErr.To)
				assert.Equal(t, before, o, "state must be unchanged")
			})
		}
	}
}

func TestServiceOrder_CancelStoresReason(t *testing.T) {
	o := orderIn(ServiceOrderStatusInDiagnosis)
	require.NoError(t, o.Cancel("  parts unavailable "))
	assert.Equal(t, ServiceOrderStatusCancelled, o.Status)
	assert.Equal(t, "parts unavailable", o.CancellationReason)

	err := o.Cancel("again")
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Equal(t, "parts unavailable", o.CancellationReason)

	blank := orderIn(ServiceOrderStatusRequested)
	assert.ErrorIs(t, blank.Cancel("   "), ErrMissingReason)
	assert.Equal(t, ServiceOrderStatusRequested, blank.Status)
}

func TestServiceOrder_CancelChecksTransitionBeforeReason(t *testing.T) {
	for _, status := range []ServiceOrderStatus{ServiceOrderStatusCancelled, ServiceOrderStatusDelivered, ServiceOrderStatusApproved} {
		t.Run(string(status), func(t *testing.T) {
			o := orderIn(status)
			err := o.Cancel("")
			assert.ErrorIs(t, err, ErrInvalidStatusTransition)
			assert.NotErrorIs(t, err, ErrMissingReason)
			assert.Equal(t, status, o.Status)
		})
	}
}

func TestServiceOrder_MarkDeliveredSetsDeliveryDate(t *testing.T) {
	now := time.Date(2026, 5, 1, 18, 30, 0, 0, time.UTC)
	freezeClock(t, now)

	o := orderIn(ServiceOrderStatusFinished)
	require.NoError(t, o.MarkDelivered())
	require.NotNil(t, o.DeliveryDate)
	assert.Equal(t, now, *o.DeliveryDate)
}

func TestServiceOrder_UpdateStatus(t *testing.T) {
	t.Run("uses the same table", func(t *testing.T) {
		o := orderIn(ServiceOrderStatusApproved)
		require.NoError(t, o.UpdateStatus(ServiceOrderStatusInExecution, ""))
		assert.Equal(t, ServiceOrderStatusInExecution, o.Status)

		err := o.UpdateStatus(ServiceOrderStatusRequested, "")
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	})

	t.Run("unknown status", func(t *testing.T) {
		o := orderIn(ServiceOrderStatusApproved)
		assert.ErrorIs(t, o.UpdateStatus("PARKED", ""), ErrUnknownStatus)
	})

	t.Run("cancel requires reason", func(t *testing.T) {
		o := orderIn(ServiceOrderStatusReceived)
		assert.ErrorIs(t, o.UpdateStatus(ServiceOrderStatusCancelled, ""), ErrMissingReason)
		require.NoError(t, o.UpdateStatus(ServiceOrderStatusCancelled, "duplicate"))
		assert.Equal(t, "duplicate", o.CancellationReason)
	})

	t.Run("delivered stamps date", func(t *testing.T) {
		o := orderIn(ServiceOrderStatusFinished)
		require.NoError(t, o.UpdateStatus(ServiceOrderStatusDelivered, ""))
		assert.NotNil(t, o.DeliveryDate)
	})
}

func TestServiceOrder_CapabilityPredicates(t *testing.T) {
	fresh := NewServiceOrder("os-1", "c", "v", "", ServiceOrderOriginClient)
	assert.False(t, fresh.CanAddBudgetItems())

	for _, status := range allServiceOrderStatuses {
		o := orderIn(status)
		assert.Equalf(t, status == ServiceOrderStatusInDiagnosis, o.CanAddBudgetItems(), "CanAddBudgetItems in %s", status)
		assert.Equalf(t, status == ServiceOrderStatusAwaitingApproval, o.CanBeApprovedOrRejected(), "CanBeApprovedOrRejected in %s", status)
	}
}
