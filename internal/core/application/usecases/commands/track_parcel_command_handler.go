package commands

import (
	"context"

	"github.com/kikis202/spot/internal/core/domain/model/parcel"
	"github.com/kikis202/spot/internal/pkg/metrics"
)

// TrackParcelCommandHandler subscribes a user to a parcel's status updates.
type TrackParcelCommandHandler struct {
	uowFactory TrackingUoWFactory
	metrics    *metrics.Metrics
}

// NewTrackParcelCommandHandler creates a handler for tracking subscriptions.
func NewTrackParcelCommandHandler(uowFactory TrackingUoWFactory, m *metrics.Metrics) TrackParcelCommandHandler {
	return TrackParcelCommandHandler{
		uowFactory: uowFactory,
		metrics:    m,
	}
}

// Handle processes the subscription request.
//
// The tracking number must resolve to an existing parcel; tracking an already
// tracked parcel surfaces as a conflict error from the storage layer's unique
// (user, parcel) constraint rather than a read-then-write check, so two
// concurrent requests cannot both succeed.
func (h TrackParcelCommandHandler) Handle(ctx context.Context, cmd TrackParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ParcelRepository().GetByTrackingNumber(ctx, cmd.TrackingNumber())
	if err != nil {
		return err
	}

	subscription, err := parcel.NewSubscription(cmd.UserID(), p.ID())
	if err != nil {
		return err
	}

	if err = uow.SubscriptionRepository().Add(ctx, subscription); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.TrackingSubscription.WithLabelValues("subscribe").Inc()
	return nil
}

// StopTrackingCommandHandler removes a user's tracking subscription.
type StopTrackingCommandHandler struct {
	uowFactory TrackingUoWFactory
	metrics    *metrics.Metrics
}

// NewStopTrackingCommandHandler creates a handler for subscription removal.
func NewStopTrackingCommandHandler(uowFactory TrackingUoWFactory, m *metrics.Metrics) StopTrackingCommandHandler {
	return StopTrackingCommandHandler{
		uowFactory: uowFactory,
		metrics:    m,
	}
}

// Handle processes the unsubscription request. Removing a subscription that
// does not exist surfaces as an object-not-found error.
func (h StopTrackingCommandHandler) Handle(ctx context.Context, cmd StopTrackingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	p, err := uow.ParcelRepository().GetByTrackingNumber(ctx, cmd.TrackingNumber())
	if err != nil {
		return err
	}

	if err = uow.SubscriptionRepository().Remove(ctx, cmd.UserID(), p.ID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.TrackingSubscription.WithLabelValues("unsubscribe").Inc()
	return nil
}
