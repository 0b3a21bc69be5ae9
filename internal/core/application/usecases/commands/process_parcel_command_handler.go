package commands

import (
	"context"

	"parcelrouting/internal/core/domain/model/parcel"
	"parcelrouting/internal/core/domain/services"
	"parcelrouting/internal/core/ports"

	"go.uber.org/zap"
)

// ProcessParcelCommandHandler routes a Pending parcel.
//
// Parcels valued over the insurance threshold end in InsuranceApprovalRequired
// with the value department assigned; every other parcel ends in
// AssignedToDepartment with its weight department assigned.
//
// Example:
//
//	handler := NewProcessParcelCommandHandler(parcelRepo, containerRepo, router, logger)
//	cmd, _ := NewProcessParcelCommand(parcelID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("processing failed: %w", err)
//	}
type ProcessParcelCommandHandler struct {
	parcels    ports.ParcelRepository
	containers ports.ContainerRepository
	router     *services.ParcelRouter
	logger     *zap.Logger
}

// NewProcessParcelCommandHandler creates a handler for parcel processing.
func NewProcessParcelCommandHandler(
	parcels ports.ParcelRepository,
	containers ports.ContainerRepository,
	router *services.ParcelRouter,
	logger *zap.Logger,
) ProcessParcelCommandHandler {
	return ProcessParcelCommandHandler{
		parcels:    parcels,
		containers: containers,
		router:     router,
		logger:     logger.Named("process_parcel"),
	}
}

// Handle processes the parcel. The stored parcel is unchanged when routing fails.
func (h *ProcessParcelCommandHandler) Handle(_ context.Context, cmd ProcessParcelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var decision services.RoutingDecision
	p, err := modifyParcel(h.parcels, h.containers, cmd.ParcelID(), func(p *parcel.Parcel) error {
		var routeErr error
		decision, routeErr = h.router.Process(p)
		return routeErr
	})
	if err != nil {
		return err
	}

	logDecision(h.logger, p, decision)
	return nil
}

func logDecision(logger *zap.Logger, p *parcel.Parcel, decision services.RoutingDecision) {
	for _, res := range decision.Resolutions {
		fields := []zap.Field{
			zap.Stringer("parcel_id", p.ID()),
			zap.Stringer("rule_type", res.RuleType),
			zap.Stringer("measurement", res.Measurement),
			zap.String("department", res.Department),
			zap.String("source", string(res.Source)),
		}
		if res.RuleID != nil {
			fields = append(fields, zap.Stringer("rule_id", *res.RuleID))
		}
		if res.Ambiguous {
			logger.Warn("several active rules matched, tie-break applied",
				append(fields, zap.Int("candidates", res.Candidates))...)
			continue
		}
		logger.Debug("measurement resolved", fields...)
	}

	logger.Info("parcel routed",
		zap.Stringer("parcel_id", p.ID()),
		zap.Stringer("status", decision.Status),
		zap.Strings("assigned", decision.Assigned),
	)
}
