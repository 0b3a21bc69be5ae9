package http

import (
	"net/http"

	"parcelrouting/internal/adapters/in/http/api"
	"parcelrouting/internal/core/application/usecases/commands"
	"parcelrouting/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// CommandHandlers groups the handlers of state-changing operations.
type CommandHandlers struct {
	RegisterParcel             commands.RegisterParcelCommandHandler
	ProcessParcel              commands.ProcessParcelCommandHandler
	DecideInsurance            commands.DecideInsuranceCommandHandler
	AdvanceParcel              commands.AdvanceParcelCommandHandler
	UpdateParcelMeasurements   commands.UpdateParcelMeasurementsCommandHandler
	ImportContainerManifest    commands.ImportContainerManifestCommandHandler
	AdvanceContainer           commands.AdvanceContainerCommandHandler
	DeleteContainer            commands.DeleteContainerCommandHandler
	RefreshContainerStatuses   commands.RefreshContainerStatusesCommandHandler
	CreateDepartment           commands.CreateDepartmentCommandHandler
	ChangeDepartmentActivation commands.ChangeDepartmentActivationCommandHandler
	CreateRule                 commands.CreateRuleCommandHandler
	UpdateRule                 commands.UpdateRuleCommandHandler
	ChangeRuleActivation       commands.ChangeRuleActivationCommandHandler
	DeleteRule                 commands.DeleteRuleCommandHandler
}

// QueryHandlers groups the handlers of read operations.
type QueryHandlers struct {
	GetParcel       queries.GetParcelQueryHandler
	ListParcels     queries.ListParcelsQueryHandler
	GetContainer    queries.GetContainerQueryHandler
	ListContainers  queries.ListContainersQueryHandler
	GetDepartment   queries.GetDepartmentQueryHandler
	ListDepartments queries.ListDepartmentsQueryHandler
	GetRule         queries.GetRuleQueryHandler
	ListRules       queries.ListRulesQueryHandler
	ClassifyParcel  queries.ClassifyParcelQueryHandler
}

// Server implements api.ServerInterface on top of the use cases. Every
// successful write answers with the read model of the written entity.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	logger   *zap.Logger
}

var _ api.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(commandHandlers CommandHandlers, queryHandlers QueryHandlers, logger *zap.Logger) *Server {
	return &Server{
		commands: commandHandlers,
		queries:  queryHandlers,
		logger:   logger.Named("http"),
	}
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}
