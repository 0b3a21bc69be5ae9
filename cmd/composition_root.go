package cmd

import (
	"context"

	httpadapter "parcelrouting/internal/adapters/in/http"
	"parcelrouting/internal/adapters/out/memory/containerrepo"
	"parcelrouting/internal/adapters/out/memory/departmentrepo"
	"parcelrouting/internal/adapters/out/memory/parcelrepo"
	"parcelrouting/internal/adapters/out/memory/rulerepo"
	"parcelrouting/internal/core/application/usecases/commands"
	"parcelrouting/internal/core/application/usecases/queries"
	"parcelrouting/internal/core/domain/services"
	"parcelrouting/internal/jobs"

	"go.uber.org/zap"
)

// CompositionRoot owns the in-memory stores and builds every handler on top
// of them.
type CompositionRoot struct {
	config Config
	logger *zap.Logger

	parcels     *parcelrepo.Repository
	containers  *containerrepo.Repository
	departments *departmentrepo.Repository
	rules       *rulerepo.Repository

	resolver *services.RuleResolver
	router   *services.ParcelRouter
}

func NewCompositionRoot(config Config, logger *zap.Logger) *CompositionRoot {
	c := &CompositionRoot{
		config:      config,
		logger:      logger,
		parcels:     parcelrepo.NewRepository(),
		containers:  containerrepo.NewRepository(),
		departments: departmentrepo.NewRepository(),
		rules:       rulerepo.NewRepository(),
	}
	c.resolver = services.NewRuleResolver(c.rules)
	c.router = services.NewParcelRouter(c.resolver, c.departments)
	return c
}

// Seed adds the default departments when the configuration asks for it.
func (c *CompositionRoot) Seed(ctx context.Context) error {
	if !c.config.SeedDepartments {
		return nil
	}
	h := c.CreateSeedDepartmentsCommandHandler()
	return h.Handle(ctx, commands.NewSeedDepartmentsCommand())
}

func (c *CompositionRoot) CreateSeedDepartmentsCommandHandler() commands.SeedDepartmentsCommandHandler {
	return commands.NewSeedDepartmentsCommandHandler(c.departments, c.logger)
}

func (c *CompositionRoot) CreateRegisterParcelCommandHandler() commands.RegisterParcelCommandHandler {
	return commands.NewRegisterParcelCommandHandler(c.parcels, c.logger)
}

func (c *CompositionRoot) CreateProcessParcelCommandHandler() commands.ProcessParcelCommandHandler {
	return commands.NewProcessParcelCommandHandler(c.parcels, c.containers, c.router, c.logger)
}

func (c *CompositionRoot) CreateDecideInsuranceCommandHandler() commands.DecideInsuranceCommandHandler {
	return commands.NewDecideInsuranceCommandHandler(c.parcels, c.containers, c.router, c.logger)
}

func (c *CompositionRoot) CreateAdvanceParcelCommandHandler() commands.AdvanceParcelCommandHandler {
	return commands.NewAdvanceParcelCommandHandler(c.parcels, c.containers, c.logger)
}

func (c *CompositionRoot) CreateUpdateParcelMeasurementsCommandHandler() commands.UpdateParcelMeasurementsCommandHandler {
	return commands.NewUpdateParcelMeasurementsCommandHandler(c.parcels, c.containers, c.logger)
}

func (c *CompositionRoot) CreateImportContainerManifestCommandHandler() commands.ImportContainerManifestCommandHandler {
	return commands.NewImportContainerManifestCommandHandler(c.parcels, c.containers, c.logger)
}

func (c *CompositionRoot) CreateAdvanceContainerCommandHandler() commands.AdvanceContainerCommandHandler {
	return commands.NewAdvanceContainerCommandHandler(c.containers, c.logger)
}

func (c *CompositionRoot) CreateDeleteContainerCommandHandler() commands.DeleteContainerCommandHandler {
	return commands.NewDeleteContainerCommandHandler(c.containers, c.logger)
}

func (c *CompositionRoot) CreateRefreshContainerStatusesCommandHandler() commands.RefreshContainerStatusesCommandHandler {
	return commands.NewRefreshContainerStatusesCommandHandler(c.parcels, c.containers, c.logger)
}

func (c *CompositionRoot) CreateCreateDepartmentCommandHandler() commands.CreateDepartmentCommandHandler {
	return commands.NewCreateDepartmentCommandHandler(c.departments, c.logger)
}

func (c *CompositionRoot) CreateChangeDepartmentActivationCommandHandler() commands.ChangeDepartmentActivationCommandHandler {
	return commands.NewChangeDepartmentActivationCommandHandler(c.departments, c.logger)
}

func (c *CompositionRoot) CreateCreateRuleCommandHandler() commands.CreateRuleCommandHandler {
	return commands.NewCreateRuleCommandHandler(c.rules, c.departments, c.logger)
}

func (c *CompositionRoot) CreateUpdateRuleCommandHandler() commands.UpdateRuleCommandHandler {
	return commands.NewUpdateRuleCommandHandler(c.rules, c.departments, c.logger)
}

func (c *CompositionRoot) CreateChangeRuleActivationCommandHandler() commands.ChangeRuleActivationCommandHandler {
	return commands.NewChangeRuleActivationCommandHandler(c.rules, c.logger)
}

func (c *CompositionRoot) CreateDeleteRuleCommandHandler() commands.DeleteRuleCommandHandler {
	return commands.NewDeleteRuleCommandHandler(c.rules, c.logger)
}

func (c *CompositionRoot) CreateClassifyParcelQueryHandler() queries.ClassifyParcelQueryHandler {
	return queries.NewClassifyParcelQueryHandler(c.resolver)
}

// CreateHTTPServer wires every command and query handler into the REST adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		httpadapter.CommandHandlers{
			RegisterParcel:             c.CreateRegisterParcelCommandHandler(),
			ProcessParcel:              c.CreateProcessParcelCommandHandler(),
			DecideInsurance:            c.CreateDecideInsuranceCommandHandler(),
			AdvanceParcel:              c.CreateAdvanceParcelCommandHandler(),
			UpdateParcelMeasurements:   c.CreateUpdateParcelMeasurementsCommandHandler(),
			ImportContainerManifest:    c.CreateImportContainerManifestCommandHandler(),
			AdvanceContainer:           c.CreateAdvanceContainerCommandHandler(),
			DeleteContainer:            c.CreateDeleteContainerCommandHandler(),
			RefreshContainerStatuses:   c.CreateRefreshContainerStatusesCommandHandler(),
			CreateDepartment:           c.CreateCreateDepartmentCommandHandler(),
			ChangeDepartmentActivation: c.CreateChangeDepartmentActivationCommandHandler(),
			CreateRule:                 c.CreateCreateRuleCommandHandler(),
			UpdateRule:                 c.CreateUpdateRuleCommandHandler(),
			ChangeRuleActivation:       c.CreateChangeRuleActivationCommandHandler(),
			DeleteRule:                 c.CreateDeleteRuleCommandHandler(),
		},
		httpadapter.QueryHandlers{
			GetParcel:       queries.NewGetParcelQueryHandler(c.parcels),
			ListParcels:     queries.NewListParcelsQueryHandler(c.parcels),
			GetContainer:    queries.NewGetContainerQueryHandler(c.containers),
			ListContainers:  queries.NewListContainersQueryHandler(c.containers),
			GetDepartment:   queries.NewGetDepartmentQueryHandler(c.departments),
			ListDepartments: queries.NewListDepartmentsQueryHandler(c.departments),
			GetRule:         queries.NewGetRuleQueryHandler(c.rules),
			ListRules:       queries.NewListRulesQueryHandler(c.rules),
			ClassifyParcel:  c.CreateClassifyParcelQueryHandler(),
		},
		c.logger,
	)
}

// CreateJobManager schedules the container status refresh.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	refresh := c.CreateRefreshContainerStatusesCommandHandler()
	return jobs.NewJobManager(&refresh, c.config.ContainerStatusSchedule, c.logger)
}
