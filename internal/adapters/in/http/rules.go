package http

import (
	"errors"
	"net/http"

	"parcelrouting/internal/adapters/in/http/api"
	"parcelrouting/internal/core/application/usecases/commands"
	"parcelrouting/internal/core/application/usecases/queries"
	"parcelrouting/internal/core/domain/model/kernel"
	"parcelrouting/internal/core/domain/model/rule"
	"parcelrouting/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListRules handles GET /api/v1/rules. A name parameter turns the listing
// into a lookup returning zero or one rule.
func (s *Server) ListRules(ctx echo.Context, params api.ListRulesParams) error {
	if params.Name != nil {
		return s.lookupRule(ctx, *params.Name)
	}

	filter := queries.RuleFilter{ActiveOnly: params.Active != nil && *params.Active}
	if params.Type != nil {
		ruleType, err := rule.ParseType(*params.Type)
		if err != nil {
			return s.fail(ctx, err)
		}
		filter.Type = ruleType
	}

	query, err := queries.NewListRulesQuery(filter)
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.queries.ListRules.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toRules(views))
}

func (s *Server) lookupRule(ctx echo.Context, name string) error {
	query, err := queries.NewGetRuleByNameQuery(name)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, err := s.queries.GetRule.Handle(ctx.Request().Context(), query)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusOK, []api.Rule{})
	case err != nil:
		return s.fail(ctx, err)
	default:
		return ctx.JSON(http.StatusOK, []api.Rule{toRule(view)})
	}
}

// CreateRule handles POST /api/v1/rules.
func (s *Server) CreateRule(ctx echo.Context) error {
	var body api.RuleDefinition
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	def, err := toDefinition(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateRuleCommand(id, def)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.CreateRule.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondRule(ctx, http.StatusCreated, id)
}

// GetRule handles GET /api/v1/rules/{ruleId}.
func (s *Server) GetRule(ctx echo.Context, ruleID openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(ruleID)
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.respondRule(ctx, http.StatusOK, id)
}

// UpdateRule handles PUT /api/v1/rules/{ruleId}.
func (s *Server) UpdateRule(ctx echo.Context, ruleID openapi_types.UUID) error {
	var body api.RuleDefinition
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(ruleID)
	if err != nil {
		return s.fail(ctx, err)
	}
	def, err := toDefinition(body)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateRuleCommand(id, def)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.UpdateRule.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondRule(ctx, http.StatusOK, id)
}

// DeleteRule handles DELETE /api/v1/rules/{ruleId}.
func (s *Server) DeleteRule(ctx echo.Context, ruleID openapi_types.UUID) error {
	id, err := kernel.UUIDFromGoogle(ruleID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeleteRuleCommand(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.DeleteRule.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ChangeRuleActivation handles PUT /api/v1/rules/{ruleId}/activation.
func (s *Server) ChangeRuleActivation(ctx echo.Context, ruleID openapi_types.UUID) error {
	var body api.Activation
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromGoogle(ruleID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeRuleActivationCommand(id, *body.Active)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.ChangeRuleActivation.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return s.respondRule(ctx, http.StatusOK, id)
}

func (s *Server) respondRule(ctx echo.Context, code int, id kernel.UUID) error {
	query, err := queries.NewGetRuleQuery(id)
	if err != nil {
		return s.fail(ctx, err)
	}
	view, err := s.queries.GetRule.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(code, toRule(view))
}

func toDefinition(body api.RuleDefinition) (rule.Definition, error) {
	ruleType, err := rule.ParseType(body.Type)
	if err != nil {
		return rule.Definition{}, err
	}
	return rule.Definition{
		Name:             body.Name,
		Description:      body.Description,
		Type:             ruleType,
		Minimum:          toDecimal(body.Minimum),
		Maximum:          toDecimalPtr(body.Maximum),
		TargetDepartment: body.TargetDepartment,
	}, nil
}
