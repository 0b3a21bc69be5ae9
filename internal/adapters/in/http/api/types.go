package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Address struct {
	Street       string `json:"street" validate:"required"`
	Number       string `json:"number" validate:"required"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postalCode" validate:"required"`
	Country      string `json:"country,omitempty"`
}

type NewParcel struct {
	RecipientName string   `json:"recipientName" validate:"required"`
	Address       *Address `json:"address" validate:"required"`
	Weight        float64  `json:"weight" validate:"gt=0"`
	Value         float64  `json:"value" validate:"gte=0"`
}

type Measurements struct {
	Weight float64 `json:"weight" validate:"gt=0"`
	Value  float64 `json:"value" validate:"gte=0"`
}

type InsuranceDecision struct {
	Approved *bool `json:"approved" validate:"required"`
}

type ParcelStatusChange struct {
	Status string `json:"status" validate:"required,oneof=Processed Shipped Delivered Failed"`
}

type Parcel struct {
	ID                openapi_types.UUID `json:"id"`
	RecipientName     string             `json:"recipientName"`
	Address           Address            `json:"address"`
	Weight            float64            `json:"weight"`
	Value             float64            `json:"value"`
	Status            string             `json:"status"`
	RequiresInsurance bool               `json:"requiresInsurance"`
	Departments       []string           `json:"departments"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

type ManifestParcel struct {
	RecipientName string   `json:"recipientName" validate:"required"`
	Address       *Address `json:"address" validate:"required"`
	Weight        float64  `json:"weight" validate:"gt=0"`
	Value         float64  `json:"value" validate:"gte=0"`
}

type NewContainer struct {
	ContainerID  string             `json:"containerId" validate:"required"`
	ShippingDate openapi_types.Date `json:"shippingDate"`
	Parcels      []ManifestParcel   `json:"parcels" validate:"dive"`
}

type ContainerStatusChange struct {
	Status string `json:"status" validate:"required,oneof=Pending Processing Processed Shipped Delivered Failed"`
}

type Container struct {
	ID           openapi_types.UUID `json:"id"`
	ContainerID  string             `json:"containerId"`
	ShippingDate openapi_types.Date `json:"shippingDate"`
	Status       string             `json:"status"`
	Parcels      []Parcel           `json:"parcels"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

type NewDepartment struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

type Department struct {
	ID          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Active      bool               `json:"active"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type Activation struct {
	Active *bool `json:"active" validate:"required"`
}

type RuleDefinition struct {
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description,omitempty"`
	Type             string   `json:"type" validate:"required,oneof=Weight Value"`
	Minimum          float64  `json:"minimum" validate:"gte=0"`
	Maximum          *float64 `json:"maximum,omitempty" validate:"omitempty,gtefield=Minimum"`
	TargetDepartment string   `json:"targetDepartment" validate:"required"`
}

type Rule struct {
	ID               openapi_types.UUID `json:"id"`
	Name             string             `json:"name"`
	Description      string             `json:"description"`
	Type             string             `json:"type"`
	Minimum          float64            `json:"minimum"`
	Maximum          *float64           `json:"maximum,omitempty"`
	TargetDepartment string             `json:"targetDepartment"`
	Active           bool               `json:"active"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

type Resolution struct {
	Measurement float64             `json:"measurement"`
	Department  *string             `json:"department,omitempty"`
	Source      string              `json:"source"`
	RuleID      *openapi_types.UUID `json:"ruleId,omitempty"`
	Ambiguous   bool                `json:"ambiguous"`
	Candidates  int                 `json:"candidates"`
}

type Classification struct {
	Weight            Resolution `json:"weight"`
	Value             Resolution `json:"value"`
	RequiresInsurance bool       `json:"requiresInsurance"`
	Departments       []string   `json:"departments"`
}

type ClassifyParcelParams struct {
	Weight float64 `form:"weight" json:"weight"`
	Value  float64 `form:"value" json:"value"`
}

type ListParcelsParams struct {
	Status            *string  `form:"status,omitempty" json:"status,omitempty"`
	MinWeight         *float64 `form:"minWeight,omitempty" json:"minWeight,omitempty"`
	MaxWeight         *float64 `form:"maxWeight,omitempty" json:"maxWeight,omitempty"`
	MinValue          *float64 `form:"minValue,omitempty" json:"minValue,omitempty"`
	MaxValue          *float64 `form:"maxValue,omitempty" json:"maxValue,omitempty"`
	RequiresInsurance *bool    `form:"requiresInsurance,omitempty" json:"requiresInsurance,omitempty"`
}

type ListContainersParams struct {
	ContainerID *string             `form:"containerId,omitempty" json:"containerId,omitempty"`
	Status      *string             `form:"status,omitempty" json:"status,omitempty"`
	From        *openapi_types.Date `form:"from,omitempty" json:"from,omitempty"`
	To          *openapi_types.Date `form:"to,omitempty" json:"to,omitempty"`
}

type ListDepartmentsParams struct {
	Active *bool `form:"active,omitempty" json:"active,omitempty"`
}

type ListRulesParams struct {
	Active *bool   `form:"active,omitempty" json:"active,omitempty"`
	Type   *string `form:"type,omitempty" json:"type,omitempty"`
	Name   *string `form:"name,omitempty" json:"name,omitempty"`
}
