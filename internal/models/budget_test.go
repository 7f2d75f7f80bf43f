package models_test

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/listingspend/backend/internal/models"
	"github.com/listingspend/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestBudgetDefaultsToDraft() {
	budget := suite.createTestBudget(models.Budget{PropertyAddress: "12 Latrobe Terrace, Paddington"})
	assert.Equal(suite.T(), types.StatusDraft, budget.Status)
}

func (suite *TestSuiteStandard) TestBudgetOverriddenNormalized() {
	price := decimal.NewFromInt(350)

	budget := suite.createTestBudget(models.Budget{
		LineItems: []models.BudgetLineItem{
			// Overridden is out of sync with the override price in both
			// directions, BeforeSave has to fix it
			{ServiceID: uuid.New(), SchedulePrice: decimal.NewFromInt(450), OverridePrice: &price},
			{ServiceID: uuid.New(), SchedulePrice: decimal.NewFromInt(200), Overridden: true},
		},
	})

	assert.True(suite.T(), budget.LineItems[0].Overridden, "Overridden must be true when an override price is set")
	assert.False(suite.T(), budget.LineItems[1].Overridden, "Overridden must be false without an override price")
}

func (suite *TestSuiteStandard) TestBudgetTrimWhitespace() {
	budget := suite.createTestBudget(models.Budget{
		PropertyAddress: " 8 Wool Street\t",
		ClientName:      " Jane Citizen ",
		AgentName:       " Sam Agent ",
		Notes:           " twilight shoot ",
	})

	assert.Equal(suite.T(), "8 Wool Street", budget.PropertyAddress)
	assert.Equal(suite.T(), "Jane Citizen", budget.ClientName)
	assert.Equal(suite.T(), "Sam Agent", budget.AgentName)
	assert.Equal(suite.T(), "twilight shoot", budget.Notes)
}

func (suite *TestSuiteStandard) TestBudgetAfterSave() {
	negative := decimal.NewFromInt(-10)

	tests := []struct {
		name   string
		budget models.Budget
		err    error
	}{
		{
			"invalid status",
			models.Budget{Status: "pending"},
			models.ErrBudgetStatusInvalid,
		},
		{
			"invalid property type",
			models.Budget{Status: types.StatusDraft, PropertyType: "castle"},
			models.ErrPropertyTypeInvalid,
		},
		{
			"invalid property size",
			models.Budget{Status: types.StatusDraft, PropertySize: "gigantic"},
			models.ErrPropertySizeInvalid,
		},
		{
			"invalid tier",
			models.Budget{Status: types.StatusDraft, Tier: "luxury"},
			models.ErrTierInvalid,
		},
		{
			"line item without service",
			models.Budget{
				Status:    types.StatusDraft,
				LineItems: []models.BudgetLineItem{{}},
			},
			models.ErrLineItemServiceIDMissing,
		},
		{
			"negative schedule price",
			models.Budget{
				Status:    types.StatusDraft,
				LineItems: []models.BudgetLineItem{{ServiceID: uuid.New(), SchedulePrice: negative}},
			},
			models.ErrLineItemPriceNegative,
		},
		{
			"negative override price",
			models.Budget{
				Status: types.StatusDraft,
				LineItems: []models.BudgetLineItem{
					{ServiceID: uuid.New(), SchedulePrice: decimal.NewFromInt(100), OverridePrice: &negative, Overridden: true},
				},
			},
			models.ErrLineItemPriceNegative,
		},
		{
			"valid budget without optional fields",
			models.Budget{Status: types.StatusDraft},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.budget.AfterSave(&gorm.DB{})
			assert.Equal(t, tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestBudgetExport() {
	_ = suite.createTestBudget(models.Budget{PropertyAddress: "1 Eagle Street"})
	_ = suite.createTestBudget(models.Budget{PropertyAddress: "2 Eagle Street"})

	raw, err := models.Budget{}.Export()
	require.Nil(suite.T(), err)

	var budgets []models.Budget
	require.Nil(suite.T(), json.Unmarshal(raw, &budgets))
	assert.Len(suite.T(), budgets, 2)
}
