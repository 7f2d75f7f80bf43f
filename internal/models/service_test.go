package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/listingspend/backend/internal/models"
	"github.com/listingspend/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) TestServiceVariantIDsAssigned() {
	service := suite.createTestService(models.Service{
		Name: "Professional Photography",
		Variants: []models.Variant{
			{Name: "Standard", Price: decimal.NewFromInt(450)},
			{Name: "Premium", Price: decimal.NewFromInt(650)},
		},
	})

	require.Len(suite.T(), service.Variants, 2)
	assert.NotEqual(suite.T(), uuid.Nil, service.Variants[0].ID, "Variant ID was not assigned")
	assert.NotEqual(suite.T(), uuid.Nil, service.Variants[1].ID, "Variant ID was not assigned")
	assert.NotEqual(suite.T(), service.Variants[0].ID, service.Variants[1].ID, "Variant IDs must be unique")
}

func (suite *TestSuiteStandard) TestServiceVariantsRoundtrip() {
	id := uuid.New()

	created := suite.createTestService(models.Service{
		Name: "Floor Plan",
		Variants: []models.Variant{
			{ID: id, Name: "2D", Price: decimal.NewFromInt(120), GSTInclusive: true},
		},
		Selector: &models.VariantSelector{
			By:      models.SelectByPropertySize,
			Choices: map[string]uuid.UUID{string(types.SizeSmall): id},
		},
	})

	var service models.Service
	require.Nil(suite.T(), models.DB.First(&service, created.ID).Error)

	require.Len(suite.T(), service.Variants, 1)
	assert.Equal(suite.T(), "2D", service.Variants[0].Name)
	assert.True(suite.T(), decimal.NewFromInt(120).Equal(service.Variants[0].Price))

	require.NotNil(suite.T(), service.Selector)
	assert.Equal(suite.T(), models.SelectByPropertySize, service.Selector.By)
	assert.Equal(suite.T(), id, service.Selector.Choices[string(types.SizeSmall)])
}

func (suite *TestSuiteStandard) TestServiceAfterSave() {
	variantID := uuid.New()

	tests := []struct {
		name    string
		service models.Service
		err     error
	}{
		{
			"invalid category",
			models.Service{Category: "catering"},
			models.ErrServiceCategoryInvalid,
		},
		{
			"negative base price",
			models.Service{Category: types.CategoryPrint, BasePrice: decimal.NewFromInt(-1)},
			models.ErrPriceNegative,
		},
		{
			"negative variant price",
			models.Service{
				Category: types.CategoryPrint,
				Variants: []models.Variant{{ID: variantID, Name: "A4", Price: decimal.NewFromInt(-5)}},
			},
			models.ErrPriceNegative,
		},
		{
			"selector without variants",
			models.Service{
				Category: types.CategoryVideo,
				Selector: &models.VariantSelector{By: models.SelectByPropertySize},
			},
			models.ErrServiceVariantsMissing,
		},
		{
			"selector choice references no variant",
			models.Service{
				Category: types.CategoryVideo,
				Variants: []models.Variant{{ID: variantID, Name: "Walkthrough", Price: decimal.NewFromInt(900)}},
				Selector: &models.VariantSelector{
					By:      models.SelectByPropertySize,
					Choices: map[string]uuid.UUID{string(types.SizeLarge): uuid.New()},
				},
			},
			models.ErrSelectorChoiceInvalid,
		},
		{
			"valid service",
			models.Service{
				Category: types.CategoryVideo,
				Variants: []models.Variant{{ID: variantID, Name: "Walkthrough", Price: decimal.NewFromInt(900)}},
				Selector: &models.VariantSelector{
					By:      models.SelectByPropertySize,
					Choices: map[string]uuid.UUID{string(types.SizeLarge): variantID},
				},
			},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.service.AfterSave(&gorm.DB{})
			assert.Equal(t, tt.err, err)
		})
	}
}

func (suite *TestSuiteStandard) TestServiceVariantLookup() {
	id := uuid.New()

	service := models.Service{
		Variants: []models.Variant{{ID: id, Name: "Twilight", Price: decimal.NewFromInt(250)}},
	}

	require.NotNil(suite.T(), service.Variant(id))
	assert.Equal(suite.T(), "Twilight", service.Variant(id).Name)
	assert.Nil(suite.T(), service.Variant(uuid.New()), "Unknown variant IDs must resolve to nil")
}
