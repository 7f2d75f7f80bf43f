package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/listingspend/backend/internal/models"
	"github.com/listingspend/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// The property type, size and tier combination carries no uniqueness
// constraint, imports may duplicate schedules.
func (suite *TestSuiteStandard) TestScheduleDuplicateKeyAllowed() {
	first := suite.createTestSchedule(models.Schedule{
		Name:         "House Standard",
		PropertyType: types.PropertyHouse,
		PropertySize: types.SizeMedium,
		Tier:         types.TierStandard,
	})

	second := suite.createTestSchedule(models.Schedule{
		Name:         "House Standard Copy",
		PropertyType: types.PropertyHouse,
		PropertySize: types.SizeMedium,
		Tier:         types.TierStandard,
	})

	require.NotEqual(suite.T(), first.ID, second.ID)
}

func (suite *TestSuiteStandard) TestScheduleLineItemsRoundtrip() {
	serviceID := uuid.New()
	variantID := uuid.New()

	created := suite.createTestSchedule(models.Schedule{
		Name: "Apartment Basic",
		LineItems: []models.ScheduleLineItem{
			{ServiceID: serviceID, VariantID: &variantID, Selected: true},
			{ServiceID: uuid.New()},
		},
	})

	var schedule models.Schedule
	require.Nil(suite.T(), models.DB.First(&schedule, created.ID).Error)

	require.Len(suite.T(), schedule.LineItems, 2)
	assert.Equal(suite.T(), serviceID, schedule.LineItems[0].ServiceID)
	require.NotNil(suite.T(), schedule.LineItems[0].VariantID)
	assert.Equal(suite.T(), variantID, *schedule.LineItems[0].VariantID)
	assert.True(suite.T(), schedule.LineItems[0].Selected)
	assert.False(suite.T(), schedule.LineItems[1].Selected)
}

func (suite *TestSuiteStandard) TestScheduleAfterSave() {
	tests := []struct {
		name     string
		schedule models.Schedule
		err      error
	}{
		{
			"invalid property type",
			models.Schedule{PropertyType: "castle", PropertySize: types.SizeSmall, Tier: types.TierBasic},
			models.ErrPropertyTypeInvalid,
		},
		{
			"invalid property size",
			models.Schedule{PropertyType: types.PropertyLand, PropertySize: "tiny", Tier: types.TierBasic},
			models.ErrPropertySizeInvalid,
		},
		{
			"invalid tier",
			models.Schedule{PropertyType: types.PropertyLand, PropertySize: types.SizeSmall, Tier: "luxury"},
			models.ErrTierInvalid,
		},
		{
			"line item without service",
			models.Schedule{
				PropertyType: types.PropertyLand,
				PropertySize: types.SizeSmall,
				Tier:         types.TierBasic,
				LineItems:    []models.ScheduleLineItem{{}},
			},
			models.ErrLineItemServiceIDMissing,
		},
		{
			"valid schedule",
			models.Schedule{
				PropertyType: types.PropertyLand,
				PropertySize: types.SizeSmall,
				Tier:         types.TierBasic,
				LineItems:    []models.ScheduleLineItem{{ServiceID: uuid.New()}},
			},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := tt.schedule.AfterSave(&gorm.DB{})
			assert.Equal(t, tt.err, err)
		})
	}
}
