package types

// ServiceCategory groups catalogue services for dashboard rollups.
//
// swagger:enum ServiceCategory
type ServiceCategory string

const (
	CategoryPhotography    ServiceCategory = "photography"
	CategoryFloorPlans     ServiceCategory = "floorPlans"
	CategoryAerial         ServiceCategory = "aerial"
	CategoryVideo          ServiceCategory = "video"
	CategoryVirtualStaging ServiceCategory = "virtualStaging"
	CategoryInternet       ServiceCategory = "internet"
	CategoryLegal          ServiceCategory = "legal"
	CategoryPrint          ServiceCategory = "print"
	CategorySignage        ServiceCategory = "signage"
	CategoryOther          ServiceCategory = "other"
)

// ServiceCategories returns all defined service categories.
func ServiceCategories() []ServiceCategory {
	return []ServiceCategory{
		CategoryPhotography,
		CategoryFloorPlans,
		CategoryAerial,
		CategoryVideo,
		CategoryVirtualStaging,
		CategoryInternet,
		CategoryLegal,
		CategoryPrint,
		CategorySignage,
		CategoryOther,
	}
}

// Valid reports whether the category is one of the defined categories.
func (c ServiceCategory) Valid() bool {
	for _, category := range ServiceCategories() {
		if c == category {
			return true
		}
	}

	return false
}
