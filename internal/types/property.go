package types

// PropertyType classifies the property a budget is drawn up for.
//
// swagger:enum PropertyType
type PropertyType string

const (
	PropertyHouse     PropertyType = "house"
	PropertyApartment PropertyType = "apartment"
	PropertyTownhouse PropertyType = "townhouse"
	PropertyLand      PropertyType = "land"
	PropertyRural     PropertyType = "rural"
)

// PropertyTypes returns all defined property types.
func PropertyTypes() []PropertyType {
	return []PropertyType{PropertyHouse, PropertyApartment, PropertyTownhouse, PropertyLand, PropertyRural}
}

// Valid reports whether the property type is one of the defined types.
func (t PropertyType) Valid() bool {
	switch t {
	case PropertyHouse, PropertyApartment, PropertyTownhouse, PropertyLand, PropertyRural:
		return true
	}

	return false
}

// PropertySize is the size band of a property. Variant selectors can resolve
// a service variant from it.
//
// swagger:enum PropertySize
type PropertySize string

const (
	SizeSmall      PropertySize = "small"
	SizeMedium     PropertySize = "medium"
	SizeLarge      PropertySize = "large"
	SizeExtraLarge PropertySize = "extraLarge"
)

// PropertySizes returns all defined property sizes.
func PropertySizes() []PropertySize {
	return []PropertySize{SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge}
}

// Valid reports whether the size is one of the defined sizes.
func (s PropertySize) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge:
		return true
	}

	return false
}
