package constant

const (
	VehicleConditionDefault = "used"
	VehicleCategoryDefault  = "cars"

	VehicleMinYear = 1900
)

var (
	VehicleFuelTypes     = []string{"gasoline", "diesel", "electric", "hybrid", "other"}
	VehicleTransmissions = []string{"manual", "automatic", "other"}
	VehicleConditions    = []string{"new", "used", "excellent", "good", "fair", "poor"}
	VehicleCategories    = []string{"cars", "motorcycles", "trucks", "other"}
)

// Multipart upload limits for vehicle images.
const (
	ImageFieldName   = "images"
	ImageMaxFiles    = 10
	ImageMaxFileSize = 5 << 20
	ImageURLPrefix   = "/uploads/"
)
