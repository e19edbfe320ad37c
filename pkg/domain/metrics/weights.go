package metrics

// Category is an illustrative defect category. Category counts are fixed
// shares of the aggregate total, not observed data.
type Category string

const (
	CategoryFunctionality Category = "functionality"
	CategoryUI            Category = "ui"
	CategoryUsability     Category = "usability"
	CategoryValidation    Category = "validation"
)

// CategoryWeight binds a category to its share of the total
type CategoryWeight struct {
	Category Category
	Weight   float64
}

// CategoryWeights is the category split of the defect breakdown. Each share is
// rounded independently, so the counts may miss the total by one.
var CategoryWeights = []CategoryWeight{
	{Category: CategoryFunctionality, Weight: 0.40},
	{Category: CategoryUI, Weight: 0.25},
	{Category: CategoryUsability, Weight: 0.15},
	{Category: CategoryValidation, Weight: 0.20},
}

// ModuleWeight binds a module name to its share of the total
type ModuleWeight struct {
	Module string
	Weight float64
}

// ModuleWeights is the module split. The share of RemainderModule is whatever
// the weighted modules leave, so the distribution always sums to the total.
var ModuleWeights = []ModuleWeight{
	{Module: "Authentication", Weight: 0.30},
	{Module: "Dashboard", Weight: 0.25},
	{Module: "Reports", Weight: 0.20},
	{Module: "Settings", Weight: 0.15},
}

// RemainderModule absorbs the rounding error of ModuleWeights
const RemainderModule = "API"

// Banding thresholds
const (
	// RemarkRatioLowMax and RemarkRatioMediumMax are inclusive upper bounds in percent
	RemarkRatioLowMax    = 30.0
	RemarkRatioMediumMax = 60.0

	// SeverityGaugeLowMax and SeverityGaugeMediumMax are inclusive upper bounds in percent
	SeverityGaugeLowMax    = 33.0
	SeverityGaugeMediumMax = 66.0

	// DensityGaugeMax is the full scale of the density meter, split in three equal bands
	DensityGaugeMax = 12.0

	// SeverityIndexMax is the index of a project whose defects are all high severity
	SeverityIndexMax = 3.0
)

// Defaults used when the dataset does not carry the figures
const (
	DefaultLinesOfCode = 15000
	DefaultRemarkCount = 45

	DefaultAvgTimeToFindHours = 24.5
	DefaultAvgTimeToFixHours  = 18.2
	DefaultMultipleReopens    = 8
)
