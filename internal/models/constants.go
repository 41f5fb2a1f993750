package models

// ProductType distinguishes the agent's current holdings from recommendations.
type ProductType string

const (
	ProductTypeCurrent     ProductType = "current"
	ProductTypeRecommended ProductType = "recommended"
)

// RecordKind tags the source schema an imported row came from.
type RecordKind string

const (
	RecordKindGemel     RecordKind = "gemel"
	RecordKindPension   RecordKind = "pension"
	RecordKindInsurance RecordKind = "insurance"
)

// DefaultTrackName is the general investment track assigned when a
// sub-category cannot be matched. The Hebrew label is the canonical value
// used throughout the taxonomy.
const DefaultTrackName = "מסלול כללי"

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)
