package types

// Tier is one of the three severity buckets of defects
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// Tiers lists the severity tiers from most to least severe
var Tiers = []Tier{TierHigh, TierMedium, TierLow}

// String returns the string representation of the tier
func (t Tier) String() string {
	return string(t)
}

// IsValid checks if the tier is valid
func (t Tier) IsValid() bool {
	switch t {
	case TierHigh, TierMedium, TierLow:
		return true
	default:
		return false
	}
}

// Weight returns the severity index weight of the tier
func (t Tier) Weight() int {
	switch t {
	case TierHigh:
		return 3
	case TierMedium:
		return 2
	case TierLow:
		return 1
	default:
		return 0
	}
}

// Risk represents the overall risk rating of a project
type Risk string

const (
	RiskHigh   Risk = "high"
	RiskMedium Risk = "medium"
	RiskLow    Risk = "low"
)

// String returns the string representation of the risk
func (r Risk) String() string {
	return string(r)
}

// IsValid checks if the risk is valid
func (r Risk) IsValid() bool {
	switch r {
	case RiskHigh, RiskMedium, RiskLow:
		return true
	default:
		return false
	}
}

// Label returns the display label shown on project cards
func (r Risk) Label() string {
	switch r {
	case RiskHigh:
		return "High Risk"
	case RiskMedium:
		return "Medium Risk"
	case RiskLow:
		return "Low Risk"
	default:
		return "Unknown Risk"
	}
}

// NotificationType represents the kind of a notification
type NotificationType string

const (
	NotificationTypeInfo    NotificationType = "info"
	NotificationTypeWarning NotificationType = "warning"
	NotificationTypeError   NotificationType = "error"
	NotificationTypeSuccess NotificationType = "success"
)

// String returns the string representation of the notification type
func (t NotificationType) String() string {
	return string(t)
}

// IsValid checks if the notification type is valid
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeInfo, NotificationTypeWarning, NotificationTypeError, NotificationTypeSuccess:
		return true
	default:
		return false
	}
}

// DefectStatus is a lifecycle status counted inside a severity tier
type DefectStatus string

const (
	DefectStatusNew       DefectStatus = "new"
	DefectStatusFixed     DefectStatus = "fixed"
	DefectStatusClosed    DefectStatus = "closed"
	DefectStatusOpen      DefectStatus = "open"
	DefectStatusReopen    DefectStatus = "reopen"
	DefectStatusReject    DefectStatus = "reject"
	DefectStatusDuplicate DefectStatus = "duplicate"
)

// DefectStatuses lists statuses in the order they are charted
var DefectStatuses = []DefectStatus{
	DefectStatusNew,
	DefectStatusFixed,
	DefectStatusClosed,
	DefectStatusOpen,
	DefectStatusReopen,
	DefectStatusReject,
	DefectStatusDuplicate,
}

// String returns the string representation of the status
func (s DefectStatus) String() string {
	return string(s)
}

// Label returns the chart legend label
func (s DefectStatus) Label() string {
	switch s {
	case DefectStatusNew:
		return "NEW"
	case DefectStatusFixed:
		return "FIXED"
	case DefectStatusClosed:
		return "CLOSED"
	case DefectStatusOpen:
		return "OPEN"
	case DefectStatusReopen:
		return "REOPEN"
	case DefectStatusReject:
		return "REJECT"
	case DefectStatusDuplicate:
		return "DUPLICATE"
	default:
		return "UNKNOWN"
	}
}
