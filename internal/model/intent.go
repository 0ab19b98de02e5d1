package model

// Intent labels produced by classification and resolution.
const (
	IntentDefinition   = "definition"
	IntentSafetyAdvice = "safety_advice"
	IntentLocationInfo = "location_info"
	IntentReportUXO    = "report_uxo"
	IntentAskHotline   = "ask_hotline"
	IntentGeneral      = "general"
	IntentUnknown      = "unknown"
	IntentError        = "error"
)

// KnownIntents lists the labels the classifier may return.
var KnownIntents = []string{
	IntentDefinition,
	IntentSafetyAdvice,
	IntentLocationInfo,
	IntentReportUXO,
	IntentAskHotline,
	IntentGeneral,
}

// Entities are the mentions extracted from a question.
type Entities struct {
	Locations   []string `json:"location"`
	ObjectTypes []string `json:"uxo_type"`
	Actions     []string `json:"action"`
}

// EmptyEntities returns Entities with non-nil empty lists.
func EmptyEntities() Entities {
	return Entities{Locations: []string{}, ObjectTypes: []string{}, Actions: []string{}}
}
