package domain

type EnergyLevel string

const (
	EnergyHigh    EnergyLevel = "high"
	EnergyMedium  EnergyLevel = "medium"
	EnergyLow     EnergyLevel = "low"
	EnergyRestful EnergyLevel = "restful"
)

// ValidEnergyLevels is the canonical set of accepted energy level strings.
var ValidEnergyLevels = map[string]bool{
	"high": true, "medium": true, "low": true, "restful": true,
}

type BlockOrigin string

const (
	OriginManual     BlockOrigin = "manual"
	OriginSuggestion BlockOrigin = "suggestion"
	OriginChain      BlockOrigin = "chain"
	OriginExternal   BlockOrigin = "external"
	OriginOnboarding BlockOrigin = "onboarding"
	OriginAI         BlockOrigin = "ai_generated"
)

type ConfirmState string

const (
	BlockScheduled   ConfirmState = "scheduled"
	BlockUnconfirmed ConfirmState = "unconfirmed"
	BlockConfirmed   ConfirmState = "confirmed"
)

type GoalStatus string

const (
	GoalDraft GoalStatus = "draft"
	GoalOn    GoalStatus = "on"
	GoalOff   GoalStatus = "off"
)

type CadenceKind string

const (
	CadenceDaily    CadenceKind = "daily"
	CadenceWeekly   CadenceKind = "weekly"
	CadenceMonthly  CadenceKind = "monthly"
	CadenceAsNeeded CadenceKind = "as_needed"
)

type GraphNodeType string

const (
	NodeSubgoal  GraphNodeType = "subgoal"
	NodeTask     GraphNodeType = "task"
	NodeNote     GraphNodeType = "note"
	NodeResource GraphNodeType = "resource"
	NodeMetric   GraphNodeType = "metric"
)

// FeedbackTag classifies a single piece of user feedback on a suggestion.
type FeedbackTag string

const (
	TagUseful        FeedbackTag = "useful"
	TagNotRelevant   FeedbackTag = "not_relevant"
	TagWrongTime     FeedbackTag = "wrong_time"
	TagWrongPriority FeedbackTag = "wrong_priority"
)

// Positive reports whether the tag counts toward positive signal.
// Everything that is not useful counts as negative in the aggregate.
func (t FeedbackTag) Positive() bool {
	return t == TagUseful
}
