package domain

type Phase string

const (
	PhaseDemo        Phase = "demo"
	PhasePrep        Phase = "prep"
	PhaseAcclimation Phase = "acclimation"
	PhaseInstall     Phase = "install"
	PhaseCure        Phase = "cure"
	PhasePunch       Phase = "punch"
	PhaseCloseout    Phase = "closeout"
)

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectScheduled ProjectStatus = "scheduled"
	ProjectOnHold    ProjectStatus = "on-hold"
	ProjectCompleted ProjectStatus = "completed"
)

type DeliveryStatus string

const (
	DeliveryOrdered   DeliveryStatus = "ordered"
	DeliveryInTransit DeliveryStatus = "in-transit"
	DeliveryDelivered DeliveryStatus = "delivered"
)

type ScheduleStatus string

const (
	ScheduleScheduled  ScheduleStatus = "scheduled"
	ScheduleInProgress ScheduleStatus = "in-progress"
	ScheduleCompleted  ScheduleStatus = "completed"
	ScheduleCancelled  ScheduleStatus = "cancelled"
)

type BlockerType string

const (
	BlockerDependency BlockerType = "dependency"
	BlockerMaterial   BlockerType = "material"
	BlockerWeather    BlockerType = "weather"
	BlockerCrew       BlockerType = "crew"
	BlockerInspection BlockerType = "inspection"
	BlockerOther      BlockerType = "other"
)

type BlockerPriority string

const (
	PriorityHigh   BlockerPriority = "high"
	PriorityMedium BlockerPriority = "medium"
	PriorityLow    BlockerPriority = "low"
)

// PlanPriority ranks daily plan items by due-date urgency.
type PlanPriority string

const (
	PlanHigh   PlanPriority = "high"
	PlanMedium PlanPriority = "medium"
	PlanLow    PlanPriority = "low"
)

// ValidBlockerTypes is the canonical set of accepted blocker type strings.
var ValidBlockerTypes = map[string]bool{
	"dependency": true, "material": true, "weather": true,
	"crew": true, "inspection": true, "other": true,
}

// ValidScheduleStatuses is the canonical set of accepted schedule entry statuses.
var ValidScheduleStatuses = map[string]bool{
	"scheduled": true, "in-progress": true, "completed": true, "cancelled": true,
}
