package domain

type ProgramStatus string

const (
	ProgramPlanning  ProgramStatus = "planning"
	ProgramActive    ProgramStatus = "active"
	ProgramOnHold    ProgramStatus = "on-hold"
	ProgramCompleted ProgramStatus = "completed"
	ProgramCancelled ProgramStatus = "cancelled"
)

type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "not-started"
	ProjectInProgress ProjectStatus = "in-progress"
	ProjectOnHold     ProjectStatus = "on-hold"
	ProjectCompleted  ProjectStatus = "completed"
	ProjectCancelled  ProjectStatus = "cancelled"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskReview     TaskStatus = "review"
	TaskCompleted  TaskStatus = "completed"
	TaskBlocked    TaskStatus = "blocked"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

type DependencyType string

const (
	FinishToStart  DependencyType = "finish-to-start"
	StartToStart   DependencyType = "start-to-start"
	FinishToFinish DependencyType = "finish-to-finish"
	StartToFinish  DependencyType = "start-to-finish"
)

type RiskRating string

const (
	RatingLow    RiskRating = "low"
	RatingMedium RiskRating = "medium"
	RatingHigh   RiskRating = "high"
)

type RiskStatus string

const (
	RiskOpen      RiskStatus = "open"
	RiskMitigated RiskStatus = "mitigated"
	RiskClosed    RiskStatus = "closed"
)

type MilestoneStatus string

const (
	MilestonePending   MilestoneStatus = "pending"
	MilestoneCompleted MilestoneStatus = "completed"
	MilestoneOverdue   MilestoneStatus = "overdue"
)

// ValidProgramStatuses is the canonical set of accepted program status strings.
var ValidProgramStatuses = map[string]bool{
	"planning": true, "active": true, "on-hold": true,
	"completed": true, "cancelled": true,
}

// ValidProjectStatuses is the canonical set of accepted project status strings.
var ValidProjectStatuses = map[string]bool{
	"not-started": true, "in-progress": true, "on-hold": true,
	"completed": true, "cancelled": true,
}

// ValidTaskStatuses is the canonical set of accepted task status strings.
var ValidTaskStatuses = map[string]bool{
	"todo": true, "in-progress": true, "review": true,
	"completed": true, "blocked": true,
}

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"low": true, "medium": true, "high": true, "critical": true,
}

// ValidRiskStatuses is the canonical set of accepted risk status strings.
var ValidRiskStatuses = map[string]bool{
	"open": true, "mitigated": true, "closed": true,
}

// ValidRiskRatings is the canonical set of accepted risk rating strings.
var ValidRiskRatings = map[string]bool{
	"low": true, "medium": true, "high": true,
}

// ValidMilestoneStatuses is the canonical set of accepted milestone status strings.
var ValidMilestoneStatuses = map[string]bool{
	"pending": true, "completed": true, "overdue": true,
}
