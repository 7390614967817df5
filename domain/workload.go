package domain

type WorkloadStatus string

const (
	WorkloadOverworked    WorkloadStatus = "overworked"
	WorkloadBalanced      WorkloadStatus = "balanced"
	WorkloadUnderutilized WorkloadStatus = "underutilized"
)

// WorkloadAnalysis compares the headcount assigned to the workflow with the
// headcount its workload implies.
type WorkloadAnalysis struct {
	InputFTE          float64        `json:"inputFTE"`
	RequiredFTE       float64        `json:"requiredFTE"`
	UtilizationGap    float64        `json:"utilizationGap"` // percent of RequiredFTE
	Status            WorkloadStatus `json:"status"`
	MonthlyWorkload   float64        `json:"monthlyWorkload"`
	AvgDailyWorkload  float64        `json:"avgDailyWorkload"`
	AnnualErrorCount  float64        `json:"annualErrorCount"`
	MonthlyErrorCount float64        `json:"monthlyErrorCount"`
	AnnualErrorCost   float64        `json:"annualErrorCost"`
}
