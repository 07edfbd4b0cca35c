// Package entity contains the core business objects of the project.
package entity

import "time"

// Metrics is the aggregate patrol performance of a set of guards over one time window.
type Metrics struct {
	CompletionRate         float64 `json:"completionRate"`
	OnTimeRate             float64 `json:"onTimeRate"`
	QualityRate            float64 `json:"qualityRate"`
	EfficiencyScore        float64 `json:"efficiencyScore"`
	AvgResponseTimeSeconds int     `json:"avgResponseTimeSeconds"`
	TotalAssignments       int     `json:"totalAssignments"`
	CompletedAssignments   int     `json:"completedAssignments"`
	OnTimeAssignments      int     `json:"onTimeAssignments"`
	SuccessfulScansCount   int     `json:"successfulScansCount"`
	WindowScansCount       int     `json:"windowScansCount"`
}

// DashboardStats is the read-model behind the dashboard's headline cards.
type DashboardStats struct {
	PatrolsToday                 int     `json:"patrolsToday"`
	MissedPatrols                int     `json:"missedPatrols"`
	ActiveGuards                 int     `json:"activeGuards"`
	TotalCheckpoints             int     `json:"totalCheckpoints"`
	TotalGuards                  int     `json:"totalGuards"`
	TotalScans                   int     `json:"totalScans"`
	CompletionRate               float64 `json:"completionRate"`
	AvgResponseTimeSeconds       int     `json:"avgResponseTimeSeconds"`
	EfficiencyScore              float64 `json:"efficiencyScore"`
	OnTimeRate                   float64 `json:"onTimeRate"`
	QualityRate                  float64 `json:"qualityRate"`
	CompletionRateChange         float64 `json:"completionRateChange"`
	EfficiencyScoreChange        float64 `json:"efficiencyScoreChange"`
	AvgResponseTimeChangeSeconds int     `json:"avgResponseTimeChangeSeconds"`
}

// GuardPerformance is one row of the guard performance table.
type GuardPerformance struct {
	GuardID    GuardID    `json:"guardId"`
	GuardName  string     `json:"guardName"`
	Metrics    Metrics    `json:"metrics"`
	LastScanAt *time.Time `json:"lastScanAt,omitempty"`
}

// TimelineEntry is a scan enriched with display names for the activity timeline.
type TimelineEntry struct {
	Scan
	GuardName      string `json:"guardName"`
	CheckpointName string `json:"checkpointName"`
}
