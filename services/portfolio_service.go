package services

import (
	"backend/models"
	"backend/utils"
	"time"
)

// activeStatuses are the in-flight project states counted as active.
var activeStatuses = map[string]bool{
	"Planning":   true,
	"Execution":  true,
	"Monitoring": true,
}

// BuildPortfolioOverview rolls all projects up into a fleet-level view.
// billedTotal, incidentCount and ncrCount are pre-aggregated across the
// whole portfolio. A project counts as delayed when it is not completed and
// its planned end date is strictly before today.
func BuildPortfolioOverview(projects []models.Project, billedTotal float64, incidentCount, ncrCount int, today time.Time) *models.PortfolioOverview {
	todayISO := today.Format(utils.ISODateLayout)

	overview := &models.PortfolioOverview{
		TotalProjects:        len(projects),
		TotalBilledValue:     billedTotal,
		SafetyIncidentsTotal: incidentCount,
		QualityNCRsTotal:     ncrCount,
		ProjectsByClient:     map[string]int{},
		ProjectsByStatus:     map[string]int{},
	}

	progressSum := 0.0
	for _, p := range projects {
		overview.ProjectsByClient[p.Client]++
		overview.ProjectsByStatus[p.Status]++

		if activeStatuses[p.Status] {
			overview.ActiveProjects++
		}
		if p.Status != "Completed" && p.EndDate != nil && *p.EndDate != "" && *p.EndDate < todayISO {
			overview.DelayedProjects++
		}
		if p.TotalContractValue != nil {
			overview.TotalContractValue += *p.TotalContractValue
		}
		progressSum += p.ProgressPercent
	}

	// Unweighted mean: no per-project size weighting data exists.
	if len(projects) > 0 {
		overview.OverallProgress = progressSum / float64(len(projects))
	}
	return overview
}
