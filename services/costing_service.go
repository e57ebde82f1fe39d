package services

import (
	"backend/models"
	"backend/utils"
	"errors"
	"strings"
	"time"
)

// ErrProjectNotFound signals a summary request for a project id with no row.
var ErrProjectNotFound = errors.New("project not found")

// ErrInvalidRange signals a date window whose to_date precedes its from_date.
var ErrInvalidRange = errors.New("to_date must not be earlier than from_date")

// Job costing categories, in the fixed order every summary reports them.
const (
	CategoryLabour         = "Labour"
	CategoryMaterials      = "Materials"
	CategoryEquipment      = "Equipment"
	CategorySubcontractors = "Subcontractors"
	CategoryOther          = "Other"
)

// CategoryOrder is the stable output ordering for job costing rollups.
var CategoryOrder = []string{
	CategoryLabour,
	CategoryMaterials,
	CategoryEquipment,
	CategorySubcontractors,
	CategoryOther,
}

// headCategories maps normalized cost-head strings to their category.
// Lookup is exact (lowercased, trimmed); unknown heads fall into Other.
var headCategories = map[string]string{
	"labour":                  CategoryLabour,
	"labor":                   CategoryLabour,
	"labour - skilled":        CategoryLabour,
	"labour - unskilled":      CategoryLabour,
	"labour welfare":          CategoryLabour,
	"material":                CategoryMaterials,
	"materials":               CategoryMaterials,
	"materials - cement":      CategoryMaterials,
	"materials - steel":       CategoryMaterials,
	"materials - aggregate":   CategoryMaterials,
	"materials - shuttering":  CategoryMaterials,
	"equipment":               CategoryEquipment,
	"equipment hire":          CategoryEquipment,
	"machinery":               CategoryEquipment,
	"plant & machinery":       CategoryEquipment,
	"fuel & lubricants":       CategoryEquipment,
	"subcontract":             CategorySubcontractors,
	"subcontractor":           CategorySubcontractors,
	"subcontract - piling":    CategorySubcontractors,
	"subcontract - earthwork": CategorySubcontractors,
}

// CategoryForHead resolves a free-text cost head to one of the five fixed
// categories. The same table is used everywhere categorization occurs, so a
// given head always lands in the same bucket.
func CategoryForHead(costHead string) string {
	if cat, ok := headCategories[strings.ToLower(strings.TrimSpace(costHead))]; ok {
		return cat
	}
	return CategoryOther
}

// ValidateDateRange rejects windows where both bounds are present and
// to_date precedes from_date. Empty bounds are open-ended and always valid.
func ValidateDateRange(fromDate, toDate string) error {
	if fromDate != "" && toDate != "" && toDate < fromDate {
		return ErrInvalidRange
	}
	return nil
}

// inRange reports whether an ISO date falls within the inclusive window.
// ISO dates compare lexicographically in chronological order.
func inRange(date, fromDate, toDate string) bool {
	if fromDate != "" && date < fromDate {
		return false
	}
	if toDate != "" && date > toDate {
		return false
	}
	return true
}

// FilterCostEntries returns the entries whose entry_date falls within the
// inclusive [fromDate, toDate] window. Empty bounds are open-ended.
func FilterCostEntries(entries []models.CostEntry, fromDate, toDate string) []models.CostEntry {
	filtered := make([]models.CostEntry, 0, len(entries))
	for _, e := range entries {
		if inRange(e.EntryDate, fromDate, toDate) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// BuildDashboardSummary computes the per-project cost/budget view from
// already-fetched rows. Cost entries are date-filtered; budget items are
// period-independent allocations and never filtered. recentLogs are display
// context only and do not enter the cost math.
func BuildDashboardSummary(project *models.Project, costs []models.CostEntry, budgets []models.BudgetItem, recentLogs []models.DailyLog, fromDate, toDate string, today time.Time) (*models.DashboardSummary, error) {
	if project == nil {
		return nil, ErrProjectNotFound
	}
	if err := ValidateDateRange(fromDate, toDate); err != nil {
		return nil, err
	}

	filtered := FilterCostEntries(costs, fromDate, toDate)

	totalCost := 0.0
	costByHead := map[string]float64{}
	for _, e := range filtered {
		costByHead[e.CostHead] += e.Amount
		totalCost += e.Amount
	}

	totalBudget := 0.0
	budgetByHead := map[string]float64{}
	for _, b := range budgets {
		budgetByHead[b.CostHead] = b.BudgetAmount
		totalBudget += b.BudgetAmount
	}

	varianceByHead := map[string]float64{}
	for head := range costByHead {
		varianceByHead[head] = costByHead[head] - budgetByHead[head]
	}
	for head := range budgetByHead {
		if _, ok := varianceByHead[head]; !ok {
			varianceByHead[head] = -budgetByHead[head]
		}
	}

	var percentOverUnder *float64
	if totalBudget > 0 {
		v := (totalCost - totalBudget) / totalBudget * 100.0
		percentOverUnder = &v
	}

	var contractValue *float64
	var profitMargin *float64
	if project.TotalContractValue != nil && *project.TotalContractValue > 0 {
		cv := *project.TotalContractValue
		contractValue = &cv
		m := (cv - totalCost) / cv * 100.0
		profitMargin = &m
	}

	var daysRemaining *int
	if project.EndDate != nil && *project.EndDate != "" {
		if endDate, err := time.Parse(utils.ISODateLayout, *project.EndDate); err == nil {
			if endDate.After(today) {
				d := int(endDate.Sub(today).Hours() / 24)
				daysRemaining = &d
			}
		}
	}

	if recentLogs == nil {
		recentLogs = []models.DailyLog{}
	}

	summary := &models.DashboardSummary{
		ProjectID:              project.ID,
		FromDate:               optionalDate(fromDate),
		ToDate:                 optionalDate(toDate),
		TotalCost:              totalCost,
		CostByHead:             costByHead,
		TotalBudget:            totalBudget,
		BudgetByHead:           budgetByHead,
		VarianceByHead:         varianceByHead,
		PercentOverUnderBudget: percentOverUnder,
		TotalContractValue:     contractValue,
		ProfitMarginTarget:     project.ProfitMarginTarget,
		CurrentProfitMargin:    profitMargin,
		DaysRemaining:          daysRemaining,
		JobCostingCategories:   buildCategories(filtered, budgets),
		RecentLogs:             recentLogs,
	}
	return summary, nil
}

// BuildJobCostingSummary rolls cost entries and budget lines up into the
// fixed five-category taxonomy and compares actual against planned.
func BuildJobCostingSummary(project *models.Project, costs []models.CostEntry, budgets []models.BudgetItem, fromDate, toDate string) (*models.JobCostingSummary, error) {
	if project == nil {
		return nil, ErrProjectNotFound
	}
	if err := ValidateDateRange(fromDate, toDate); err != nil {
		return nil, err
	}

	filtered := FilterCostEntries(costs, fromDate, toDate)
	categories := buildCategories(filtered, budgets)

	totalPlanned := 0.0
	totalActual := 0.0
	for _, c := range categories {
		totalPlanned += c.PlannedCost
		totalActual += c.ActualCost
	}

	var percentOverUnder *float64
	if totalPlanned > 0 {
		v := (totalActual - totalPlanned) / totalPlanned * 100.0
		percentOverUnder = &v
	}

	summary := &models.JobCostingSummary{
		ProjectID:              project.ID,
		ProjectName:            project.Name,
		Client:                 project.Client,
		Location:               project.Location,
		FromDate:               optionalDate(fromDate),
		ToDate:                 optionalDate(toDate),
		TotalPlannedCost:       totalPlanned,
		TotalActualCost:        totalActual,
		PercentOverUnderBudget: percentOverUnder,
		Categories:             categories,
	}
	return summary, nil
}

// buildCategories produces one row per fixed category, all five always
// present and in CategoryOrder, even when both planned and actual are zero.
func buildCategories(costs []models.CostEntry, budgets []models.BudgetItem) []models.JobCostingCategory {
	plannedByCat := map[string]float64{}
	actualByCat := map[string]float64{}
	qtyByCat := map[string]float64{}
	uomsByCat := map[string]map[string]bool{}

	for _, b := range budgets {
		plannedByCat[CategoryForHead(b.CostHead)] += b.BudgetAmount
	}
	for _, e := range costs {
		cat := CategoryForHead(e.CostHead)
		actualByCat[cat] += e.Amount
		if e.Quantity != nil {
			qtyByCat[cat] += *e.Quantity
		}
		if e.UOM != nil && *e.UOM != "" {
			if uomsByCat[cat] == nil {
				uomsByCat[cat] = map[string]bool{}
			}
			uomsByCat[cat][*e.UOM] = true
		}
	}

	totalActual := 0.0
	for _, v := range actualByCat {
		totalActual += v
	}

	categories := make([]models.JobCostingCategory, 0, len(CategoryOrder))
	for _, cat := range CategoryOrder {
		planned := plannedByCat[cat]
		actual := actualByCat[cat]
		qty := qtyByCat[cat]

		var quantity *float64
		var unitCost *float64
		if qty > 0 {
			quantity = &qty
			uc := actual / qty
			unitCost = &uc
		}

		var uom *string
		if len(uomsByCat[cat]) == 1 {
			for u := range uomsByCat[cat] {
				v := u
				uom = &v
			}
		}

		pctOfTotal := 0.0
		if totalActual > 0 {
			pctOfTotal = actual / totalActual * 100.0
		}

		var pctOverUnder *float64
		if planned > 0 {
			v := (actual - planned) / planned * 100.0
			pctOverUnder = &v
		}

		categories = append(categories, models.JobCostingCategory{
			Category:               cat,
			PlannedCost:            planned,
			ActualCost:             actual,
			Quantity:               quantity,
			UOM:                    uom,
			UnitCost:               unitCost,
			PercentOfTotalActual:   pctOfTotal,
			PercentOverUnderBudget: pctOverUnder,
		})
	}
	return categories
}

func optionalDate(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
