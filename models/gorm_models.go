package models

import (
	"time"
)

// GORM-compatible models for the KPI record tables. Date-only columns hold
// ISO YYYY-MM-DD strings, matching the core costing schema.

// ProjectMilestone represents the project_milestones table with GORM tags
type ProjectMilestone struct {
	ID            int       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID     int       `gorm:"column:project_id;not null;index" json:"project_id" binding:"required"`
	MilestoneName string    `gorm:"column:milestone_name;not null" json:"milestone_name" binding:"required"`
	PlannedDate   *string   `gorm:"column:planned_date" json:"planned_date"`
	ActualDate    *string   `gorm:"column:actual_date" json:"actual_date"`
	Status        string    `gorm:"column:status;default:'Planned'" json:"status"`
	Weight        float64   `gorm:"column:weight;default:0" json:"weight"`
	Description   *string   `gorm:"column:description" json:"description"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for ProjectMilestone
func (ProjectMilestone) TableName() string {
	return "project_milestones"
}

// DelayReason represents the delay_reasons table with GORM tags
type DelayReason struct {
	ID               int       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID        int       `gorm:"column:project_id;not null;index" json:"project_id" binding:"required"`
	DelayDate        string    `gorm:"column:delay_date;not null" json:"delay_date" binding:"required"`
	DelayCategory    string    `gorm:"column:delay_category;not null" json:"delay_category" binding:"required"`
	DelayHours       float64   `gorm:"column:delay_hours;default:0" json:"delay_hours"`
	DelayDays        float64   `gorm:"column:delay_days;default:0" json:"delay_days"`
	Description      *string   `gorm:"column:description" json:"description"`
	ImpactOnSchedule *string   `gorm:"column:impact_on_schedule" json:"impact_on_schedule"`
	MitigationAction *string   `gorm:"column:mitigation_action" json:"mitigation_action"`
	Status           string    `gorm:"column:status;default:'Active'" json:"status"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for DelayReason
func (DelayReason) TableName() string {
	return "delay_reasons"
}

// RABill represents the ra_bills table with GORM tags
type RABill struct {
	ID                     int       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID              int       `gorm:"column:project_id;not null;index" json:"project_id" binding:"required"`
	BillNo                 string    `gorm:"column:bill_no;not null" json:"bill_no" binding:"required"`
	BillDate               *string   `gorm:"column:bill_date" json:"bill_date"`
	SubmittedDate          *string   `gorm:"column:submitted_date" json:"submitted_date"`
	CertifiedDate          *string   `gorm:"column:certified_date" json:"certified_date"`
	PaidDate               *string   `gorm:"column:paid_date" json:"paid_date"`
	BillAmount             float64   `gorm:"column:bill_amount;default:0" json:"bill_amount"`
	CertifiedAmount        float64   `gorm:"column:certified_amount;default:0" json:"certified_amount"`
	PaidAmount             float64   `gorm:"column:paid_amount;default:0" json:"paid_amount"`
	RetentionAmount        float64   `gorm:"column:retention_amount;default:0" json:"retention_amount"`
	Status                 string    `gorm:"column:status;default:'Draft'" json:"status"`
	CertificationCycleDays *int      `gorm:"column:certification_cycle_days" json:"certification_cycle_days"`
	PaymentCycleDays       *int      `gorm:"column:payment_cycle_days" json:"payment_cycle_days"`
	CreatedAt              time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for RABill
func (RABill) TableName() string {
	return "ra_bills"
}

// ClaimsVariation represents the claims_variations table with GORM tags
type ClaimsVariation struct {
	ID             int       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID      int       `gorm:"column:project_id;not null;index" json:"project_id" binding:"required"`
	ClaimType      string    `gorm:"column:claim_type;not null" json:"claim_type" binding:"required"`
	Description    *string   `gorm:"column:description" json:"description"`
	ClaimedAmount  float64   `gorm:"column:claimed_amount;default:0" json:"claimed_amount"`
	ApprovedAmount float64   `gorm:"column:approved_amount;default:0" json:"approved_amount"`
	Status         string    `gorm:"column:status;default:'Submitted'" json:"status"`
	SubmittedDate  *string   `gorm:"column:submitted_date" json:"submitted_date"`
	ApprovedDate   *string   `gorm:"column:approved_date" json:"approved_date"`
	Remarks        *string   `gorm:"column:remarks" json:"remarks"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for ClaimsVariation
func (ClaimsVariation) TableName() string {
	return "claims_variations"
}

// BOQItem represents the boq_items table with GORM tags
type BOQItem struct {
	ID                  int       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID           int       `gorm:"column:project_id;not null;index" json:"project_id" binding:"required"`
	ItemCode            *string   `gorm:"column:item_code" json:"item_code"`
	ItemDescription     string    `gorm:"column:item_description;not null" json:"item_description" binding:"required"`
	Unit                *string   `gorm:"column:unit" json:"unit"`
	BOQQuantity         float64   `gorm:"column:boq_quantity;default:0" json:"boq_quantity"`
	BOQRate             float64   `gorm:"column:boq_rate;default:0" json:"boq_rate"`
	BOQAmount           float64   `gorm:"column:boq_amount;default:0" json:"boq_amount"`
	ExecutedQuantity    float64   `gorm:"column:executed_quantity;default:0" json:"executed_quantity"`
	ExecutedAmount      float64   `gorm:"column:executed_amount;default:0" json:"executed_amount"`
	DeviationPercentage float64   `gorm:"column:deviation_percentage;default:0" json:"deviation_percentage"`
	Status              string    `gorm:"column:status;default:'Active'" json:"status"`
	Category            *string   `gorm:"column:category" json:"category"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for BOQItem
func (BOQItem) TableName() string {
	return "boq_items"
}

// QualityTest represents the quality_tests table with GORM tags
type QualityTest struct {
	ID             int       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID      int       `gorm:"column:project_id;not null;index" json:"project_id" binding:"required"`
	TestType       string    `gorm:"column:test_type;not null" json:"test_type" binding:"required"`
	TestDate       *string   `gorm:"column:test_date" json:"test_date"`
	PlannedTests   int       `gorm:"column:planned_tests;default:0" json:"planned_tests"`
	ConductedTests int       `gorm:"column:conducted_tests;default:0" json:"conducted_tests"`
	PassedTests    int       `gorm:"column:passed_tests;default:0" json:"passed_tests"`
	FailedTests    int       `gorm:"column:failed_tests;default:0" json:"failed_tests"`
	PassRate       float64   `gorm:"column:pass_rate;default:0" json:"pass_rate"`
	Status         string    `gorm:"column:status;default:'Planned'" json:"status"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for QualityTest
func (QualityTest) TableName() string {
	return "quality_tests"
}

// NCR represents the ncrs table with GORM tags
type NCR struct {
	ID               int       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID        int       `gorm:"column:project_id;not null;index" json:"project_id" binding:"required"`
	NCRNo            string    `gorm:"column:ncr_no;not null" json:"ncr_no" binding:"required"`
	RaisedDate       *string   `gorm:"column:raised_date" json:"raised_date"`
	Category         *string   `gorm:"column:category" json:"category"`
	Description      *string   `gorm:"column:description" json:"description"`
	Severity         string    `gorm:"column:severity;default:'Minor'" json:"severity"`
	Status           string    `gorm:"column:status;default:'Open'" json:"status"`
	ClosureDate      *string   `gorm:"column:closure_date" json:"closure_date"`
	ClosureDays      *int      `gorm:"column:closure_days" json:"closure_days"`
	CorrectiveAction *string   `gorm:"column:corrective_action" json:"corrective_action"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for NCR
func (NCR) TableName() string {
	return "ncrs"
}

// SafetyIncident represents the safety_incidents table with GORM tags
type SafetyIncident struct {
	ID           int       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID    int       `gorm:"column:project_id;not null;index" json:"project_id" binding:"required"`
	IncidentDate *string   `gorm:"column:incident_date" json:"incident_date"`
	IncidentType *string   `gorm:"column:incident_type" json:"incident_type"`
	Description  *string   `gorm:"column:description" json:"description"`
	Severity     string    `gorm:"column:severity;default:'Minor'" json:"severity"`
	LostTimeDays int       `gorm:"column:lost_time_days;default:0" json:"lost_time_days"`
	ReportedBy   *string   `gorm:"column:reported_by" json:"reported_by"`
	Status       string    `gorm:"column:status;default:'Reported'" json:"status"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for SafetyIncident
func (SafetyIncident) TableName() string {
	return "safety_incidents"
}

// LabourManpower represents the labour_manpower table with GORM tags
type LabourManpower struct {
	ID              int       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID       int       `gorm:"column:project_id;not null;index" json:"project_id" binding:"required"`
	RecordDate      string    `gorm:"column:record_date;not null" json:"record_date" binding:"required"`
	TotalPlanned    int       `gorm:"column:total_planned;default:0" json:"total_planned"`
	TotalActual     int       `gorm:"column:total_actual;default:0" json:"total_actual"`
	MasonCount      int       `gorm:"column:mason_count;default:0" json:"mason_count"`
	CarpenterCount  int       `gorm:"column:carpenter_count;default:0" json:"carpenter_count"`
	BarBenderCount  int       `gorm:"column:bar_bender_count;default:0" json:"bar_bender_count"`
	WelderCount     int       `gorm:"column:welder_count;default:0" json:"welder_count"`
	HelperCount     int       `gorm:"column:helper_count;default:0" json:"helper_count"`
	AbsenteeismRate float64   `gorm:"column:absenteeism_rate;default:0" json:"absenteeism_rate"`
	OvertimeHours   float64   `gorm:"column:overtime_hours;default:0" json:"overtime_hours"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for LabourManpower
func (LabourManpower) TableName() string {
	return "labour_manpower"
}

// PlantMachinery represents the plant_machinery table with GORM tags
type PlantMachinery struct {
	ID                     int       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID              int       `gorm:"column:project_id;not null;index" json:"project_id" binding:"required"`
	EquipmentName          string    `gorm:"column:equipment_name;not null" json:"equipment_name" binding:"required"`
	EquipmentType          *string   `gorm:"column:equipment_type" json:"equipment_type"`
	RecordDate             *string   `gorm:"column:record_date" json:"record_date"`
	AvailableHours         float64   `gorm:"column:available_hours;default:0" json:"available_hours"`
	UtilizedHours          float64   `gorm:"column:utilized_hours;default:0" json:"utilized_hours"`
	BreakdownHours         float64   `gorm:"column:breakdown_hours;default:0" json:"breakdown_hours"`
	IdleHours              float64   `gorm:"column:idle_hours;default:0" json:"idle_hours"`
	FuelConsumed           float64   `gorm:"column:fuel_consumed;default:0" json:"fuel_consumed"`
	FuelNorm               float64   `gorm:"column:fuel_norm;default:0" json:"fuel_norm"`
	AvailabilityPercentage float64   `gorm:"column:availability_percentage;default:0" json:"availability_percentage"`
	UtilizationPercentage  float64   `gorm:"column:utilization_percentage;default:0" json:"utilization_percentage"`
	MTTRHours              float64   `gorm:"column:mttr_hours;default:0" json:"mttr_hours"`
	MTBFHours              float64   `gorm:"column:mtbf_hours;default:0" json:"mtbf_hours"`
	CreatedAt              time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for PlantMachinery
func (PlantMachinery) TableName() string {
	return "plant_machinery"
}

// MaterialInventory represents the material_inventory table with GORM tags
type MaterialInventory struct {
	ID                  int       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID           int       `gorm:"column:project_id;not null;index" json:"project_id" binding:"required"`
	MaterialType        string    `gorm:"column:material_type;not null" json:"material_type" binding:"required"`
	RecordDate          *string   `gorm:"column:record_date" json:"record_date"`
	IssuedQuantity      float64   `gorm:"column:issued_quantity;default:0" json:"issued_quantity"`
	ConsumedQuantity    float64   `gorm:"column:consumed_quantity;default:0" json:"consumed_quantity"`
	TheoreticalQuantity float64   `gorm:"column:theoretical_quantity;default:0" json:"theoretical_quantity"`
	VariancePercentage  float64   `gorm:"column:variance_percentage;default:0" json:"variance_percentage"`
	StockLevel          float64   `gorm:"column:stock_level;default:0" json:"stock_level"`
	MinStock            float64   `gorm:"column:min_stock;default:0" json:"min_stock"`
	MaxStock            float64   `gorm:"column:max_stock;default:0" json:"max_stock"`
	Status              string    `gorm:"column:status;default:'OK'" json:"status"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for MaterialInventory
func (MaterialInventory) TableName() string {
	return "material_inventory"
}

// ProjectPackage represents the project_packages table with GORM tags
type ProjectPackage struct {
	ID                 int       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID          int       `gorm:"column:project_id;not null;index" json:"project_id" binding:"required"`
	PackageName        string    `gorm:"column:package_name;not null" json:"package_name" binding:"required"`
	PackageValue       float64   `gorm:"column:package_value;default:0" json:"package_value"`
	PlannedStartDate   *string   `gorm:"column:planned_start_date" json:"planned_start_date"`
	PlannedEndDate     *string   `gorm:"column:planned_end_date" json:"planned_end_date"`
	ActualStartDate    *string   `gorm:"column:actual_start_date" json:"actual_start_date"`
	ActualEndDate      *string   `gorm:"column:actual_end_date" json:"actual_end_date"`
	Status             string    `gorm:"column:status;default:'Not Started'" json:"status"`
	ProgressPercentage float64   `gorm:"column:progress_percentage;default:0" json:"progress_percentage"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for ProjectPackage
func (ProjectPackage) TableName() string {
	return "project_packages"
}

// DrawingsApproval represents the drawings_approvals table with GORM tags
type DrawingsApproval struct {
	ID            int       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID     int       `gorm:"column:project_id;not null;index" json:"project_id" binding:"required"`
	DrawingNo     string    `gorm:"column:drawing_no;not null" json:"drawing_no" binding:"required"`
	DrawingType   *string   `gorm:"column:drawing_type" json:"drawing_type"`
	SubmittedDate *string   `gorm:"column:submitted_date" json:"submitted_date"`
	ApprovedDate  *string   `gorm:"column:approved_date" json:"approved_date"`
	ApprovalDays  *int      `gorm:"column:approval_days" json:"approval_days"`
	Status        string    `gorm:"column:status;default:'Submitted'" json:"status"`
	ApproverName  *string   `gorm:"column:approver_name" json:"approver_name"`
	Remarks       *string   `gorm:"column:remarks" json:"remarks"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for DrawingsApproval
func (DrawingsApproval) TableName() string {
	return "drawings_approvals"
}

// RailwayBlock represents the railway_blocks table with GORM tags
type RailwayBlock struct {
	ID              int       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID       int       `gorm:"column:project_id;not null;index" json:"project_id" binding:"required"`
	BlockDate       *string   `gorm:"column:block_date" json:"block_date"`
	BlockType       *string   `gorm:"column:block_type" json:"block_type"`
	RequestedHours  float64   `gorm:"column:requested_hours;default:0" json:"requested_hours"`
	GrantedHours    float64   `gorm:"column:granted_hours;default:0" json:"granted_hours"`
	UtilizedHours   float64   `gorm:"column:utilized_hours;default:0" json:"utilized_hours"`
	Status          string    `gorm:"column:status;default:'Requested'" json:"status"`
	WorkDescription *string   `gorm:"column:work_description" json:"work_description"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for RailwayBlock
func (RailwayBlock) TableName() string {
	return "railway_blocks"
}

// RiskRegister represents the risk_register table with GORM tags
type RiskRegister struct {
	ID               int       `gorm:"primaryKey;column:id" json:"id"`
	ProjectID        int       `gorm:"column:project_id;not null;index" json:"project_id" binding:"required"`
	RiskDescription  string    `gorm:"column:risk_description;not null" json:"risk_description" binding:"required"`
	RiskCategory     *string   `gorm:"column:risk_category" json:"risk_category"`
	Probability      string    `gorm:"column:probability;default:'Medium'" json:"probability"`
	Impact           string    `gorm:"column:impact;default:'Medium'" json:"impact"`
	RiskLevel        string    `gorm:"column:risk_level;default:'Medium'" json:"risk_level"`
	ExposureAmount   float64   `gorm:"column:exposure_amount;default:0" json:"exposure_amount"`
	ExposureDays     int       `gorm:"column:exposure_days;default:0" json:"exposure_days"`
	MitigationPlan   *string   `gorm:"column:mitigation_plan" json:"mitigation_plan"`
	MitigationStatus string    `gorm:"column:mitigation_status;default:'Planned'" json:"mitigation_status"`
	RAGStatus        string    `gorm:"column:rag_status;default:'Amber'" json:"rag_status"`
	Owner            *string   `gorm:"column:owner" json:"owner"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for RiskRegister
func (RiskRegister) TableName() string {
	return "risk_register"
}
