// @title           Construction Dashboard API
// @version         1.0
// @description     Construction project management backend - project costing, daily logs, budgets and site KPIs.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080

// @BasePath  /

// @schemes http https
package main

import (
	_ "backend/docs"
	"backend/handlers"
	"backend/models"
	"backend/services"
	"backend/storage"
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"strconv"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/robfig/cron/v3"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func CORSConfig() cors.Config {
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{
		"http://localhost:9000",
		"http://localhost:8080",
		"http://localhost:3000",
	}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{
		"Content-Type", "Content-Length", "Accept-Encoding", "X-XSRF-TOKEN",
		"Accept", "Origin", "X-Requested-With", "Authorization", "User-Agent",
		"Cache-Control", "Referer",
		"Access-Control-Request-Method", "Access-Control-Request-Headers",
	}
	corsConfig.AllowMethods = []string{
		"GET", "POST", "PUT", "DELETE", "OPTIONS", "HEAD", "PATCH",
	}
	corsConfig.ExposeHeaders = []string{
		"Content-Length", "Content-Type", "Content-Disposition",
	}
	corsConfig.MaxAge = 12 * time.Hour
	return corsConfig
}

var cronRunning int32

func safeGo(
	ctx context.Context,
	wg *sync.WaitGroup,
	name string,
	fn func(context.Context) error,
	cronLogger *log.Logger,
) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer func() {
			if r := recover(); r != nil {
				log.Printf("PANIC in %s: %v\n%s", name, r, debug.Stack())
				if cronLogger != nil {
					cronLogger.Printf("PANIC in %s: %v\n%s", name, r, debug.Stack())
				}
			}
		}()

		if err := fn(ctx); err != nil {
			log.Printf("%s failed: %v", name, err)
			if cronLogger != nil {
				cronLogger.Printf("%s failed: %v", name, err)
			}
		} else {
			log.Printf("%s completed successfully", name)
			if cronLogger != nil {
				cronLogger.Printf("%s completed successfully", name)
			}
		}
	}()
}

// HealthCheck godoc
// @Summary      Health check
// @Description  Reports whether the API is up.
// @Tags         Health
// @Produce      json
// @Success      200 {object} models.HealthResponse
// @Router       /api/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
}

// setupRouter wires every HTTP route onto a fresh engine.
func setupRouter(db *sql.DB, gdb *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(CORSConfig()))

	r.GET("/api/health", HealthCheck)

	// ==================== 1. PROJECTS ====================
	r.POST("/api/projects", handlers.CreateProject(db))
	r.GET("/api/projects", handlers.ListProjects(db))
	r.GET("/api/projects/:project_id", handlers.GetProject(db))
	r.PUT("/api/projects/:project_id", handlers.UpdateProject(db))
	r.DELETE("/api/projects/:project_id", handlers.DeleteProject(db))

	// ==================== 2. DAILY LOGS ====================
	r.POST("/api/daily-logs", handlers.CreateDailyLog(db))
	r.GET("/api/projects/:project_id/daily-logs", handlers.ListDailyLogs(db))
	r.DELETE("/api/daily-logs/:log_id", handlers.DeleteDailyLog(db))

	// ==================== 3. COST ENTRIES ====================
	r.POST("/api/cost-entries", handlers.CreateCostEntry(db))
	r.GET("/api/projects/:project_id/cost-entries", handlers.ListCostEntries(db))
	r.DELETE("/api/cost-entries/:entry_id", handlers.DeleteCostEntry(db))

	// ==================== 4. BUDGET ITEMS ====================
	r.POST("/api/budget-items", handlers.UpsertBudgetItem(db))
	r.GET("/api/projects/:project_id/budget-items", handlers.ListBudgetItems(db))
	r.DELETE("/api/budget-items/:item_id", handlers.DeleteBudgetItem(db))

	// ==================== 5. DASHBOARD & COSTING SUMMARIES ====================
	r.GET("/api/projects/:project_id/summary", handlers.GetDashboardSummary(db))
	r.GET("/api/projects/:project_id/job-costing", handlers.GetJobCostingSummary(db))
	r.GET("/api/portfolio/overview", handlers.GetPortfolioOverview(db))

	// ==================== 6. SCHEDULE KPIs ====================
	r.GET("/api/milestones", handlers.ListMilestones(gdb))
	r.POST("/api/milestones", handlers.CreateMilestone(gdb))
	r.DELETE("/api/milestones/:id", handlers.DeleteMilestone(gdb))
	r.GET("/api/delay-reasons", handlers.ListDelayReasons(gdb))
	r.POST("/api/delay-reasons", handlers.CreateDelayReason(gdb))
	r.DELETE("/api/delay-reasons/:id", handlers.DeleteDelayReason(gdb))

	// ==================== 7. BILLING KPIs ====================
	r.GET("/api/ra-bills", handlers.ListRABills(gdb))
	r.POST("/api/ra-bills", handlers.CreateRABill(gdb))
	r.DELETE("/api/ra-bills/:id", handlers.DeleteRABill(gdb))
	r.GET("/api/claims-variations", handlers.ListClaimsVariations(gdb))
	r.POST("/api/claims-variations", handlers.CreateClaimsVariation(gdb))
	r.DELETE("/api/claims-variations/:id", handlers.DeleteClaimsVariation(gdb))
	r.GET("/api/boq-items", handlers.ListBOQItems(gdb))
	r.POST("/api/boq-items", handlers.CreateBOQItem(gdb))
	r.DELETE("/api/boq-items/:id", handlers.DeleteBOQItem(gdb))

	// ==================== 8. QUALITY & SAFETY KPIs ====================
	r.GET("/api/quality-tests", handlers.ListQualityTests(gdb))
	r.POST("/api/quality-tests", handlers.CreateQualityTest(gdb))
	r.DELETE("/api/quality-tests/:id", handlers.DeleteQualityTest(gdb))
	r.GET("/api/ncrs", handlers.ListNCRs(gdb))
	r.POST("/api/ncrs", handlers.CreateNCR(gdb))
	r.DELETE("/api/ncrs/:id", handlers.DeleteNCR(gdb))
	r.GET("/api/safety-incidents", handlers.ListSafetyIncidents(gdb))
	r.POST("/api/safety-incidents", handlers.CreateSafetyIncident(gdb))
	r.DELETE("/api/safety-incidents/:id", handlers.DeleteSafetyIncident(gdb))

	// ==================== 9. RESOURCE KPIs ====================
	r.GET("/api/labour-manpower", handlers.ListLabourManpower(gdb))
	r.POST("/api/labour-manpower", handlers.CreateLabourManpower(gdb))
	r.DELETE("/api/labour-manpower/:id", handlers.DeleteLabourManpower(gdb))
	r.GET("/api/plant-machinery", handlers.ListPlantMachinery(gdb))
	r.POST("/api/plant-machinery", handlers.CreatePlantMachinery(gdb))
	r.DELETE("/api/plant-machinery/:id", handlers.DeletePlantMachinery(gdb))
	r.GET("/api/material-inventory", handlers.ListMaterialInventory(gdb))
	r.POST("/api/material-inventory", handlers.CreateMaterialInventory(gdb))
	r.DELETE("/api/material-inventory/:id", handlers.DeleteMaterialInventory(gdb))

	// ==================== 10. COMPLIANCE & RISK KPIs ====================
	r.GET("/api/project-packages", handlers.ListProjectPackages(gdb))
	r.POST("/api/project-packages", handlers.CreateProjectPackage(gdb))
	r.DELETE("/api/project-packages/:id", handlers.DeleteProjectPackage(gdb))
	r.GET("/api/drawings-approvals", handlers.ListDrawingsApprovals(gdb))
	r.POST("/api/drawings-approvals", handlers.CreateDrawingsApproval(gdb))
	r.DELETE("/api/drawings-approvals/:id", handlers.DeleteDrawingsApproval(gdb))
	r.GET("/api/railway-blocks", handlers.ListRailwayBlocks(gdb))
	r.POST("/api/railway-blocks", handlers.CreateRailwayBlock(gdb))
	r.DELETE("/api/railway-blocks/:id", handlers.DeleteRailwayBlock(gdb))
	r.GET("/api/risk-register", handlers.ListRiskRegister(gdb))
	r.POST("/api/risk-register", handlers.CreateRiskRegisterEntry(gdb))
	r.DELETE("/api/risk-register/:id", handlers.DeleteRiskRegisterEntry(gdb))

	// ==================== 11. EXPORTS ====================
	r.GET("/api/projects/:project_id/cost-entries/export", handlers.ExportCostEntriesExcel(db))
	r.GET("/api/projects/:project_id/job-costing/export", handlers.ExportJobCostingExcel(db))
	r.GET("/api/projects/:project_id/summary/pdf", handlers.GenerateDashboardPDF(db))
	r.GET("/api/projects/:project_id/qrcode", handlers.ProjectQRCode(db))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func main() {
	db := storage.InitDB()

	if err := storage.InitSchema(db); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	if err := storage.SeedIfEmpty(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	gdb := storage.InitGormDB()
	if err := storage.AutoMigrateModels(gdb); err != nil {
		log.Fatalf("Failed to migrate KPI tables: %v", err)
	}

	// Nightly maintenance: recompute derived quality and billing metrics.
	cr := cron.New(
		cron.WithLogger(cron.VerbosePrintfLogger(log.New(os.Stdout, "cron: ", log.LstdFlags))),
	)

	cronLogFile, err := os.OpenFile("cron_errors.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Failed to open cron error log file: %v", err)
	}
	cronLogger := log.New(cronLogFile, "CRON_ERROR: ", log.LstdFlags)

	_, err = cr.AddFunc("30 0 * * *", func() {
		if !atomic.CompareAndSwapInt32(&cronRunning, 0, 1) {
			log.Println("Previous cron still running. Skipping this run.")
			if cronLogger != nil {
				cronLogger.Println("Previous cron still running. Skipping this run.")
			}
			return
		}
		defer atomic.StoreInt32(&cronRunning, 0)

		log.Println("Starting nightly maintenance cron job")

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
		defer cancel()

		var wg sync.WaitGroup

		safeGo(ctx, &wg, "RecomputeQualityMetrics", func(ctx context.Context) error {
			return services.RecomputeQualityMetrics(ctx, db)
		}, cronLogger)

		safeGo(ctx, &wg, "RecomputeBillingCycles", func(ctx context.Context) error {
			return services.RecomputeBillingCycles(ctx, db)
		}, cronLogger)

		done := make(chan struct{})
		go func() {
			wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			log.Println("All cron jobs finished")
		case <-ctx.Done():
			log.Println("Cron timeout reached, jobs cancelled")
			if cronLogger != nil {
				cronLogger.Println("Cron timeout reached, jobs cancelled")
			}
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule nightly maintenance cron job: %v", err)
	}

	cr.Start()

	r := setupRouter(db, gdb)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	portInt, err := strconv.Atoi(port)
	if err != nil {
		log.Fatalf("Invalid PORT environment variable: %s. Must be a number.", port)
	}
	if portInt < 0 || portInt > 65535 {
		log.Fatalf("Invalid PORT: %d. Must be between 0 and 65535.", portInt)
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exiting")
}
