package server

import (
	"context"
	"net/http"

	"gymtrack/internal/attendance"
	"gymtrack/internal/auth"
	"gymtrack/internal/config"
	"gymtrack/internal/datastore"
	"gymtrack/internal/diet"
	"gymtrack/internal/email"
	"gymtrack/internal/events"
	"gymtrack/internal/member"
	"gymtrack/internal/membership"
	"gymtrack/internal/stats"
	"gymtrack/internal/workout"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service, bus *events.Bus) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	memberHandler := member.NewHandler(member.NewService(member.NewRepository(db), cfg.JWTSecret))
	attendanceHandler := attendance.NewHandler(attendance.NewService(attendance.NewRepository(db), bus, cfg.ReportingLocation))
	membershipHandler := membership.NewHandler(membership.NewService(membership.NewRepository(db), bus, emailService))
	dietHandler := diet.NewHandler(diet.NewService(diet.NewRepository(db)))
	workoutHandler := workout.NewHandler(workout.NewService(workout.NewRepository(db)))
	statsHandler := stats.NewHandler(stats.NewService(stats.NewRepository(db)))
	dataHandler := datastore.NewHandler(datastore.NewService(datastore.NewRepository(db), bus))

	public := router.Group("/auth")
	{
		public.POST("/register", memberHandler.Register)
		public.POST("/login", memberHandler.Login)
		public.POST("/refresh", memberHandler.RefreshToken)
	}
	router.GET("/memberships/plans", membershipHandler.ListPlans)
	router.GET("/diet-plans/plans", dietHandler.ListPlans)

	authMiddleware := auth.Middleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", memberHandler.GetMe)
		protected.PATCH("/me", memberHandler.UpdateMe)

		protected.POST("/attendance/check-in", attendanceHandler.CheckIn)
		protected.POST("/attendance/:id/check-out", attendanceHandler.CheckOut)

		protected.POST("/memberships/subscribe", membershipHandler.Subscribe)
		protected.POST("/memberships/upgrade", membershipHandler.Upgrade)
		protected.POST("/memberships/cancel", membershipHandler.Cancel)
		protected.GET("/memberships/status", membershipHandler.GetStatus)

		protected.POST("/diet-plans/select", dietHandler.SelectPlan)
		protected.GET("/diet-plans/current", dietHandler.CurrentPlan)
		protected.GET("/diet-plans/daily-plan", dietHandler.GetDailyPlan)
		protected.POST("/diet-plans/bmi", dietHandler.AssessBMI)

		protected.POST("/workouts/log", workoutHandler.Log)
		protected.GET("/workouts/history", workoutHandler.History)
		protected.GET("/workouts/stats", workoutHandler.GetStats)
		protected.GET("/workouts/recommendations", workoutHandler.Recommendations)

		protected.GET("/stats/signups", statsHandler.SignupsByMonth)
		protected.GET("/stats/usage-by-day", statsHandler.UsageByDay)
		protected.GET("/stats/peak-hours", statsHandler.PeakHours)
		protected.GET("/stats/average-time", statsHandler.AverageTime)
		protected.GET("/stats/top-workouts", statsHandler.TopWorkouts)
		protected.GET("/stats/current-members", statsHandler.CurrentMembers)
		protected.GET("/stats/retention-rate", statsHandler.RetentionRate)
		protected.GET("/stats/attendance-frequency", statsHandler.AttendanceFrequency)
		protected.GET("/stats/all", statsHandler.All)

		protected.GET("/data/:table", dataHandler.List)
		protected.GET("/data/:table/:id", dataHandler.Get)
	}

	adminMiddleware := auth.RequireRole("admin")
	admin := router.Group("/")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.GET("/attendance", attendanceHandler.ListRecords)
		admin.GET("/attendance/current", attendanceHandler.CurrentlyPresent)
		admin.DELETE("/attendance/:id", attendanceHandler.DeleteRecord)

		admin.POST("/data/:table", dataHandler.Create)
		admin.PUT("/data/:table/:id", dataHandler.Update)
		admin.DELETE("/data/:table/:id", dataHandler.Delete)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))

	return &Server{
		router: router,
		db:     db,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the handler tree for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
