package handlers

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"healthbox-backend/internal/middleware"
	"healthbox-backend/internal/models"
)

// RouterConfig carries everything the route table needs.
type RouterConfig struct {
	Secret       []byte
	AllowOrigins []string
	Roles        middleware.RoleLookup
	Log          *logrus.Logger

	Catalog    *CatalogHandler
	Categories *CategoryHandler
	Reviews    *ReviewHandler
	Cart       *CartHandler
	Payments   *PaymentHandler
	Accounts   *UserHandler
	Reports    *ReportHandler
	Ads        *AdHandler
}

// NewRouter wires the full HTTP surface.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(cfg.Log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "HealthBox is running")
	})

	// Catalog (public)
	r.GET("/top-categories", cfg.Catalog.TopCategories)
	r.GET("/discountedMedicine", cfg.Catalog.DiscountedMedicines)
	r.GET("/allMedicines", cfg.Catalog.AllMedicines)
	r.GET("/medicine/:id", cfg.Catalog.MedicineByID)
	r.GET("/medicines/category/:category", cfg.Catalog.MedicinesByCategory)
	r.GET("/reviews", cfg.Reviews.TopReviews)
	r.GET("/categories", cfg.Categories.List)
	r.GET("/advertisements", cfg.Ads.List)
	r.GET("/advertisements/slider", cfg.Ads.Slider)

	// Accounts and tokens (public)
	r.POST("/users", cfg.Accounts.Register)
	r.POST("/login", cfg.Accounts.Login)
	r.POST("/jwt", cfg.Accounts.IssueToken)

	// Cart (public, keyed by caller-supplied user id)
	r.POST("/cart", cfg.Cart.Add)
	r.GET("/cart/:userUid", cfg.Cart.List)
	r.PATCH("/cart/:id", cfg.Cart.UpdateQuantity)
	r.DELETE("/cart/:id", cfg.Cart.Delete)

	// Checkout and payments
	r.POST("/create-payment-intent", cfg.Payments.CreateIntent)
	r.POST("/payments", cfg.Payments.Checkout)
	r.GET("/payment/:transactionId", cfg.Payments.ByTransactionID)
	// Deliberately unprotected: the source surface applies no middleware here
	// even though the rest of the admin surface is gated.
	r.PUT("/payments/:id", cfg.Payments.MarkPaid)

	requireToken := middleware.RequireToken(cfg.Secret, cfg.Log)
	adminOnly := middleware.RequireRole(cfg.Roles, cfg.Log, models.RoleAdmin)
	sellerOrAdmin := middleware.RequireRole(cfg.Roles, cfg.Log, models.RoleSeller, models.RoleAdmin)

	// Self-scoped role checks: token required, path email must match principal.
	self := r.Group("/", requireToken)
	{
		self.GET("/users/admin/:email", cfg.Accounts.IsAdmin)
		self.GET("/users/seller/:email", cfg.Accounts.IsSeller)
		self.GET("/seller/revenue/:email", cfg.Reports.SellerRevenue)
	}

	admin := r.Group("/", requireToken, adminOnly)
	{
		admin.GET("/admin/overview", cfg.Reports.Overview)
		admin.GET("/sales", cfg.Reports.Sales)
		admin.GET("/admin/payments", cfg.Reports.AllPayments)
		admin.PUT("/users/admin/:id", cfg.Accounts.MakeAdmin)
		admin.POST("/categories", cfg.Categories.Create)
		admin.PUT("/categories/:id", cfg.Categories.Update)
		admin.DELETE("/categories/:id", cfg.Categories.Delete)
		admin.PATCH("/advertisements/:id/slider", cfg.Ads.ToggleSlider)
	}

	seller := r.Group("/", requireToken, sellerOrAdmin)
	{
		seller.POST("/medicines", cfg.Catalog.AddMedicine)
		seller.PUT("/medicines/:id", cfg.Catalog.UpdateMedicine)
		seller.DELETE("/medicines/:id", cfg.Catalog.DeleteMedicine)
		seller.POST("/advertisements", cfg.Ads.Create)
	}

	return r
}
