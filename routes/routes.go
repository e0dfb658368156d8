package routes

import (
	"salt-n-sugar-backend/handlers"
	"salt-n-sugar-backend/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the public storefront surface and the Bearer-guarded
// back office onto the engine.
func SetupRoutes(r *gin.Engine) {
	// Public storefront
	public := r.Group("/api")
	{
		public.POST("/auth/signup", handlers.SignUp)
		public.POST("/auth/login", handlers.Login)
		public.POST("/admin/login", handlers.AdminLogin)

		// GET on these two is public; the handlers widen the result set
		// when the caller presents a valid admin token.
		public.GET("/admin/products", handlers.ListProducts)
		public.GET("/admin/hero-photos", handlers.ListHeroPhotos)

		public.GET("/reviews", handlers.ListApprovedReviews)
		public.POST("/reviews", handlers.CreateReview)
		public.DELETE("/reviews/:id", handlers.DeleteOwnReview)
	}

	// Admin back office
	admin := r.Group("/api/admin", middleware.AuthRequired())
	{
		admin.PUT("/change-password", handlers.ChangePassword)

		admin.POST("/products", handlers.CreateProduct)
		admin.PUT("/products", handlers.UpdateProduct)
		admin.DELETE("/products", handlers.DeleteProduct)

		admin.GET("/orders", handlers.ListOrders)
		admin.POST("/orders", handlers.CreateOrder)
		admin.PUT("/orders", handlers.UpdateOrder)
		admin.DELETE("/orders", handlers.DeleteOrder)
		admin.GET("/orders/export", handlers.ExportOrders)

		admin.GET("/reviews", handlers.AdminListReviews)
		admin.PUT("/reviews", handlers.AdminUpdateReview)
		admin.DELETE("/reviews", handlers.AdminDeleteReview)

		admin.POST("/hero-photos", handlers.CreateHeroPhoto)
		admin.PUT("/hero-photos", handlers.ToggleHeroPhoto)
		admin.DELETE("/hero-photos", handlers.DeleteHeroPhoto)

		admin.GET("/users", handlers.AdminListUsers)

		admin.GET("/analytics", handlers.GetAnalytics)
	}
}
