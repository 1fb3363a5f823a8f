package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"soko.backend/internal/interfaces/http/handlers"
	"soko.backend/internal/interfaces/http/middleware"
)

const marketCacheTTL = 5 * time.Minute

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	customerHandler *handlers.CustomerHandler
	merchantHandler *handlers.MerchantHandler
	marketHandler   *handlers.MarketHandler
	productHandler  *handlers.ProductHandler
	adHandler       *handlers.AdHandler
	cartHandler     *handlers.CartHandler
	ratingHandler   *handlers.RatingHandler
	marketerHandler *handlers.MarketerHandler
	statsHandler    *handlers.StatsHandler
	customerAuth    gin.HandlerFunc
	merchantAuth    gin.HandlerFunc
	uploadsDir      string
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	r.Static("/uploads", d.uploadsDir)

	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/customers/register", d.authHandler.RegisterCustomer)
			auth.POST("/customers/login", d.authHandler.LoginCustomer)
			auth.POST("/merchants/register", d.authHandler.RegisterMerchant)
			auth.POST("/merchants/login", d.authHandler.LoginMerchant)
			auth.POST("/verify-email", d.authHandler.VerifyEmail)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.POST("/logout", d.authHandler.Logout)
			auth.POST("/forgot-password", d.authHandler.ForgotPassword)
			auth.POST("/reset-password", d.authHandler.ResetPassword)
		}

		// Customer profile routes
		customers := v1.Group("/customers")
		customers.Use(d.customerAuth)
		{
			customers.GET("/me", d.customerHandler.GetProfile)
			customers.PATCH("/me", d.customerHandler.UpdateProfile)
			customers.DELETE("/me", d.customerHandler.DeleteAccount)
			customers.POST("/me/addresses", d.customerHandler.AddAddress)
			customers.DELETE("/me/addresses/:addressId", d.customerHandler.DeleteAddress)
		}

		// Merchant profile routes
		merchants := v1.Group("/merchants")
		merchants.Use(d.merchantAuth)
		{
			merchants.GET("/me", d.merchantHandler.GetProfile)
			merchants.PATCH("/me", d.merchantHandler.UpdateProfile)
			merchants.DELETE("/me", d.merchantHandler.DeleteAccount)
			merchants.POST("/me/market", d.merchantHandler.JoinMarket)
			merchants.DELETE("/me/market", d.merchantHandler.LeaveMarket)
			merchants.POST("/me/marketer", d.merchantHandler.ConnectMarketer)
			merchants.POST("/me/addresses", d.merchantHandler.AddAddress)
			merchants.DELETE("/me/addresses/:addressId", d.merchantHandler.DeleteAddress)
		}

		// Market routes: reads public and cached, writes admin only
		markets := v1.Group("/markets")
		{
			markets.GET("", middleware.CacheMiddleware(marketCacheTTL), d.marketHandler.List)
			markets.GET("/:id", middleware.CacheMiddleware(marketCacheTTL), d.marketHandler.Get)
			markets.GET("/:id/merchants", d.marketHandler.ListMerchants)

			markets.POST("", d.customerAuth, middleware.RequireAdmin(), d.marketHandler.Create)
			markets.PATCH("/:id", d.customerAuth, middleware.RequireAdmin(), d.marketHandler.Update)
			markets.DELETE("/:id", d.customerAuth, middleware.RequireAdmin(), d.marketHandler.Delete)
		}

		// Product routes: reads public, writes merchant only
		products := v1.Group("/products")
		{
			products.GET("", d.productHandler.List)
			products.GET("/:id", d.productHandler.Get)
			products.GET("/:id/ratings", d.ratingHandler.ListByProduct)

			products.POST("", d.merchantAuth, d.productHandler.Create)
			products.PATCH("/:id", d.merchantAuth, d.productHandler.Update)
			products.DELETE("/:id", d.merchantAuth, d.productHandler.Delete)
			products.POST("/:id/images", d.merchantAuth, d.productHandler.UploadImages)
		}

		// Ad routes
		ads := v1.Group("/ads")
		{
			ads.GET("", d.adHandler.List)
			ads.POST("/:id/view", d.adHandler.TrackView)
			ads.POST("/:id/click", d.adHandler.TrackClick)

			ads.POST("/free/:productId", d.merchantAuth, d.adHandler.ActivateFree)
			ads.POST("/initialize/:level/:productId", d.merchantAuth, d.adHandler.InitializePayment)
			ads.POST("/verify/:reference", d.merchantAuth, middleware.InflightGuard("reference"), d.adHandler.VerifyPayment)
		}

		// Cart routes (customer only)
		cart := v1.Group("/cart")
		cart.Use(d.customerAuth)
		{
			cart.GET("", d.cartHandler.List)
			cart.PUT("", d.cartHandler.Update)
			cart.DELETE("/:productId", d.cartHandler.Remove)
			cart.DELETE("", d.cartHandler.Clear)
		}

		// Rating routes (customer only)
		ratings := v1.Group("/ratings")
		ratings.Use(d.customerAuth)
		{
			ratings.PUT("", d.ratingHandler.Rate)
			ratings.DELETE("/:id", d.ratingHandler.Delete)
		}

		// Marketer routes
		marketers := v1.Group("/marketers")
		marketers.Use(d.customerAuth)
		{
			marketers.POST("", d.marketerHandler.Register)
			marketers.GET("/me", middleware.RequireMarketer(), d.marketerHandler.GetProfile)
			marketers.GET("/me/earnings", middleware.RequireMarketer(), d.marketerHandler.Earnings)

			marketers.PATCH("/:id/verify", middleware.RequireAdmin(), d.marketerHandler.Verify)
			marketers.POST("/:id/payout", middleware.RequireAdmin(), d.marketerHandler.Payout)
		}

		// Admin stats routes
		stats := v1.Group("/stats")
		stats.Use(d.customerAuth, middleware.RequireAdmin())
		{
			stats.GET("", d.statsHandler.Platform)
			stats.GET("/transactions", d.statsHandler.Transactions)
		}
	}
}
