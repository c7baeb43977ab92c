package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"

	"oyow/bookings"
	"oyow/contact"
	"oyow/db"
	"oyow/destinations"
	"oyow/logger"
	"oyow/ratelim"
	"oyow/rdx"
	"oyow/relay"
	"oyow/routes"
	"oyow/seed"
	"oyow/store"
	"oyow/tours"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Log.Info().
			Str("method", r.Method).
			Str("path", r.RequestURI).
			Str("remote", r.RemoteAddr).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func setupRouter(hub *relay.Hub) *httprouter.Router {
	tourStore := &store.MongoTours{Coll: db.ToursCollection}
	bookingStore := &store.MongoBookings{Coll: db.BookingsCollection}
	contactStore := &store.MongoContacts{Coll: db.ContactsCollection}
	destinationStore := &store.MongoDestinations{Coll: db.DestinationsCollection}

	rateLimiter := ratelim.NewRateLimiter()

	router := httprouter.New()
	router.GET("/health", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.Write([]byte("200"))
	})

	routes.AddStatusRoutes(router)
	routes.AddTourRoutes(router, tours.NewHandler(tourStore))
	routes.AddBookingRoutes(router, bookings.NewHandler(tourStore, bookingStore), rateLimiter)
	routes.AddContactRoutes(router, contact.NewHandler(contactStore), rateLimiter)
	routes.AddDestinationRoutes(router, destinations.NewHandler(destinationStore))
	routes.AddSOSRoutes(router, hub, rateLimiter)
	routes.AddStaticRoutes(router)

	return router
}

func main() {
	runSeed := flag.Bool("seed", false, "seed the tours collection with sample data and exit")
	flag.Parse()

	// load .env if present
	if err := godotenv.Load(); err != nil {
		logger.Log.Info().Msg("No .env file found; using system environment")
	}
	logger.Init()

	// An unreachable store is not fatal: reads degrade to the static
	// catalog and writes are accepted best-effort.
	if err := db.Init(); err != nil {
		logger.Log.Warn().Err(err).Msg("MongoDB unreachable, continuing with fallback data")
	}
	rdx.Init()

	if *runSeed {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := seed.Run(ctx, &store.MongoTours{Coll: db.ToursCollection}); err != nil {
			logger.Log.Fatal().Err(err).Msg("seeding failed")
		}
		logger.Log.Info().Msg("sample tours seeded")
		return
	}

	// read port
	port := os.Getenv("PORT")
	if port == "" {
		port = ":3001"
	} else if port[0] != ':' {
		port = ":" + port
	}

	// initialize SOS relay hub
	hub := relay.NewHub()
	go hub.Run()

	router := setupRouter(hub)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	server.RegisterOnShutdown(func() {
		hub.Stop()
	})

	go func() {
		logger.Log.Info().Str("addr", port).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("ListenAndServe error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Log.Info().Msg("shutdown signal received; shutting down gracefully")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("graceful shutdown failed")
	}
	db.Close(ctx)

	logger.Log.Info().Msg("server stopped cleanly")
}
