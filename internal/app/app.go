package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/stpnv0/RoomDesk/internal/config"
	"github.com/stpnv0/RoomDesk/internal/domain"
	"github.com/stpnv0/RoomDesk/internal/handler"
	"github.com/stpnv0/RoomDesk/internal/middleware"
	"github.com/stpnv0/RoomDesk/internal/notification"
	"github.com/stpnv0/RoomDesk/internal/repository"
	"github.com/stpnv0/RoomDesk/internal/router"
	"github.com/stpnv0/RoomDesk/internal/scheduler"
	"github.com/stpnv0/RoomDesk/internal/service"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg         *config.Config
	log         logger.Logger
	bookingRepo *repository.BookingRepository
	roomRepo    *repository.RoomRepository
	httpServer  *http.Server
	scheduler   *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"RoomDesk",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	app.initStore()

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStore() {
	var (
		bookings []domain.BookingRequest
		rooms    []domain.Room
	)
	if a.cfg.Seed.Enabled {
		bookings = repository.SeedBookings()
		rooms = repository.SeedRooms()
	}

	a.bookingRepo = repository.NewBookingRepo(bookings)
	a.roomRepo = repository.NewRoomRepo(rooms)

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "in-memory store ready",
		logger.Int("bookings", len(bookings)),
		logger.Int("rooms", len(rooms)),
	)
}

func (a *App) initServices() error {
	feed := notification.NewFeed(a.cfg.Notifications.TTL, a.cfg.Notifications.Capacity)

	tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.AdminChatID, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}
	notifier := notification.Fanout{feed, tg}

	bookingService := service.NewBookingService(
		a.bookingRepo,
		a.roomRepo,
		notifier,
		a.log,
		a.cfg.Booking.StrictTransitions,
	)
	roomService := service.NewRoomService(a.roomRepo, notifier, a.log, a.cfg.Rooms.ValidateUpdates)

	a.scheduler = scheduler.New(
		feed,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(bookingService, roomService, feed)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.logStoreSummary(shutdownCtx)
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

// logStoreSummary reports what the in-memory store held at shutdown.
func (a *App) logStoreSummary(ctx context.Context) {
	bookings, err := a.bookingRepo.List(ctx)
	if err != nil {
		a.log.LogAttrs(ctx, logger.WarnLevel, "list bookings at shutdown",
			logger.String("error", err.Error()),
		)
		return
	}
	rooms, err := a.roomRepo.List(ctx)
	if err != nil {
		a.log.LogAttrs(ctx, logger.WarnLevel, "list rooms at shutdown",
			logger.String("error", err.Error()),
		)
		return
	}

	counts := countByStatus(bookings)

	a.log.LogAttrs(ctx, logger.InfoLevel, "in-memory store discarded",
		logger.Int("rooms", len(rooms)),
		logger.Int("pending", counts[domain.BookingStatusPending]),
		logger.Int("approved", counts[domain.BookingStatusApproved]),
		logger.Int("rejected", counts[domain.BookingStatusRejected]),
	)
}

func countByStatus(bookings []*domain.BookingRequest) map[domain.BookingStatus]int {
	counts := make(map[domain.BookingStatus]int, 3)
	for _, b := range bookings {
		counts[b.Status]++
	}
	return counts
}
