package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"nyumbanii_maintenance/internal/adapter/http/handlers"
	"nyumbanii_maintenance/internal/adapter/http/routes"
	"nyumbanii_maintenance/internal/adapter/persistence/memory"
	"nyumbanii_maintenance/internal/adapter/persistence/repository"
	"nyumbanii_maintenance/internal/infrastructure/database"
	"nyumbanii_maintenance/internal/infrastructure/messaging"
	"nyumbanii_maintenance/internal/infrastructure/settings"
	"nyumbanii_maintenance/internal/usecase"
	"nyumbanii_maintenance/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	storeDriverDynamoDB = "dynamodb"
	storeDriverMemory   = "memory"
)

// app holds the wired adapters and use cases shared by every command.
type app struct {
	requests   interfaces.IRequestRepository
	quotes     interfaces.IQuoteRepository
	transactor interfaces.IApprovalTransactor
	dispatcher interfaces.INotificationDispatcher
	staff      *repository.StaffGormRepository
	settings   *settings.ViperStore
	publisher  interfaces.IEventPublisher
	consumer   interfaces.IEventConsumer

	reconciler    *usecase.Reconciler
	requestUC     *usecase.RequestUseCase
	approvalUC    *usecase.ApprovalUseCase
	assignmentUC  *usecase.AssignmentUseCase
	budgetUC      *usecase.BudgetUseCase
	settingsUC    *usecase.SettingsUseCase
	notifications *usecase.NotificationUseCase

	closers []func() error
}

func withApp(fn func(cmd *cobra.Command, a *app) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		a, err := newApp(cmd.Context(), cfgFile)
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(cmd, a)
	}
}

func newApp(ctx context.Context, settingsFile string) (*app, error) {
	a := &app{}

	if err := a.wireStore(ctx); err != nil {
		return nil, err
	}

	staffDB, err := database.OpenStaffDB(ctx, database.StaffDBConfigFromEnv())
	if err != nil {
		return nil, err
	}
	if sqlDB, err := staffDB.DB(); err == nil {
		a.closers = append(a.closers, sqlDB.Close)
	}
	a.staff = repository.NewStaffGormRepository(staffDB)
	if err := a.staff.Migrate(ctx); err != nil {
		a.Close()
		return nil, err
	}

	a.settings, err = settings.NewViperStore(settingsFile)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.wireMessaging()

	a.reconciler = usecase.NewReconciler(a.requests, a.quotes, getenvDuration("RECONCILE_INTERVAL", time.Minute))
	a.requestUC = usecase.NewRequestUseCase(a.requests, a.quotes, a.settings, a.publisher)
	a.approvalUC = usecase.NewApprovalUseCase(a.requests, a.quotes, a.transactor, a.publisher, a.reconciler)
	a.assignmentUC = usecase.NewAssignmentUseCase(a.requests, a.staff, a.publisher)
	a.budgetUC = usecase.NewBudgetUseCase(a.requests, a.settings)
	a.settingsUC = usecase.NewSettingsUseCase(a.settings)
	a.notifications = usecase.NewNotificationUseCase(a.staff, a.dispatcher)
	return a, nil
}

// wireStore selects the document store from STORE_DRIVER (default dynamodb).
func (a *app) wireStore(ctx context.Context) error {
	driver := strings.ToLower(getenvDefault("STORE_DRIVER", storeDriverDynamoDB))
	switch driver {
	case storeDriverMemory:
		store := memory.NewStore()
		a.requests = store.Requests()
		a.quotes = store.Quotes()
		a.dispatcher = store.Notifications()
	case storeDriverDynamoDB:
		client, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return err
		}
		a.requests = repository.NewRequestDynamoRepository(client)
		a.quotes = repository.NewQuoteDynamoRepository(client)
		a.dispatcher = repository.NewNotificationDynamoDispatcher(client)
		if repository.QuoteTransactionsEnabled() {
			a.transactor = repository.NewApprovalDynamoTransactor(client)
		}
	default:
		return errors.Errorf("unsupported STORE_DRIVER %q", driver)
	}
	log.Printf("[cmd] document store driver=%s transactions=%t", driver, a.transactor != nil)
	return nil
}

// wireMessaging uses RabbitMQ when RABBITMQ_URL is set and falls back to the in-process
// bus when the broker is unreachable.
func (a *app) wireMessaging() {
	cfg := messaging.RabbitConfigFromEnv()
	if cfg.Enabled() {
		pub, err := messaging.NewRabbitPublisher(cfg)
		if err == nil {
			cons, cerr := messaging.NewRabbitConsumer(cfg)
			if cerr == nil {
				a.publisher, a.consumer = pub, cons
				a.closers = append(a.closers, pub.Close, cons.Close)
				log.Printf("[cmd] event bus driver=rabbitmq exchange=%s queue=%s", cfg.Exchange, cfg.Queue)
				return
			}
			_ = pub.Close()
			err = cerr
		}
		log.Printf("[cmd] rabbitmq unavailable, using in-process bus err=%v", err)
	}

	bus := messaging.NewChannelBus(0)
	a.publisher, a.consumer = bus, bus
	a.closers = append(a.closers, bus.Close)
	log.Printf("[cmd] event bus driver=channel")
}

func (a *app) router() *gin.Engine {
	return routes.NewRouter(routes.Handlers{
		Requests:  handlers.NewRequestHandler(a.requestUC, a.assignmentUC),
		Approvals: handlers.NewApprovalHandler(a.approvalUC),
		Budget:    handlers.NewBudgetHandler(a.budgetUC),
		Settings:  handlers.NewSettingsHandler(a.settingsUC),
	})
}

// Close releases resources in reverse order of acquisition.
func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Printf("[cmd] close failed err=%v", err)
		}
	}
	a.closers = nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("[cmd] invalid duration, using default key=%s value=%s default=%s", key, v, def)
		return def
	}
	return d
}
