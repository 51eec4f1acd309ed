package services

import (
	"log/slog"

	portsrepo "github.com/SscSPs/md_util/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/md_util/internal/core/ports/services"
	"github.com/SscSPs/md_util/internal/platform/config"
	"github.com/SscSPs/md_util/internal/platform/messages"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Change notices are localized and priced per config
	notifier := NewLogNotifier(
		WithNotifierLogger(logger),
		WithNotifierBundle(messages.Default(cfg.Locale)),
		WithDisplayCurrency(cfg.DisplayCurrency),
	)
	reconciler := NewRateService(WithPriceChangeNotifier(notifier))
	snapshots := NewSnapshotService(reconciler, WithReconcileOnRead(cfg.ReconcileOnRead))

	container.Security = NewSecurityService(
		repos.SecurityRepo,
		reconciler,
		WithSnapshotService(snapshots),
		WithSecurityLogger(logger),
	)

	balances := NewBalanceService(repos.BalanceRepo, WithBalanceLogger(logger))
	container.Reporting = NewReportingService(repos.BookRepo, balances, WithReportingLogger(logger), WithHostClock(repos.Clock))

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.SecuritySvc  = (*securityService)(nil)
	_ portssvc.ReportingSvc = (*reportingService)(nil)
)
