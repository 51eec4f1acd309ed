package repositories

// RepositoryProvider holds the host capabilities needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	BalanceRepo  BalanceReader
	BookRepo     BookReader
	SecurityRepo SecurityRepositoryFacade
	Clock        HostClock
}
