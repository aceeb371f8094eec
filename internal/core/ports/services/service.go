package services

import "context"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Account      AccountSvcFacade
	ExchangeRate ExchangeRateSvcFacade
	Exchange     ExchangeSvcFacade
	Transfer     Transferer
}

// StaticDataService loads static data (liquidity accounts, rates) at startup.
type StaticDataService interface {
	InitializeStaticData(ctx context.Context) error
}
