package services

// ServiceContainer aggregates every service facade for handler wiring.
type ServiceContainer struct {
	Product     ProductSvcFacade
	Invoice     InvoiceSvcFacade
	Purchase    PurchaseSvcFacade
	Party       PartySvcFacade
	Reporting   ReportingSvcFacade
	User        UserSvcFacade
	Token       TokenSvcFacade
	GoogleOAuth GoogleOAuthHandlerSvcFacade
	APIToken    APITokenSvc
}
