package services

import (
	portsrepo "github.com/ThotaSridharRao/Ecom-sub000/internal/core/ports/repositories"
	portssvc "github.com/ThotaSridharRao/Ecom-sub000/internal/core/ports/services"
	"github.com/ThotaSridharRao/Ecom-sub000/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Product = NewProductService(repos.ProductRepo)
	container.Party = NewPartyService(repos.PartyRepo, repos.InvoiceRepo, repos.PurchaseRepo, repos.PaymentRepo)
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, repos.ProductRepo, repos.PartyRepo)
	container.Purchase = NewPurchaseService(repos.PurchaseRepo, repos.ProductRepo, repos.PartyRepo)
	container.Reporting = NewReportingService(repos.ProductRepo)
	container.User = NewUserService(repos.UserRepo)

	container.Token = NewTokenService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)
	container.APIToken = NewAPITokenService(repos.APITokenRepo, container.User)

	return container
}

// Compile-time interface implementation checks.
var (
	_ portssvc.ProductSvcFacade   = (*productService)(nil)
	_ portssvc.InvoiceSvcFacade   = (*invoiceService)(nil)
	_ portssvc.PurchaseSvcFacade  = (*purchaseService)(nil)
	_ portssvc.PartySvcFacade     = (*partyService)(nil)
	_ portssvc.ReportingSvcFacade = (*reportingService)(nil)
	_ portssvc.UserSvcFacade      = (*userService)(nil)
)
