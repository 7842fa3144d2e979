package router

import "net/http"

type LedgerRouteRegistrar interface {
	RegisterRoutes(mux *http.ServeMux, authMiddleware func(http.Handler) http.Handler)
}

func New(ledgerController LedgerRouteRegistrar, authMiddleware func(http.Handler) http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	registerSwaggerRoutes(mux)

	if ledgerController != nil {
		ledgerController.RegisterRoutes(mux, authMiddleware)
	}

	return mux
}
