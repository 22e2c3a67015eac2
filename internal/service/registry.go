package service

import "github.com/delote/beauty-web/internal/apiclient"

// Registry bundles every read service behind one constructor so handlers
// only wire a single dependency.
type Registry struct {
	Categories *Categories
	Services   *Services
	Prices     *Prices
	Products   *Products
	Works      *Works
	Masters    *Masters
	Auth       *Auth
}

func NewRegistry(api *apiclient.Client) *Registry {
	return &Registry{
		Categories: NewCategories(api),
		Services:   NewServices(api),
		Prices:     NewPrices(api),
		Products:   NewProducts(api),
		Works:      NewWorks(api),
		Masters:    NewMasters(api),
		Auth:       NewAuth(api),
	}
}
