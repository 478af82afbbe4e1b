package app

import (
	"github.com/iov-one/bazaar"
	"github.com/iov-one/bazaar/x/cash"
	"github.com/iov-one/bazaar/x/entropy"
	"github.com/iov-one/bazaar/x/market"
)

// Stack groups all extensions of the application and the way they are
// initialized and reached.
type Stack struct {
	Cash    cash.BaseController
	Entropy entropy.RecentHashes
	Market  *market.Service
	// Events collects the market events of the operation being executed.
	Events *market.Recorder

	Init   bazaar.Initializer
	Router *Router
}

// NewStack wires the cash, entropy and market extensions together.
func NewStack() Stack {
	ctrl := cash.NewController(cash.NewBucket())
	hashes := entropy.NewRecentHashes()
	events := &market.Recorder{}
	svc := market.NewService(ctrl, hashes, events)

	router := NewRouter()
	RegisterMarketRoutes(router, svc)

	return Stack{
		Cash:    ctrl,
		Entropy: hashes,
		Market:  svc,
		Events:  events,
		Init: bazaar.ChainInitializers(
			cash.Initializer{},
			market.Initializer{Service: svc},
		),
		Router: router,
	}
}
