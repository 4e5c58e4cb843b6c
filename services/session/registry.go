package session

import (
	"context"
	"sync"
	"time"

	"solarcare/models"
	"solarcare/services/booking"
	"solarcare/services/cart"
	"solarcare/services/checkout"

	"go.uber.org/zap"
)

// Workspace bundles the cart, booking ledger and checkout flow of one user.
type Workspace struct {
	UserID   string
	Cart     *cart.Store
	Bookings *booking.Store
	Checkout *checkout.Service

	mu sync.Mutex
}

// Do runs fn with exclusive access to the workspace.
func (w *Workspace) Do(fn func(w *Workspace) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return fn(w)
}

// Registry hands out one lazily-created Workspace per user ID.
type Registry struct {
	Ledger booking.Ledger
	Logger *zap.Logger

	mu         sync.Mutex
	workspaces map[string]*Workspace
}

func NewRegistry(ledger booking.Ledger, logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		Ledger:     ledger,
		Logger:     logger,
		workspaces: make(map[string]*Workspace),
	}
}

const historyLoadTimeout = 5 * time.Second

// Get returns the user's workspace, creating it on first use. A new workspace
// starts with the user's bookings from the ledger when the ledger can be read.
// The history read holds only the new workspace's lock, so other users are not
// blocked behind it.
func (r *Registry) Get(ctx context.Context, userID string) *Workspace {
	r.mu.Lock()
	if ws, ok := r.workspaces[userID]; ok {
		r.mu.Unlock()
		return ws
	}

	logger := r.Logger.With(zap.String("userID", userID))
	c := cart.NewStore()
	c.Subscribe(func(snap models.CartSnapshot) {
		logger.Debug("cart changed",
			zap.Int("lines", len(snap.Items)),
			zap.Int("totalQuantity", snap.TotalQuantity),
			zap.Float64("totalPrice", snap.TotalPrice),
		)
	})
	b := booking.NewStore(r.Ledger, logger)

	ws := &Workspace{
		UserID:   userID,
		Cart:     c,
		Bookings: b,
		Checkout: checkout.NewService(c, b, userID, logger),
	}
	ws.mu.Lock()
	r.workspaces[userID] = ws
	r.mu.Unlock()

	r.restoreHistory(ctx, b, userID, logger)
	ws.mu.Unlock()
	return ws
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}

// restoreHistory loads past bookings into b. A failed read leaves the history
// empty; the user can still order.
func (r *Registry) restoreHistory(ctx context.Context, b *booking.Store, userID string, logger *zap.Logger) {
	history, ok := r.Ledger.(booking.History)
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, historyLoadTimeout)
	defer cancel()

	records, err := history.GetByUserID(ctx, userID)
	if err != nil {
		logger.Warn("Failed to load booking history", zap.Error(err))
		return
	}
	b.Restore(records)
	logger.Debug("booking history restored", zap.Int("bookings", len(records)))
}
