package quota

import "context"

// Service orchestrates planning-credit logic.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// UseCredit deducts one credit from the user's monthly allowance. If the user
// row does not exist yet it is initialised and the credit is immediately
// consumed. Returns ErrQuotaExhausted when the month's allowance is gone.
func (s *Service) UseCredit(ctx context.Context, uid string) error {
	err := s.store.UseCredit(ctx, uid)
	if err != ErrQuotaExhausted {
		return err
	}

	// Row may be missing: try to create it, then retry the deduction once.
	if initErr := s.store.EnsureUser(ctx, uid); initErr != nil {
		return initErr
	}
	return s.store.UseCredit(ctx, uid)
}
