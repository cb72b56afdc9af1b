package usecase

import (
	"sort"
	"sync"
)

// WishlistService is a session-scoped set of product IDs. Membership only:
// toggling twice is a no-op. Nothing is persisted beyond the session.
type WishlistService struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func NewWishlistService() *WishlistService {
	return &WishlistService{
		ids: make(map[string]struct{}),
	}
}

// Toggle flips membership and reports the new state: true when the product
// is now in the wishlist.
func (s *WishlistService) Toggle(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ids[productID]; ok {
		delete(s.ids, productID)
		return false
	}
	s.ids[productID] = struct{}{}
	return true
}

// Contains is a pure membership test.
func (s *WishlistService) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[productID]
	return ok
}

// Items lists the wishlist product IDs. The set is unordered; IDs come back
// sorted so responses are deterministic.
func (s *WishlistService) Items() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
