package usecase

import (
	"context"
	"sync"
	"voltbay-storefront/internal/domain"
	"voltbay-storefront/pkg/logger"
)

// CartService presents one cart abstraction per session. While anonymous,
// mutations apply to a local ordered line list keyed by computed line identity.
// After Authenticate, every mutation goes to the upstream and the local view is
// replaced wholesale from the server's returned state — never patched in place.
// A failed upstream mutation is dropped silently and the pre-mutation view
// stands; there are no retries.
type CartService struct {
	mu     sync.Mutex
	api    domain.CartAPI
	maxQty int
	token  string
	lines  []domain.CartLine
}

func NewCartService(api domain.CartAPI, maxQty int) *CartService {
	return &CartService{
		api:    api,
		maxQty: maxQty,
	}
}

// Authenticate switches the cart to server-backed mode. Anonymous local lines
// are discarded, not merged: login starts from the server's cart. If the fetch
// fails the cart stays authenticated with an empty view until the next
// successful call replaces it.
func (s *CartService) Authenticate(ctx context.Context, token string) {
	s.mu.Lock()
	s.token = token
	s.lines = nil
	s.mu.Unlock()

	serverLines, err := s.api.GetCart(ctx, token)
	if err != nil {
		logger.Warn().Err(err).Msg("Cart: server cart fetch failed on login")
		return
	}
	s.replaceFromServer(serverLines)
}

// Deauthenticate returns the cart to a fresh anonymous state.
func (s *CartService) Deauthenticate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.lines = nil
}

func (s *CartService) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// Add puts one unit of a product/variant pairing in the cart. An existing line
// with the same identity gains quantity instead of duplicating.
func (s *CartService) Add(ctx context.Context, product domain.Product, variant *domain.Variant) domain.Cart {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token != "" {
		serverLines, err := s.api.AddCartItem(ctx, token, product.ID, 1, variant)
		if err != nil {
			logger.Warn().Err(err).Str("product_id", product.ID).Msg("Cart: server add failed, keeping last good state")
			return s.View()
		}
		s.replaceFromServer(serverLines)
		return s.View()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lineID := domain.LineID(product.ID, variant)
	for i := range s.lines {
		if s.lines[i].LineID == lineID {
			if s.lines[i].Quantity >= s.maxQty {
				logger.Warn().Str("line_id", lineID).Int("max", s.maxQty).Msg("Cart: quantity cap reached")
				return s.viewLocked()
			}
			s.lines[i].Quantity++
			return s.viewLocked()
		}
	}

	s.lines = append(s.lines, domain.CartLine{
		LineID:   lineID,
		Product:  product,
		Variant:  variant,
		Quantity: 1,
	})
	return s.viewLocked()
}

// UpdateQuantity sets an absolute quantity on a line. Quantity <= 0 removes
// the line entirely; a line never exists with quantity below 1.
func (s *CartService) UpdateQuantity(ctx context.Context, lineID string, quantity int) domain.Cart {
	if quantity <= 0 {
		return s.Remove(ctx, lineID)
	}
	if quantity > s.maxQty {
		quantity = s.maxQty
	}

	s.mu.Lock()
	token := s.token
	serverID := s.serverIDLocked(lineID)
	s.mu.Unlock()

	if token != "" {
		if serverID == "" {
			// Unresolvable server line: silent no-op.
			return s.View()
		}
		serverLines, err := s.api.UpdateCartItem(ctx, token, serverID, quantity)
		if err != nil {
			logger.Warn().Err(err).Str("line_id", lineID).Msg("Cart: server update failed, keeping last good state")
			return s.View()
		}
		s.replaceFromServer(serverLines)
		return s.View()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].LineID == lineID {
			s.lines[i].Quantity = quantity
			break
		}
	}
	return s.viewLocked()
}

// Remove drops a line by its identity.
func (s *CartService) Remove(ctx context.Context, lineID string) domain.Cart {
	s.mu.Lock()
	token := s.token
	serverID := s.serverIDLocked(lineID)
	s.mu.Unlock()

	if token != "" {
		if serverID == "" {
			return s.View()
		}
		serverLines, err := s.api.RemoveCartItem(ctx, token, serverID)
		if err != nil {
			logger.Warn().Err(err).Str("line_id", lineID).Msg("Cart: server remove failed, keeping last good state")
			return s.View()
		}
		s.replaceFromServer(serverLines)
		return s.View()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.LineID != lineID {
			kept = append(kept, line)
		}
	}
	s.lines = kept
	return s.viewLocked()
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context) domain.Cart {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token != "" {
		serverLines, err := s.api.ClearCart(ctx, token)
		if err != nil {
			logger.Warn().Err(err).Msg("Cart: server clear failed, keeping last good state")
			return s.View()
		}
		s.replaceFromServer(serverLines)
		return s.View()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
	return s.viewLocked()
}

// View returns the current cart with derived totals recomputed.
func (s *CartService) View() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *CartService) viewLocked() domain.Cart {
	cart := domain.Cart{
		Lines:         make([]domain.CartLine, len(s.lines)),
		Authenticated: s.token != "",
	}
	copy(cart.Lines, s.lines)
	for _, line := range s.lines {
		cart.TotalItems += line.Quantity
		cart.TotalPrice += domain.UnitPrice(line.Product, line.Variant) * float64(line.Quantity)
	}
	return cart
}

func (s *CartService) serverIDLocked(lineID string) string {
	for _, line := range s.lines {
		if line.LineID == lineID {
			return line.ServerID
		}
	}
	return ""
}

// replaceFromServer maps the server's full cart state onto the local view.
// The embedded product on each line is a partial, display-only snapshot built
// from whatever denormalized fields the server line carried; absent fields
// stay zero and are never fetched separately.
func (s *CartService) replaceFromServer(serverLines []domain.ServerCartLine) {
	lines := make([]domain.CartLine, 0, len(serverLines))
	for _, sl := range serverLines {
		lines = append(lines, domain.CartLine{
			LineID:   domain.LineID(sl.ProductID, sl.Variant),
			ServerID: sl.ID,
			Product: domain.Product{
				ID:         sl.ProductID,
				Title:      sl.Name,
				Image:      sl.Image,
				Price:      sl.Price,
				CategoryID: sl.Category,
			},
			Variant:  sl.Variant,
			Quantity: sl.Quantity,
		})
	}

	s.mu.Lock()
	s.lines = lines
	s.mu.Unlock()
}
