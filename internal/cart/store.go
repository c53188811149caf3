package cart

import (
	"fmt"
	"log"
	"sync"
	"time"

	"verse-storefront/internal/domain"
	"verse-storefront/internal/localstore"
)

// Storage keys match the web client's localStorage names so a migrated
// snapshot rehydrates unchanged.
const (
	cartKey  = "verseandme_cart"
	savedKey = "savedForLater"
)

// Store holds the in-memory cart line items and the saved-for-later list.
// Every mutation persists a full snapshot; rehydration happens once in New.
// A mutex guards the lists since HTTP handlers may call concurrently.
type Store struct {
	mu     sync.Mutex
	items  []domain.CartLineItem
	saved  []domain.CartLineItem
	store  localstore.Store
	logger *log.Logger
	now    func() time.Time
}

// New builds a Store and attempts one rehydration from storage. A corrupt
// snapshot falls back to an empty cart and is logged, not returned.
func New(ls localstore.Store, logger *log.Logger) *Store {
	s := &Store{
		store:  ls,
		logger: logger,
		now:    time.Now,
	}
	var items []domain.CartLineItem
	if _, err := ls.Get(cartKey, &items); err != nil {
		logger.Printf("load cart: %v", err)
	} else {
		s.items = items
	}
	var saved []domain.CartLineItem
	if _, err := ls.Get(savedKey, &saved); err != nil {
		logger.Printf("load saved items: %v", err)
	} else {
		s.saved = saved
	}
	return s
}

// Add merges into an existing line when (variantId, options) matches, summing
// quantities; otherwise it appends a new line with a generated id. The stored
// line is returned.
func (s *Store) Add(item domain.CartLineItem) domain.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := domain.OptionsKey(item.Options)
	for i := range s.items {
		if s.items[i].VariantID == item.VariantID && domain.OptionsKey(s.items[i].Options) == key {
			s.items[i].Quantity += item.Quantity
			s.persistCart()
			return s.items[i]
		}
	}

	item.ID = fmt.Sprintf("%s-%d", item.VariantID, s.now().UnixMilli())
	s.items = append(s.items, item)
	s.persistCart()
	return item
}

// UpdateQuantity sets the quantity for a line; zero or below removes it.
// Upper bounds against quantityAvailable are a caller concern.
func (s *Store) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		s.Remove(id)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.persistCart()
			return
		}
	}
}

// Remove deletes a line by id; absent ids are a no-op.
func (s *Store) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistCart()
			return
		}
	}
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persistCart()
}

// Items returns a copy of the current lines in insertion order.
func (s *Store) Items() []domain.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLineItem, len(s.items))
	copy(out, s.items)
	return out
}

// Count sums line quantities.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

// TotalCents sums unitPrice × quantity over all lines.
func (s *Store) TotalCents() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, it := range s.items {
		total += it.UnitPriceCents * int64(it.Quantity)
	}
	return total
}

// SaveForLater moves a cart line onto the saved list.
func (s *Store) SaveForLater(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.saved = append(s.saved, s.items[i])
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistCart()
			s.persistSaved()
			return nil
		}
	}
	return domain.ErrNotFound
}

// RestoreSaved moves a saved item back into the cart, merging on
// (variantId, options) like Add.
func (s *Store) RestoreSaved(id string) error {
	s.mu.Lock()
	var item domain.CartLineItem
	found := false
	for i := range s.saved {
		if s.saved[i].ID == id {
			item = s.saved[i]
			s.saved = append(s.saved[:i], s.saved[i+1:]...)
			found = true
			break
		}
	}
	if found {
		s.persistSaved()
	}
	s.mu.Unlock()
	if !found {
		return domain.ErrNotFound
	}
	item.ID = ""
	s.Add(item)
	return nil
}

// Saved returns a copy of the saved-for-later list.
func (s *Store) Saved() []domain.CartLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.CartLineItem, len(s.saved))
	copy(out, s.saved)
	return out
}

func (s *Store) persistCart() {
	snapshot := s.items
	if snapshot == nil {
		snapshot = []domain.CartLineItem{}
	}
	if err := s.store.Set(cartKey, snapshot); err != nil {
		s.logger.Printf("persist cart: %v", err)
	}
}

func (s *Store) persistSaved() {
	snapshot := s.saved
	if snapshot == nil {
		snapshot = []domain.CartLineItem{}
	}
	if err := s.store.Set(savedKey, snapshot); err != nil {
		s.logger.Printf("persist saved items: %v", err)
	}
}
