package store

import (
	"context"
	"sync"

	"loandraft/pkg/platform/sentinel"
)

// InMemory keeps contact records in maps. Used in tests and local runs.
type InMemory struct {
	mu        sync.RWMutex
	phones    map[int64]ContactPhoneUpdate
	emails    map[int64]ContactEmailUpdate
	addresses map[int64]ContactAddressUpdate
}

func NewInMemory() *InMemory {
	return &InMemory{
		phones:    make(map[int64]ContactPhoneUpdate),
		emails:    make(map[int64]ContactEmailUpdate),
		addresses: make(map[int64]ContactAddressUpdate),
	}
}

func (s *InMemory) UpdatePhone(_ context.Context, ref int64, upd ContactPhoneUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phones[ref] = upd
	return nil
}

func (s *InMemory) UpdateEmail(_ context.Context, ref int64, upd ContactEmailUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emails[ref] = upd
	return nil
}

func (s *InMemory) UpdateAddress(_ context.Context, ref int64, upd ContactAddressUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addresses[ref] = upd
	return nil
}

func (s *InMemory) PhoneRecord(_ context.Context, ref int64) (*PhoneRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	upd, ok := s.phones[ref]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &PhoneRecord{Ref: ref, ContactPhoneUpdate: upd}, nil
}

func (s *InMemory) EmailRecord(_ context.Context, ref int64) (*EmailRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	upd, ok := s.emails[ref]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &EmailRecord{Ref: ref, ContactEmailUpdate: upd}, nil
}

func (s *InMemory) AddressRecord(_ context.Context, ref int64) (*AddressRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	upd, ok := s.addresses[ref]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &AddressRecord{Ref: ref, ContactAddressUpdate: upd}, nil
}
