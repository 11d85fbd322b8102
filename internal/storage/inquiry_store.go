package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"

	"github.com/gridgarden/landing/internal/domain"
)

const inquiryDir = "inquiries"

// InquiryStore persists partner inquiries as one JSON document per inquiry.
type InquiryStore struct {
	store Store
}

var _ domain.InquiryRepository = (*InquiryStore)(nil)

// NewInquiryStore creates an InquiryStore on top of a Store.
func NewInquiryStore(store Store) *InquiryStore {
	return &InquiryStore{store: store}
}

func inquiryPath(id string) string {
	return path.Join(inquiryDir, id+".json")
}

// Save validates and writes the inquiry, overwriting an existing one with the same ID.
func (s *InquiryStore) Save(ctx context.Context, inquiry *domain.Inquiry) error {
	if err := inquiry.Validate(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInquiry, err)
	}
	data, err := json.MarshalIndent(inquiry, "", "  ")
	if err != nil {
		return fmt.Errorf("encode inquiry %s: %w", inquiry.ID, err)
	}
	if _, err := s.store.Save(ctx, inquiryPath(inquiry.ID), bytes.NewReader(data)); err != nil {
		return fmt.Errorf("save inquiry %s: %w", inquiry.ID, err)
	}
	return nil
}

// FindByID loads one inquiry.
func (s *InquiryStore) FindByID(ctx context.Context, id string) (*domain.Inquiry, error) {
	return s.read(ctx, inquiryPath(id))
}

// List returns all stored inquiries, oldest first.
func (s *InquiryStore) List(ctx context.Context) ([]*domain.Inquiry, error) {
	paths, err := s.store.List(ctx, inquiryDir)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}

	inquiries := make([]*domain.Inquiry, 0, len(paths))
	for _, p := range paths {
		inq, err := s.read(ctx, p)
		if err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inq)
	}
	sort.SliceStable(inquiries, func(i, j int) bool {
		return inquiries[i].ReceivedAt.Before(inquiries[j].ReceivedAt)
	})
	return inquiries, nil
}

func (s *InquiryStore) read(ctx context.Context, p string) (*domain.Inquiry, error) {
	rc, err := s.store.Open(ctx, p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("open %s: %w", p, err)
	}
	defer rc.Close()

	var inq domain.Inquiry
	if err := json.NewDecoder(rc).Decode(&inq); err != nil {
		return nil, fmt.Errorf("decode %s: %w", p, err)
	}
	return &inq, nil
}
