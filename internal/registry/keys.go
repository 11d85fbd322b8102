package registry

import (
	"github.com/gridgarden/landing/internal/content"
	"github.com/gridgarden/landing/internal/domain"
)

// Service keys shared between modules. Using constants prevents typos.
const (
	ContentStoreKey      Key[*content.Store]            = "content.store"
	InquiryRepositoryKey Key[domain.InquiryRepository] = "partners.inquiries"
)
