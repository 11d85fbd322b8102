package partners

import (
	"github.com/gridgarden/landing/internal/domain"
	"github.com/gridgarden/landing/internal/pubsub"
)

// InquiryReceived is published for every accepted partner inquiry.
var InquiryReceived = pubsub.NewEvent[domain.Inquiry]("partners.inquiry.received")
