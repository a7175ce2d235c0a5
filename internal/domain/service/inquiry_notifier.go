package service

import "directorio/internal/domain/entity"

// InquiryNotifier pushes new inquiries to connected moderators.
type InquiryNotifier interface {
	NotifyInquiry(inquiry *entity.Inquiry)
}
