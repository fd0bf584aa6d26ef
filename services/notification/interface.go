package notification

import (
	"context"

	"github.com/annaaimenedger987-crypto/massageBot/models"
)

// NotificationService informs the administrator about ledger events. A
// notification failure is the caller's to log and discard; it must never
// affect the outcome of the booking that triggered it.
type NotificationService interface {
	NotifyBookingCreated(ctx context.Context, booking models.Booking) error
	NotifyDigest(ctx context.Context, text string) error
}
