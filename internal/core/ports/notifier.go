package ports

import "context"

// CallNotifier places an outbound voice call. Implementations must not
// retry on failure: a double call to the same number is worse than a
// missed one, the next daily sweep covers the miss.
type CallNotifier interface {
	PlaceCall(ctx context.Context, phoneNumber, message string) error
}
