package service

import "context"

// PushSender delivers push notifications to registered device tokens.
type PushSender interface {
	// SendToDevice sends a push notification to a single device token.
	SendToDevice(ctx context.Context, token, title, body string, data map[string]string) error

	// SendToDevices sends a push notification to multiple device tokens
	// (provider limit 500 per call). Tokens the provider reports as invalid
	// or unregistered are returned for cleanup.
	SendToDevices(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)
}
