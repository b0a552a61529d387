// Package notification implements push delivery over Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"happnings/config"
	"happnings/internal/domain/service"
	"happnings/internal/errors"

	"go.uber.org/fx"
)

// FCM rejects multicast requests above this many tokens.
const multicastBatchLimit = 500

// Params defines the parameters required for the push sender
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type firebaseSender struct {
	client *messaging.Client
	logger *slog.Logger
}

// New creates a PushSender backed by Firebase Cloud Messaging.
func New(params Params) (service.PushSender, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, errors.New("firebase configuration is required")
	}

	opts := []option.ClientOption{}
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(context.Background(), &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		return nil, errors.Wrap(err, "initialize messaging client")
	}

	return &firebaseSender{
		client: client,
		logger: params.Logger,
	}, nil
}

func (s *firebaseSender) SendToDevice(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "send fcm message")
	}

	return nil
}

func (s *firebaseSender) SendToDevices(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	var successCount, failureCount int
	var invalidTokens []string

	for start := 0; start < len(tokens); start += multicastBatchLimit {
		end := min(start+multicastBatchLimit, len(tokens))
		batch := tokens[start:end]

		message := &messaging.MulticastMessage{
			Tokens: batch,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		}

		response, err := s.client.SendEachForMulticast(ctx, message)
		if err != nil {
			return successCount, failureCount, invalidTokens, errors.Wrap(err, "send fcm multicast")
		}

		successCount += response.SuccessCount
		failureCount += response.FailureCount

		for i, result := range response.Responses {
			if result.Error == nil {
				continue
			}
			if messaging.IsUnregistered(result.Error) || messaging.IsInvalidArgument(result.Error) {
				invalidTokens = append(invalidTokens, batch[i])

				continue
			}
			s.logger.Warn("fcm send failed",
				slog.String("token", batch[i]),
				slog.Any("error", result.Error),
			)
		}
	}

	return successCount, failureCount, invalidTokens, nil
}
