package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type RocketInfoSvc interface {
	Answer(ctx context.Context, question string) (string, error)
}

type rocketInfoSvcImpl struct {
	launches LaunchSource
	chat     ClientFactory
	now      func() time.Time
	log      *zap.Logger
}

func NewRocketInfoSvc(launches LaunchSource, chat ClientFactory, now func() time.Time, log *zap.Logger) RocketInfoSvc {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &rocketInfoSvcImpl{launches: launches, chat: chat, now: now, log: log}
}

// Answer runs fetch, compose and complete in order. Errors come back untouched
// so the caller can tell configuration problems from transport ones.
func (s *rocketInfoSvcImpl) Answer(ctx context.Context, question string) (string, error) {
	launchData, err := s.launches.FetchLaunches(ctx)
	if err != nil {
		return "", err
	}

	now := s.now().UTC()
	s.log.Info("Current UTC date and time", zap.String("utc", now.Format(TimestampLayout)))

	prompt := ComposePrompt(question, launchData, now)

	client, err := s.chat.NewClient()
	if err != nil {
		return "", err
	}

	return client.Complete(ctx, prompt)
}
