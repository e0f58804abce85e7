package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/buynothing-checkout/internal/config"
	"github.com/SergeyBogomolovv/buynothing-checkout/pkg/utils"
	goredis "github.com/redis/go-redis/v9"
)

func New(ctx context.Context, cfg config.Redis) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	retry := utils.RetryConfig{
		InitialDelay: 200 * time.Millisecond,
		MaxAttempts:  5,
		Multiplier:   2,
	}
	ping := func() error {
		return client.Ping(ctx).Err()
	}
	if err := utils.Retry(ctx, retry, ping); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
