package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"healthtrack-service/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const appointmentCacheKeyPrefix = "appointment:"

// AppointmentCache is a read-through cache in front of the appointment
// collection. Cache errors are logged and swallowed; the document store
// stays the source of truth.
type AppointmentCache interface {
	// Get returns the cached appointment, or nil on miss or cache failure.
	Get(ctx context.Context, appointmentID string) *entity.Appointment
	Set(ctx context.Context, appointment *entity.Appointment)
	Invalidate(ctx context.Context, appointmentID string)
}

type redisAppointmentCache struct {
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
}

func NewAppointmentCache(redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) AppointmentCache {
	return &redisAppointmentCache{
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

func (c *redisAppointmentCache) Get(ctx context.Context, appointmentID string) *entity.Appointment {
	data, err := c.redisClient.Get(ctx, appointmentCacheKeyPrefix+appointmentID).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warnf("Failed to read appointment %s from cache (non-fatal): %+v", appointmentID, err)
		}
		return nil
	}

	var appointment entity.Appointment
	if err := json.Unmarshal(data, &appointment); err != nil {
		c.log.Warnf("Failed to decode cached appointment %s (non-fatal): %+v", appointmentID, err)
		return nil
	}
	return &appointment
}

// Set stores the appointment with the configured TTL.
func (c *redisAppointmentCache) Set(ctx context.Context, appointment *entity.Appointment) {
	data, err := json.Marshal(appointment)
	if err != nil {
		c.log.Warnf("Failed to encode appointment %s for cache (non-fatal): %+v", appointment.ID, err)
		return
	}

	if err := c.redisClient.Set(ctx, appointmentCacheKeyPrefix+appointment.ID, data, c.ttl).Err(); err != nil {
		c.log.Warnf("Failed to cache appointment %s (non-fatal): %+v", appointment.ID, err)
	}
}

// Invalidate drops the cached copy after an update.
func (c *redisAppointmentCache) Invalidate(ctx context.Context, appointmentID string) {
	if err := c.redisClient.Del(ctx, appointmentCacheKeyPrefix+appointmentID).Err(); err != nil {
		c.log.Warnf("Failed to invalidate appointment %s in cache (non-fatal): %+v", appointmentID, err)
	}
}
