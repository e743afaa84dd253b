package redis

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"telemedicina-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryHook answers GETDEL, SET and DEL from a map without touching the network.
type memoryHook struct {
	mu      sync.Mutex
	values  map[string]string
	ttls    map[string]time.Duration
	failErr error
}

func newMemoryHook() *memoryHook {
	return &memoryHook{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (h *memoryHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return nil, errors.New("network disabled in tests")
	}
}

func (h *memoryHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func (h *memoryHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		h.mu.Lock()
		defer h.mu.Unlock()

		if h.failErr != nil {
			cmd.SetErr(h.failErr)
			return h.failErr
		}

		args := cmd.Args()
		switch c := cmd.(type) {
		case *redis.StringCmd:
			key := args[1].(string)
			value, ok := h.values[key]
			if !ok {
				c.SetErr(redis.Nil)
				return redis.Nil
			}
			delete(h.values, key)
			c.SetVal(value)
		case *redis.StatusCmd:
			key := args[1].(string)
			switch v := args[2].(type) {
			case []byte:
				h.values[key] = string(v)
			case string:
				h.values[key] = v
			}
			if len(args) > 4 {
				unit := time.Second
				if args[3] == "px" {
					unit = time.Millisecond
				}
				h.ttls[key] = time.Duration(args[4].(int64)) * unit
			}
			c.SetVal("OK")
		case *redis.IntCmd:
			var deleted int64
			for _, arg := range args[1:] {
				if _, ok := h.values[arg.(string)]; ok {
					delete(h.values, arg.(string))
					deleted++
				}
			}
			c.SetVal(deleted)
		}
		return nil
	}
}

func newTestRepository(hook *memoryHook) *redisRepository {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	client.AddHook(hook)
	return &redisRepository{client: client}
}

type ticket struct {
	IdentityID string `json:"identity_id"`
}

func TestRedisRepository_SetGetDelete(t *testing.T) {
	hook := newMemoryHook()
	repo := newTestRepository(hook)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "reset_password:tok", &ticket{IdentityID: "user-1"}, 15*time.Minute))
	assert.Equal(t, 15*time.Minute, hook.ttls["reset_password:tok"])

	value, err := repo.GetDelete(ctx, "reset_password:tok")
	require.NoError(t, err)
	assert.JSONEq(t, `{"identity_id":"user-1"}`, value)

	value, err = repo.GetDelete(ctx, "reset_password:tok")
	require.NoError(t, err)
	assert.Empty(t, value, "a consumed key reads as missing")
}

func TestRedisRepository_Delete(t *testing.T) {
	hook := newMemoryHook()
	repo := newTestRepository(hook)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "reset_password:tok", &ticket{IdentityID: "user-1"}, time.Minute))
	require.NoError(t, repo.Delete(ctx, "reset_password:tok"))

	value, err := repo.GetDelete(ctx, "reset_password:tok")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestRedisRepository_Errors(t *testing.T) {
	hook := newMemoryHook()
	hook.failErr = errors.New("connection reset")
	repo := newTestRepository(hook)
	ctx := context.Background()

	var customErr *exceptions.CustomError

	_, err := repo.GetDelete(ctx, "k")
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)

	err = repo.Set(ctx, "k", "v", time.Minute)
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)

	err = repo.Delete(ctx, "k")
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
}

func TestRedisRepository_SetUnmarshalable(t *testing.T) {
	repo := newTestRepository(newMemoryHook())

	err := repo.Set(context.Background(), "k", make(chan int), time.Minute)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, http.StatusInternalServerError, customErr.StatusCode)
}
