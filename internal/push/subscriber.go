package push

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"wateen/client/internal/config"
	"wateen/client/internal/ids"
	"wateen/client/internal/keystore"
)

const (
	permissionKey = "push.permission"
	descriptorKey = "push.descriptor"
	permGranted   = "granted"
	permDenied    = "denied"
)

// Reporter sends the subscription descriptor to the backend.
type Reporter interface {
	RegisterPushToken(ctx context.Context, descriptor string) error
}

// Subscriber runs once per startup. It never surfaces an error to the
// user: missing capability, a denied permission or a failed report all end
// with a log line and nothing else.
type Subscriber struct {
	cfg    config.PushConfig
	keys   *keystore.Store
	api    Reporter
	prompt func(question string) bool
	log    zerolog.Logger
}

func NewSubscriber(cfg config.PushConfig, keys *keystore.Store, api Reporter, prompt func(string) bool, log zerolog.Logger) *Subscriber {
	return &Subscriber{cfg: cfg, keys: keys, api: api, prompt: prompt, log: log}
}

// Subscribe checks capability and permission, then reports a descriptor.
func (s *Subscriber) Subscribe(ctx context.Context) {
	if !s.cfg.Enabled || s.cfg.VAPIDPublicKey == "" {
		s.log.Debug().Msg("push notifications not available")
		return
	}

	switch s.permission() {
	case permDenied:
		s.log.Debug().Msg("push permission denied earlier")
		return
	case permGranted:
	default:
		if !s.requestPermission() {
			return
		}
	}

	descriptor, err := s.descriptor()
	if err != nil {
		s.log.Warn().Err(err).Msg("build push subscription failed")
		return
	}

	if err := s.api.RegisterPushToken(ctx, descriptor); err != nil {
		s.log.Warn().Err(err).Msg("report push subscription failed")
	}
}

func (s *Subscriber) permission() string {
	value, err := s.keys.Get(permissionKey)
	if err != nil {
		return ""
	}
	return string(value)
}

func (s *Subscriber) requestPermission() bool {
	granted := s.prompt("Enable medication reminders via push notifications?")
	state := permDenied
	if granted {
		state = permGranted
	}
	if err := s.keys.Set(permissionKey, []byte(state)); err != nil {
		s.log.Warn().Err(err).Msg("persist push permission failed")
	}
	return granted
}

// subscription mirrors the browser push descriptor shape; the backend
// treats the whole thing as an opaque token.
type subscription struct {
	Endpoint string `json:"endpoint"`
	Keys     struct {
		P256DH string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
}

// descriptor reuses a previously built subscription so the backend's
// dedup-by-token keeps one entry per client.
func (s *Subscriber) descriptor() (string, error) {
	if cached, err := s.keys.Get(descriptorKey); err == nil && len(cached) > 0 {
		return string(cached), nil
	}

	var sub subscription
	sub.Endpoint = "https://push.wateen.app/v1/" + ids.New()

	p256dh := make([]byte, 65)
	auth := make([]byte, 16)
	if _, err := rand.Read(p256dh); err != nil {
		return "", fmt.Errorf("subscription keys: %w", err)
	}
	if _, err := rand.Read(auth); err != nil {
		return "", fmt.Errorf("subscription keys: %w", err)
	}
	sub.Keys.P256DH = base64.RawURLEncoding.EncodeToString(p256dh)
	sub.Keys.Auth = base64.RawURLEncoding.EncodeToString(auth)

	raw, err := json.Marshal(sub)
	if err != nil {
		return "", fmt.Errorf("encode subscription: %w", err)
	}
	if err := s.keys.Set(descriptorKey, raw); err != nil {
		s.log.Warn().Err(err).Msg("cache push subscription failed")
	}
	return string(raw), nil
}
