package push

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"wateen/client/internal/config"
	"wateen/client/internal/keystore"
)

type reporterSpy struct {
	descriptors []string
	err         error
}

func (r *reporterSpy) RegisterPushToken(_ context.Context, descriptor string) error {
	r.descriptors = append(r.descriptors, descriptor)
	return r.err
}

func openKeys(t *testing.T) *keystore.Store {
	t.Helper()
	keys, err := keystore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open keystore: %v", err)
	}
	t.Cleanup(func() { keys.Close() })
	return keys
}

func enabled() config.PushConfig {
	return config.PushConfig{Enabled: true, VAPIDPublicKey: "test-vapid-key"}
}

func TestSubscribeReportsDescriptorWhenGranted(t *testing.T) {
	reporter := &reporterSpy{}
	sub := NewSubscriber(enabled(), openKeys(t), reporter,
		func(string) bool { return true }, zerolog.Nop())

	sub.Subscribe(context.Background())

	if len(reporter.descriptors) != 1 {
		t.Fatalf("want one report, got %d", len(reporter.descriptors))
	}
	var decoded subscription
	if err := json.Unmarshal([]byte(reporter.descriptors[0]), &decoded); err != nil {
		t.Fatalf("descriptor is not valid JSON: %v", err)
	}
	if decoded.Endpoint == "" || decoded.Keys.P256DH == "" || decoded.Keys.Auth == "" {
		t.Errorf("incomplete descriptor %+v", decoded)
	}
}

func TestDeniedPermissionIsRemembered(t *testing.T) {
	keys := openKeys(t)
	reporter := &reporterSpy{}
	prompts := 0
	sub := NewSubscriber(enabled(), keys, reporter,
		func(string) bool { prompts++; return false }, zerolog.Nop())

	sub.Subscribe(context.Background())
	sub.Subscribe(context.Background())

	if prompts != 1 {
		t.Errorf("denied permission should be asked once, asked %d times", prompts)
	}
	if len(reporter.descriptors) != 0 {
		t.Errorf("denied permission must not report, got %d reports", len(reporter.descriptors))
	}
}

func TestDescriptorStableAcrossRuns(t *testing.T) {
	keys := openKeys(t)
	reporter := &reporterSpy{}
	grant := func(string) bool { return true }

	NewSubscriber(enabled(), keys, reporter, grant, zerolog.Nop()).Subscribe(context.Background())
	NewSubscriber(enabled(), keys, reporter, grant, zerolog.Nop()).Subscribe(context.Background())

	if len(reporter.descriptors) != 2 {
		t.Fatalf("want two reports, got %d", len(reporter.descriptors))
	}
	if reporter.descriptors[0] != reporter.descriptors[1] {
		t.Error("descriptor should be reused so the backend keeps one entry per client")
	}
}

func TestDisabledCapabilityDoesNothing(t *testing.T) {
	reporter := &reporterSpy{}
	sub := NewSubscriber(config.PushConfig{}, openKeys(t), reporter,
		func(string) bool { t.Fatal("must not prompt"); return false }, zerolog.Nop())

	sub.Subscribe(context.Background())

	if len(reporter.descriptors) != 0 {
		t.Error("disabled push must not report")
	}
}

func TestReportFailureIsSwallowed(t *testing.T) {
	reporter := &reporterSpy{err: errors.New("backend down")}
	sub := NewSubscriber(enabled(), openKeys(t), reporter,
		func(string) bool { return true }, zerolog.Nop())

	// Must not panic or surface anything.
	sub.Subscribe(context.Background())
}
