package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"master": "",
		},
		"kv": map[string]any{
			"redis": map[string]any{
				"addr": "",
			},
		},
		"nfc": map[string]any{
			"challengeTTL": "10s",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_MASTER", want: "secretKey.master"},
		{envKey: "KV_REDIS_ADDR", want: "kv.redis.addr"},
		{envKey: "NFC_CHALLENGETTL", want: "nfc.challengeTTL"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Auth.PasswordAlgorithm != "argon2id" {
		t.Fatalf("PasswordAlgorithm = %q, want argon2id", cfg.Auth.PasswordAlgorithm)
	}
	if cfg.Auth.OnetimeTTL != 10*time.Second {
		t.Fatalf("OnetimeTTL = %v, want 10s", cfg.Auth.OnetimeTTL)
	}
	if cfg.Auth.PasswordResetTTL != 30*time.Minute {
		t.Fatalf("PasswordResetTTL = %v, want 30m", cfg.Auth.PasswordResetTTL)
	}
	if cfg.NFC.ChallengeTTL != 10*time.Second {
		t.Fatalf("ChallengeTTL = %v, want 10s", cfg.NFC.ChallengeTTL)
	}
	if cfg.Ledger.StampThreshold != 10 {
		t.Fatalf("StampThreshold = %d, want 10", cfg.Ledger.StampThreshold)
	}
	if cfg.KV.Driver != "memory" {
		t.Fatalf("KV.Driver = %q, want memory", cfg.KV.Driver)
	}
	if cfg.PubSub.Provider != "bus" {
		t.Fatalf("PubSub.Provider = %q, want bus", cfg.PubSub.Provider)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Ledger: &LedgerConfig{StampThreshold: 5, MaxRetries: 2},
		KV:     &KVConfig{Driver: "redis"},
	}
	ApplyDefaults(cfg)

	if cfg.Ledger.StampThreshold != 5 || cfg.Ledger.MaxRetries != 2 {
		t.Fatalf("ledger overridden: %+v", cfg.Ledger)
	}
	if cfg.Ledger.RetryBackoff != 10*time.Millisecond {
		t.Fatalf("RetryBackoff = %v, want 10ms", cfg.Ledger.RetryBackoff)
	}
	if cfg.KV.Driver != "redis" {
		t.Fatalf("KV.Driver = %q, want redis", cfg.KV.Driver)
	}
}
