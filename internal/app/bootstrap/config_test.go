package bootstrap

import (
	"reflect"
	"testing"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func TestValidateConfig(t *testing.T) {
	logger := zap.NewNop()
	coreCfg := &config.CoreConfig{Env: "dev"}

	t.Run("missing mongo_uri is fatal", func(t *testing.T) {
		appCfg := AppConfig{MongoDatabase: "chronos_blog"}
		if err := ValidateConfig(coreCfg, appCfg, logger); err == nil {
			t.Error("ValidateConfig() error = nil, want error for empty mongo_uri")
		}
	})

	t.Run("valid config", func(t *testing.T) {
		appCfg := AppConfig{
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: "chronos_blog",
			AdminUsername: "admin",
			AdminPassword: "admin123",
		}
		if err := ValidateConfig(coreCfg, appCfg, logger); err != nil {
			t.Errorf("ValidateConfig() error = %v", err)
		}
	})

	t.Run("malformed URI rejected", func(t *testing.T) {
		appCfg := AppConfig{MongoURI: "not-a-mongo-uri"}
		if err := ValidateConfig(coreCfg, appCfg, logger); err == nil {
			t.Error("ValidateConfig() error = nil, want error for malformed URI")
		}
	})

	t.Run("default password allowed in prod with warning", func(t *testing.T) {
		prodCfg := &config.CoreConfig{Env: "prod"}
		appCfg := AppConfig{
			MongoURI:      "mongodb://localhost:27017",
			AdminPassword: "admin123",
		}
		if err := ValidateConfig(prodCfg, appCfg, logger); err != nil {
			t.Errorf("ValidateConfig() error = %v, want nil (warn only)", err)
		}
	})
}

func TestSplitOrigins(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"wildcard", "*", []string{"*"}},
		{"single origin", "https://a.example.com", []string{"https://a.example.com"}},
		{"multiple with spaces", "https://a.example.com, https://b.example.com", []string{"https://a.example.com", "https://b.example.com"}},
		{"empty entries dropped", ",https://a.example.com,,", []string{"https://a.example.com"}},
		{"empty string", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitOrigins(tt.raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitOrigins(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}
