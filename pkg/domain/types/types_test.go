package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/defectdash/pkg/domain/types"
)

func TestTierValidation(t *testing.T) {
	tests := []struct {
		name     string
		tier     types.Tier
		expected bool
	}{
		{"Valid high", types.TierHigh, true},
		{"Valid medium", types.TierMedium, true},
		{"Valid low", types.TierLow, true},
		{"Invalid empty", types.Tier(""), false},
		{"Invalid mixed case", types.Tier("High"), false},
		{"Invalid unknown", types.Tier("critical"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.tier.IsValid()
			if result != tt.expected {
				t.Errorf("Tier(%q).IsValid() = %v, want %v", tt.tier, result, tt.expected)
			}
		})
	}
}

func TestTierWeight(t *testing.T) {
	gt.Equal(t, types.TierHigh.Weight(), 3)
	gt.Equal(t, types.TierMedium.Weight(), 2)
	gt.Equal(t, types.TierLow.Weight(), 1)
	gt.Equal(t, types.Tier("other").Weight(), 0)
}

func TestRisk(t *testing.T) {
	gt.True(t, types.RiskHigh.IsValid())
	gt.True(t, types.RiskLow.IsValid())
	gt.False(t, types.Risk("severe").IsValid())
	gt.Equal(t, types.RiskMedium.Label(), "Medium Risk")
	gt.Equal(t, types.Risk("").Label(), "Unknown Risk")
}

func TestNotificationType(t *testing.T) {
	for _, nt := range []types.NotificationType{
		types.NotificationTypeInfo,
		types.NotificationTypeWarning,
		types.NotificationTypeError,
		types.NotificationTypeSuccess,
	} {
		gt.True(t, nt.IsValid())
	}
	gt.False(t, types.NotificationType("debug").IsValid())
}

func TestNewNotificationID(t *testing.T) {
	a := types.NewNotificationID()
	b := types.NewNotificationID()
	gt.NotEqual(t, a, b)
	gt.Equal(t, len(a.String()), 36)
}
