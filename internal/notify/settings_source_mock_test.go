package notify

import (
	"context"
	"sync"

	"github.com/heartmarshall/studio-backend/internal/domain"
)

var _ settingsSource = &settingsSourceMock{}

type settingsSourceMock struct {
	DeliverySettingsFunc func(ctx context.Context) (domain.DeliverySettings, error)

	calls struct {
		DeliverySettings []struct {
			Ctx context.Context
		}
	}
	lockDeliverySettings sync.RWMutex
}

func (mock *settingsSourceMock) DeliverySettings(ctx context.Context) (domain.DeliverySettings, error) {
	if mock.DeliverySettingsFunc == nil {
		panic("settingsSourceMock.DeliverySettingsFunc: method is nil but settingsSource.DeliverySettings was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDeliverySettings.Lock()
	mock.calls.DeliverySettings = append(mock.calls.DeliverySettings, callInfo)
	mock.lockDeliverySettings.Unlock()
	return mock.DeliverySettingsFunc(ctx)
}

func (mock *settingsSourceMock) DeliverySettingsCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeliverySettings.RLock()
	calls := mock.calls.DeliverySettings
	mock.lockDeliverySettings.RUnlock()
	return calls
}
