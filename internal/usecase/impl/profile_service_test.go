package impl

import (
	"testing"

	"companion/internal/domain/entity"
	"companion/internal/domain/service"
	mockSvc "companion/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProfileService_Profile_DefaultsToZeroValue(t *testing.T) {
	localState := mockSvc.NewMockLocalStateStore(t)
	localState.EXPECT().Load(service.StateKeyProfile, mock.Anything).Return(false).Once()

	svc := NewProfileService(localState, newDiscardLogger())

	assert.Equal(t, entity.Profile{}, svc.Profile())
}

func TestProfileService_SaveAndLoad(t *testing.T) {
	localState := mockSvc.NewMockLocalStateStore(t)

	profile := entity.Profile{Name: "Alex", Email: "alex@example.com"}

	localState.EXPECT().Store(service.StateKeyProfile, profile).Once()
	localState.EXPECT().
		Load(service.StateKeyProfile, mock.Anything).
		Run(func(key string, dest interface{}) {
			*dest.(*entity.Profile) = profile
		}).
		Return(true).
		Once()

	svc := NewProfileService(localState, newDiscardLogger())

	svc.SaveProfile(profile)
	assert.Equal(t, profile, svc.Profile())
}
