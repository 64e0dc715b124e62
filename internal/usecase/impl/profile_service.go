package impl

import (
	"log/slog"

	"companion/internal/domain/entity"
	"companion/internal/domain/service"
	"companion/internal/usecase"
)

// profileService implements the ProfileUsecase interface. The profile is a
// purely local convenience and never leaves the device.
type profileService struct {
	localState service.LocalStateStore
	logger     *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(localState service.LocalStateStore, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		localState: localState,
		logger:     logger,
	}
}

// Profile returns the stored profile, or a zero profile when none is stored.
func (srv *profileService) Profile() entity.Profile {
	var profile entity.Profile
	srv.localState.Load(service.StateKeyProfile, &profile)

	return profile
}

// SaveProfile persists the profile locally.
func (srv *profileService) SaveProfile(profile entity.Profile) {
	srv.localState.Store(service.StateKeyProfile, profile)
	srv.logger.Debug("Profile saved", slog.String("name", profile.Name))
}
