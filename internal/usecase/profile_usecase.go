package usecase

import "companion/internal/domain/entity"

// ProfileUsecase manages the locally persisted display profile.
type ProfileUsecase interface {
	// Profile returns the stored profile, or a zero profile when none is stored.
	Profile() entity.Profile

	// SaveProfile persists the profile locally. Write failures are swallowed
	// by the local state store; saving never fails.
	SaveProfile(profile entity.Profile)
}
