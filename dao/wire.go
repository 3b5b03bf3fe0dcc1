//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUserDAO,
	NewBoardDAO,
	NewPinDAO,
	NewInteractionDAO,
	NewSearchQueryDAO,
	NewUserProfileDAO,
	NewRecommendationLogDAO,
)
