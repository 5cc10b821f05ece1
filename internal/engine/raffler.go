package engine

import (
	"context"
	"errors"
	"regexp"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kartosangel/Solana-Raffle/internal/identity"
	"github.com/kartosangel/Solana-Raffle/internal/logger"
	"github.com/kartosangel/Solana-Raffle/internal/raffle"
)

var slugPattern = regexp.MustCompile(`^[_a-z0-9]+$`)

const maxSlugLen = 50
const maxNameLen = 50

// InitRafflerRequest creates an organizer namespace. Treasury defaults to the
// authority when unset.
type InitRafflerRequest struct {
	Slug     string
	Name     string
	Treasury *identity.Identity
	Staker   *identity.Identity
}

func (e *Engine) InitRaffler(_ context.Context, authority identity.Identity, req InitRafflerRequest) (*raffle.Raffler, error) {
	if len(req.Slug) == 0 {
		return nil, raffle.ErrSlugRequired
	}
	if len(req.Slug) > maxSlugLen {
		return nil, raffle.ErrSlugTooLong
	}
	if !slugPattern.MatchString(req.Slug) {
		return nil, raffle.ErrInvalidSlug
	}
	if len(req.Name) == 0 {
		return nil, raffle.ErrNameRequired
	}
	if len(req.Name) > maxNameLen {
		return nil, raffle.ErrNameTooLong
	}

	exists, err := e.store.SlugExists(req.Slug)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, raffle.ErrSlugExists
	}

	if _, err := e.store.GetRafflerByAuthority(authority.String()); err == nil {
		return nil, raffle.ErrRafflerExists
	} else if !errors.Is(err, raffle.ErrNotFound) {
		return nil, err
	}

	treasury := authority
	if req.Treasury != nil {
		treasury = *req.Treasury
	}

	raffler := &raffle.Raffler{
		ID:        uuid.NewString(),
		Authority: authority,
		Slug:      req.Slug,
		Name:      req.Name,
		Treasury:  treasury,
		Staker:    req.Staker,
		IsActive:  false,
	}

	if err := e.store.AddSlug(req.Slug); err != nil {
		return nil, err
	}
	if err := e.store.CreateRaffler(raffler); err != nil {
		return nil, err
	}

	logger.Info("raffler created",
		zap.String("id", raffler.ID),
		zap.String("slug", raffler.Slug),
		zap.String("authority", authority.String()))
	return raffler, nil
}

// UpdateRafflerRequest mutates organizer settings. Linking and unlinking a
// staker in the same call is rejected.
type UpdateRafflerRequest struct {
	Name         *string
	Treasury     *identity.Identity
	Staker       *identity.Identity
	UnlinkStaker bool
}

func (e *Engine) UpdateRaffler(_ context.Context, caller identity.Identity, rafflerID string, req UpdateRafflerRequest) (*raffle.Raffler, error) {
	raffler, err := e.store.GetRaffler(rafflerID)
	if err != nil {
		return nil, err
	}
	if raffler.Authority != caller {
		return nil, raffle.ErrUnauthorized
	}

	if req.Name != nil {
		if len(*req.Name) == 0 {
			return nil, raffle.ErrNameRequired
		}
		if len(*req.Name) > maxNameLen {
			return nil, raffle.ErrNameTooLong
		}
		raffler.Name = *req.Name
	}

	if req.Treasury != nil {
		raffler.Treasury = *req.Treasury
	}

	if req.Staker != nil && req.UnlinkStaker {
		return nil, raffle.ErrUnexpectedStakerAccount
	}
	if req.Staker != nil {
		raffler.Staker = req.Staker
	}
	if req.UnlinkStaker {
		raffler.Staker = nil
	}

	if err := e.store.UpdateRaffler(raffler); err != nil {
		return nil, err
	}
	return raffler, nil
}

// ToggleActive flips an organizer's active flag. Allowed for the organizer's
// authority or the system admin.
func (e *Engine) ToggleActive(_ context.Context, caller identity.Identity, rafflerID string, active bool) error {
	raffler, err := e.store.GetRaffler(rafflerID)
	if err != nil {
		return err
	}

	config, err := e.store.GetProgramConfig()
	if err != nil {
		return err
	}
	if caller != raffler.Authority && caller != config.Admin {
		return raffle.ErrUnauthorized
	}

	raffler.IsActive = active
	return e.store.UpdateRaffler(raffler)
}

// DeleteRaffler removes an organizer record. Admin only.
func (e *Engine) DeleteRaffler(_ context.Context, caller identity.Identity, rafflerID string) error {
	config, err := e.store.GetProgramConfig()
	if err != nil {
		return err
	}
	if caller != config.Admin {
		return raffle.ErrAdminOnly
	}
	if _, err := e.store.GetRaffler(rafflerID); err != nil {
		return err
	}
	return e.store.DeleteRaffler(rafflerID)
}
