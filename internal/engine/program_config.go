package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/kartosangel/Solana-Raffle/internal/identity"
	"github.com/kartosangel/Solana-Raffle/internal/logger"
	"github.com/kartosangel/Solana-Raffle/internal/raffle"
)

// InitProgramConfig creates the engine-wide fee configuration. The caller
// becomes the system admin. Fails once initialized.
func (e *Engine) InitProgramConfig(
	_ context.Context,
	admin identity.Identity,
	feesWallet identity.Identity,
	ticketFee uint64,
	proceedsShare uint16,
) (*raffle.ProgramConfig, error) {
	if proceedsShare > raffle.MaxBasisPoints {
		return nil, raffle.ErrInvalidProceedsShare
	}

	config := &raffle.ProgramConfig{
		Admin:         admin,
		FeesWallet:    feesWallet,
		TicketFee:     ticketFee,
		ProceedsShare: proceedsShare,
	}
	if err := e.store.InitProgramConfig(config); err != nil {
		return nil, err
	}

	logger.Info("program config initialized",
		zap.String("admin", admin.String()),
		zap.Uint64("ticket fee", ticketFee),
		zap.Uint16("proceeds share", proceedsShare))
	return config, nil
}

// UpdateProgramConfig adjusts fee parameters. Admin only; nil fields keep
// their current value.
func (e *Engine) UpdateProgramConfig(
	_ context.Context,
	caller identity.Identity,
	ticketFee *uint64,
	proceedsShare *uint16,
) (*raffle.ProgramConfig, error) {
	config, err := e.store.GetProgramConfig()
	if err != nil {
		return nil, err
	}
	if caller != config.Admin {
		return nil, raffle.ErrAdminOnly
	}

	if ticketFee != nil {
		config.TicketFee = *ticketFee
	}
	if proceedsShare != nil {
		if *proceedsShare > raffle.MaxBasisPoints {
			return nil, raffle.ErrInvalidProceedsShare
		}
		config.ProceedsShare = *proceedsShare
	}

	if err := e.store.UpdateProgramConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SetSlugs replaces the slug registry. Admin only, a repair operation.
func (e *Engine) SetSlugs(_ context.Context, caller identity.Identity, slugs []string) error {
	config, err := e.store.GetProgramConfig()
	if err != nil {
		return err
	}
	if caller != config.Admin {
		return raffle.ErrAdminOnly
	}
	return e.store.SetSlugs(slugs)
}
