package storage

import "github.com/kartosangel/Solana-Raffle/internal/raffle"

type Storage interface {
	// program config
	InitProgramConfig(config *raffle.ProgramConfig) error
	GetProgramConfig() (*raffle.ProgramConfig, error)
	UpdateProgramConfig(config *raffle.ProgramConfig) error

	// slug registry
	SlugExists(slug string) (bool, error)
	AddSlug(slug string) error
	SetSlugs(slugs []string) error

	// raffler
	CreateRaffler(raffler *raffle.Raffler) error
	GetRaffler(id string) (*raffle.Raffler, error)
	GetRafflerByAuthority(authority string) (*raffle.Raffler, error)
	GetRafflerBySlug(slug string) (*raffle.Raffler, error)
	UpdateRaffler(raffler *raffle.Raffler) error
	DeleteRaffler(id string) error

	// raffle
	CreateRaffle(r *raffle.Raffle) error
	GetRaffle(id string) (*raffle.Raffle, error)
	ListRaffles(rafflerID string) ([]*raffle.Raffle, error)
	UpdateRaffle(r *raffle.Raffle) error
	DeleteRaffle(id string) error

	// randomness requests
	CreateRandomnessRequest(request *raffle.RandomnessRequest) error
	GetPendingRandomnessRequests() ([]*raffle.RandomnessRequest, error)
	SettleRandomnessRequest(handle string) error
}
