package raffle

import "errors"

var (
	ErrUnauthorized           = errors.New("the signer is not permitted to perform this action")
	ErrAdminOnly              = errors.New("this is an admin only function")
	ErrInvalidStateTransition = errors.New("operation not allowed from the raffle's current state")

	// config
	ErrConfigExists         = errors.New("program config already initialized")
	ErrConfigNotInitialized = errors.New("program config not initialized")
	ErrInvalidProceedsShare = errors.New("proceeds share cannot exceed 10,000 basis points")

	// raffler
	ErrRafflerExists           = errors.New("raffler already exists for this authority")
	ErrSlugRequired            = errors.New("slug is required")
	ErrSlugTooLong             = errors.New("slug can only be a maximum of 50 chars")
	ErrInvalidSlug             = errors.New("slug can only contain valid URL slug chars")
	ErrSlugExists              = errors.New("slug already exists")
	ErrNameRequired            = errors.New("project name is required")
	ErrNameTooLong             = errors.New("project name can only be a maximum of 50 chars")
	ErrUnexpectedStakerAccount = errors.New("cannot link and unlink a staker in the same update")

	// raffle creation
	ErrInvalidDuration     = errors.New("raffle duration must be positive")
	ErrRaffleTooLong       = errors.New("the max duration for a raffle is 30 days")
	ErrInvalidStartTime    = errors.New("start date must be in the future, or leave blank for now")
	ErrInvalidTicketCount  = errors.New("a raffle cannot be created with zero tickets")
	ErrInvalidPrizeAmount  = errors.New("token prize amount must be greater than zero")
	ErrInvalidPrizeType    = errors.New("exactly one prize type must be set")
	ErrInvalidPaymentType  = errors.New("exactly one payment type must be set")
	ErrInvalidEntryType    = errors.New("exactly one entry type must be set")
	ErrTicketPriceRequired = errors.New("ticket price required for token raffle")
	ErrCannotBurnNative    = errors.New("cannot set up a burn raffle with the native currency")
	ErrBurnProceedsToken   = errors.New("cannot withold burn proceeds for a token raffle")

	// ticket sales
	ErrNotStarted         = errors.New("raffle has not started yet")
	ErrEnded              = errors.New("raffle has ended")
	ErrSoldOut            = errors.New("no tickets left for this raffle")
	ErrGatedRaffle        = errors.New("entrant doesn't hold a required NFT to enter this raffle")
	ErrEntrantCapExceeded = errors.New("purchase exceeds the per-entrant ticket cap")
	ErrInvalidCollection  = errors.New("invalid collection for this raffle")
	ErrTokenInstruction   = errors.New("this operation can only be used with token payment type raffles")
	ErrNftInstruction     = errors.New("this operation can only be used with NFT payment type raffles")
	ErrInvalidInstruction = errors.New("this operation cannot be used for this raffle")
	ErrNumericOverflow    = errors.New("arithmetic overflow")

	// winner resolution
	ErrRaffleNotEnded             = errors.New("this raffle has not ended yet")
	ErrRandomnessAlreadyRequested = errors.New("randomness has already been requested")
	ErrWinnerAlreadyDrawn         = errors.New("winner already drawn")
	ErrWinnerNotDrawn             = errors.New("winner not drawn")
	ErrInvalidRandomness          = errors.New("randomness must be 32 bytes")
	ErrTicketNotWinner            = errors.New("this ticket is not the winning ticket")
	ErrOnlyWinnerOrAdminCanSettle = errors.New("only the winner or raffle admin can settle the raffle")
	ErrOnlyAdminCanClaim          = errors.New("only the raffle admin can claim a prize from a raffle with no entries")
	ErrAlreadyClaimed             = errors.New("this prize has already been claimed")
	ErrNotDrawn                   = errors.New("this raffle has not been drawn yet")
	ErrUriRequired                = errors.New("uri to offchain log is required when concluding a raffle")

	// lookups
	ErrNotFound              = errors.New("record not found")
	ErrAccountNotInitialized = errors.New("account not initialized")
)
