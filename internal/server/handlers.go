package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kartosangel/Solana-Raffle/internal/engine"
	"github.com/kartosangel/Solana-Raffle/internal/identity"
	"github.com/kartosangel/Solana-Raffle/internal/raffle"
)

type initProgramConfigRequest struct {
	Admin         identity.Identity `json:"admin" binding:"required"`
	FeesWallet    identity.Identity `json:"feesWallet" binding:"required"`
	TicketFee     uint64            `json:"ticketFee"`
	ProceedsShare uint16            `json:"proceedsShare"`
}

func (h *HTTPHandler) InitProgramConfig(c *gin.Context) {
	var req initProgramConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	config, err := h.engine.InitProgramConfig(c.Request.Context(), req.Admin, req.FeesWallet, req.TicketFee, req.ProceedsShare)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, config)
}

type updateProgramConfigRequest struct {
	Caller        identity.Identity `json:"caller" binding:"required"`
	TicketFee     *uint64           `json:"ticketFee"`
	ProceedsShare *uint16           `json:"proceedsShare"`
}

func (h *HTTPHandler) UpdateProgramConfig(c *gin.Context) {
	var req updateProgramConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	config, err := h.engine.UpdateProgramConfig(c.Request.Context(), req.Caller, req.TicketFee, req.ProceedsShare)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}

func (h *HTTPHandler) GetProgramConfig(c *gin.Context) {
	config, err := h.engine.GetProgramConfig(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, config)
}

type initRafflerRequest struct {
	Authority identity.Identity  `json:"authority" binding:"required"`
	Slug      string             `json:"slug" binding:"required"`
	Name      string             `json:"name" binding:"required"`
	Treasury  *identity.Identity `json:"treasury"`
	Staker    *identity.Identity `json:"staker"`
}

func (h *HTTPHandler) InitRaffler(c *gin.Context) {
	var req initRafflerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	raffler, err := h.engine.InitRaffler(c.Request.Context(), req.Authority, engine.InitRafflerRequest{
		Slug:     req.Slug,
		Name:     req.Name,
		Treasury: req.Treasury,
		Staker:   req.Staker,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, raffler)
}

func (h *HTTPHandler) GetRaffler(c *gin.Context) {
	raffler, err := h.engine.GetRaffler(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, raffler)
}

type updateRafflerRequest struct {
	Caller       identity.Identity  `json:"caller" binding:"required"`
	Name         *string            `json:"name"`
	Treasury     *identity.Identity `json:"treasury"`
	Staker       *identity.Identity `json:"staker"`
	UnlinkStaker bool               `json:"unlinkStaker"`
}

func (h *HTTPHandler) UpdateRaffler(c *gin.Context) {
	var req updateRafflerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	raffler, err := h.engine.UpdateRaffler(c.Request.Context(), req.Caller, c.Param("id"), engine.UpdateRafflerRequest{
		Name:         req.Name,
		Treasury:     req.Treasury,
		Staker:       req.Staker,
		UnlinkStaker: req.UnlinkStaker,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, raffler)
}

type toggleActiveRequest struct {
	Caller identity.Identity `json:"caller" binding:"required"`
	Active bool              `json:"active"`
}

func (h *HTTPHandler) ToggleActive(c *gin.Context) {
	var req toggleActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	if err := h.engine.ToggleActive(c.Request.Context(), req.Caller, c.Param("id"), req.Active); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type callerRequest struct {
	Caller identity.Identity `json:"caller" binding:"required"`
}

func (h *HTTPHandler) DeleteRaffler(c *gin.Context) {
	var req callerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	if err := h.engine.DeleteRaffler(c.Request.Context(), req.Caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type initRaffleRequest struct {
	Authority       identity.Identity  `json:"authority" binding:"required"`
	Prize           identity.Identity  `json:"prize" binding:"required"`
	PrizeType       raffle.PrizeType   `json:"prizeType"`
	PaymentType     raffle.PaymentType `json:"paymentType"`
	EntryType       raffle.EntryType   `json:"entryType"`
	NumTickets      *uint32            `json:"numTickets"`
	StartTime       *int64             `json:"startTime"`
	Duration        int64              `json:"duration" binding:"required"`
	GatedCollection *identity.Identity `json:"gatedCollection"`
	MaxEntrantPct   *uint16            `json:"maxEntrantPct"`
}

func (h *HTTPHandler) InitRaffle(c *gin.Context) {
	var req initRaffleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	created, err := h.engine.InitRaffle(c.Request.Context(), req.Authority, engine.InitRaffleRequest{
		Prize:           req.Prize,
		PrizeType:       req.PrizeType,
		PaymentType:     req.PaymentType,
		EntryType:       req.EntryType,
		NumTickets:      req.NumTickets,
		StartTime:       req.StartTime,
		Duration:        req.Duration,
		GatedCollection: req.GatedCollection,
		MaxEntrantPct:   req.MaxEntrantPct,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *HTTPHandler) GetRaffle(c *gin.Context) {
	view, err := h.engine.GetRaffle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *HTTPHandler) ListRaffles(c *gin.Context) {
	views, err := h.engine.ListRaffles(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

type buyTicketsRequest struct {
	Buyer       identity.Identity           `json:"buyer" binding:"required"`
	Spend       *engine.SpendPurchase       `json:"spend"`
	BurnNft     *engine.BurnNftPurchase     `json:"burnNft"`
	TransferNft *engine.TransferNftPurchase `json:"transferNft"`
	GateProof   *identity.Identity          `json:"gateProof"`
}

func (h *HTTPHandler) BuyTickets(c *gin.Context) {
	var req buyTicketsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	receipt, err := h.engine.BuyTickets(c.Request.Context(), c.Param("id"), engine.BuyTicketsRequest{
		Buyer:       req.Buyer,
		Spend:       req.Spend,
		BurnNft:     req.BurnNft,
		TransferNft: req.TransferNft,
		GateProof:   req.GateProof,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *HTTPHandler) DrawWinner(c *gin.Context) {
	handle, err := h.engine.DrawWinner(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"handle": handle})
}

type claimPrizeRequest struct {
	Claimant    identity.Identity `json:"claimant" binding:"required"`
	TicketIndex uint32            `json:"ticketIndex"`
}

func (h *HTTPHandler) ClaimPrize(c *gin.Context) {
	var req claimPrizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	result, err := h.engine.ClaimPrize(c.Request.Context(), c.Param("id"), req.Claimant, req.TicketIndex)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type collectNftRequest struct {
	Caller identity.Identity `json:"caller" binding:"required"`
	Nft    identity.Identity `json:"nft" binding:"required"`
}

func (h *HTTPHandler) CollectNft(c *gin.Context) {
	var req collectNftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	if err := h.engine.CollectNft(c.Request.Context(), req.Caller, c.Param("id"), req.Nft); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HTTPHandler) RecoverPrize(c *gin.Context) {
	var req callerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	if err := h.engine.RecoverPrize(c.Request.Context(), req.Caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type setEntrantsURIRequest struct {
	Caller identity.Identity `json:"caller" binding:"required"`
	URI    string            `json:"uri" binding:"required"`
}

func (h *HTTPHandler) SetEntrantsURI(c *gin.Context) {
	var req setEntrantsURIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	if err := h.engine.SetEntrantsURI(c.Request.Context(), req.Caller, c.Param("id"), req.URI); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HTTPHandler) DeleteRaffle(c *gin.Context) {
	var req callerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, err)
		return
	}
	if err := h.engine.DeleteRaffle(c.Request.Context(), req.Caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
