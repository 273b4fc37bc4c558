package api

import (
	"encoding/hex"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/linlinbupt123-crypto/hdkey_service/domain"
	wrapErrors "github.com/linlinbupt123-crypto/hdkey_service/errors"
	"github.com/linlinbupt123-crypto/hdkey_service/log"
	"github.com/linlinbupt123-crypto/hdkey_service/request"
	"github.com/linlinbupt123-crypto/hdkey_service/service"
)

type WalletHandler struct {
	walletService *service.WalletService
}

func NewWalletHandler(ws *service.WalletService) *WalletHandler {
	return &WalletHandler{walletService: ws}
}

// Register mounts every route on r.
func (h *WalletHandler) Register(r gin.IRouter) {
	r.GET("/mnemonic", h.GenerateMnemonic)
	r.POST("/mnemonic/validate", h.ValidateMnemonic)
	r.POST("/seed", h.MnemonicToSeed)
	r.POST("/address", h.DeriveAddress)
	r.GET("/addresses", h.ListAddresses)
	r.GET("/addresses/:address", h.GetAddress)
}

func writeError(c *gin.Context, err error) {
	status := wrapErrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.API.Error().Err(err).Str("route", c.FullPath()).Msg("request failed")
	}
	c.JSON(status, request.ErrorResp{
		Error: err.Error(),
		Code:  string(wrapErrors.CodeOf(err)),
	})
}

func badRequest(c *gin.Context, err error) {
	writeError(c, wrapErrors.WrapWithCode(wrapErrors.CodeInvalidRequest, "api.bind", err))
}

// GenerateMnemonic, GET /mnemonic?strength=128
func (h *WalletHandler) GenerateMnemonic(c *gin.Context) {
	strength := 0
	if s := c.Query("strength"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			badRequest(c, err)
			return
		}
		strength = v
	}

	m, err := h.walletService.GenerateMnemonic(c.Request.Context(), strength)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, request.MnemonicResp{Mnemonic: m})
}

// ValidateMnemonic, POST /mnemonic/validate
func (h *WalletHandler) ValidateMnemonic(c *gin.Context) {
	var req request.ValidateMnemonicReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, request.ValidateResp{
		Valid: h.walletService.ValidateMnemonic(c.Request.Context(), req.Mnemonic),
	})
}

// MnemonicToSeed, POST /seed
func (h *WalletHandler) MnemonicToSeed(c *gin.Context) {
	var req request.SeedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	seed, err := h.walletService.MnemonicToSeed(c.Request.Context(), req.Mnemonic, req.Passphrase)
	if err != nil {
		writeError(c, err)
		return
	}
	defer domain.ClearBytes(seed)

	c.JSON(http.StatusOK, request.SeedResp{Seed: hex.EncodeToString(seed)})
}

// DeriveAddress, POST /address
func (h *WalletHandler) DeriveAddress(c *gin.Context) {
	var req request.DeriveAddressReq
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	path := h.walletService.Path
	if req.Path != "" {
		p, err := domain.ParseDerivationPath(req.Path)
		if err != nil {
			writeError(c, err)
			return
		}
		path = p
	}

	addr, err := h.walletService.DeriveAddressAt(c.Request.Context(), req.Mnemonic, req.Passphrase, path)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, request.AddressResp{
		Address: addr.Address,
		Path:    addr.Path,
		Network: addr.Network,
	})
}

// ListAddresses, GET /addresses?limit=20
func (h *WalletHandler) ListAddresses(c *gin.Context) {
	var limit int64
	if s := c.Query("limit"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v < 0 {
			badRequest(c, strconv.ErrSyntax)
			return
		}
		limit = v
	}

	addrs, err := h.walletService.ListAddresses(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, addrs)
}

// GetAddress, GET /addresses/:address
func (h *WalletHandler) GetAddress(c *gin.Context) {
	addr, err := h.walletService.GetAddress(c.Request.Context(), c.Param("address"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, addr)
}
