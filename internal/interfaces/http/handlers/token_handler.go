package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"memedrop.backend/internal/domain/entities"
	domainerrors "memedrop.backend/internal/domain/errors"
	"memedrop.backend/internal/interfaces/http/response"
	"memedrop.backend/internal/usecases"
	"memedrop.backend/pkg/utils"
)

// TokenHandler handles token catalog endpoints
type TokenHandler struct {
	tokenUsecase *usecases.TokenUsecase
}

// NewTokenHandler creates a new token handler
func NewTokenHandler(tokenUsecase *usecases.TokenUsecase) *TokenHandler {
	return &TokenHandler{tokenUsecase: tokenUsecase}
}

// ListTokens lists tokens newest first, optionally filtered by creator
// GET /api/v1/tokens
func (h *TokenHandler) ListTokens(c *gin.Context) {
	window := utils.ParseListWindow(c.Query("limit"), c.Query("offset"))

	filter := entities.TokenFilter{
		CreatorAddress: c.Query("creator_address"),
		Limit:          window.Size(),
		Offset:         window.Start(),
	}

	tokens, err := h.tokenUsecase.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	if tokens == nil {
		tokens = []*entities.Token{}
	}
	response.Success(c, http.StatusOK, gin.H{"data": tokens})
}

type createTokenRequest struct {
	Name            string   `json:"name"`
	Ticker          string   `json:"ticker"`
	Amount          *float64 `json:"amount"`
	CreatorAddress  string   `json:"creator_address"`
	ContractAddress string   `json:"contract_address"`
	Website         string   `json:"website"`
	ImageURL        string   `json:"image_url"`
	ImageFile       string   `json:"image_file"`
}

// CreateToken creates a new token from a multipart form (direct file
// upload) or a JSON body (base64 image field); both normalize to the same
// input before the usecase runs.
// POST /api/v1/tokens
func (h *TokenHandler) CreateToken(c *gin.Context) {
	var input *entities.CreateTokenInput
	var err error

	if strings.Contains(c.ContentType(), "multipart/form-data") {
		input, err = parseMultipartCreate(c)
	} else {
		input, err = parseJSONCreate(c)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.tokenUsecase.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "Token created successfully",
		"data":    token,
	})
}

func parseMultipartCreate(c *gin.Context) (*entities.CreateTokenInput, error) {
	// Unparseable amounts fall back to zero; the usecase rejects negatives.
	amount, _ := strconv.ParseFloat(c.PostForm("amount"), 64)

	input := &entities.CreateTokenInput{
		Name:            c.PostForm("name"),
		Ticker:          c.PostForm("ticker"),
		Amount:          amount,
		CreatorAddress:  c.PostForm("creator_address"),
		ContractAddress: c.PostForm("contract_address"),
		Website:         c.PostForm("website"),
		ImageURL:        c.PostForm("image_url"),
	}

	file, err := c.FormFile("image")
	if err != nil {
		// No file attached
		return input, nil
	}

	f, err := file.Open()
	if err != nil {
		return nil, domainerrors.BadRequest("Invalid request body")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, domainerrors.BadRequest("Invalid request body")
	}
	input.Image = entities.BinaryImage(data)
	return input, nil
}

func parseJSONCreate(c *gin.Context) (*entities.CreateTokenInput, error) {
	var req createTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, domainerrors.BadRequest("Invalid request body")
	}

	input := &entities.CreateTokenInput{
		Name:            req.Name,
		Ticker:          req.Ticker,
		CreatorAddress:  req.CreatorAddress,
		ContractAddress: req.ContractAddress,
		Website:         req.Website,
		ImageURL:        req.ImageURL,
	}
	if req.Amount != nil {
		input.Amount = *req.Amount
	}
	if req.ImageFile != "" {
		input.Image = entities.Base64Image(req.ImageFile)
	}
	return input, nil
}

// GetToken fetches one token
// GET /api/v1/tokens/:id
func (h *TokenHandler) GetToken(c *gin.Context) {
	id, err := parseTokenID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.tokenUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"data": token})
}

// UpdateToken applies a partial update; only fields present in the body
// are touched.
// PUT /api/v1/tokens/:id
func (h *TokenHandler) UpdateToken(c *gin.Context) {
	id, err := parseTokenID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var input entities.UpdateTokenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid request body"))
		return
	}

	token, err := h.tokenUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Token updated successfully",
		"data":    token,
	})
}

// DeleteToken removes a token after verifying the caller is its creator
// DELETE /api/v1/tokens/:id
func (h *TokenHandler) DeleteToken(c *gin.Context) {
	id, err := parseTokenID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var body struct {
		CreatorAddress string `json:"creator_address"`
	}
	// An absent or malformed body leaves the address empty; the usecase
	// returns the 400 with the canonical message.
	_ = c.ShouldBindJSON(&body)

	if err := h.tokenUsecase.Delete(c.Request.Context(), id, body.CreatorAddress); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Token deleted successfully"})
}

func parseTokenID(c *gin.Context) (uuid.UUID, error) {
	raw := c.Param("id")
	if raw == "" {
		return uuid.Nil, domainerrors.BadRequest("Token ID is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.BadRequest("Token ID is required")
	}
	return id, nil
}
