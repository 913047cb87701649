package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"genrelay-go/internal/constants"
	apperrors "genrelay-go/internal/errors"
	"genrelay-go/internal/handlers/common"
	"genrelay-go/internal/logging"
	"genrelay-go/internal/models"
	"genrelay-go/internal/monitoring/tracing"
	"genrelay-go/internal/upstream"
	upgem "genrelay-go/internal/upstream/gemini"
	upoai "genrelay-go/internal/upstream/openai"
)

// Generate handles POST generation requests: validate, normalize the model,
// route by provider family, execute upstream (with fallback for the OpenAI
// family only) and map the result. All state is request-local.
func (h *GenerateHandler) Generate(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		common.AbortWithError(c, http.StatusBadRequest, "failed to read request body")
		return
	}
	req := parseGenerationRequest(raw, h.cfg.DefaultEndpoint)
	c.Set("model", req.Model)

	if req.Model == "" || req.SystemInstruction == "" || req.UserPrompt == "" {
		common.AbortWithError(c, http.StatusBadRequest, "Missing required fields: model, systemInstruction, userPrompt")
		return
	}
	credential := credentialFrom(c.GetHeader("Authorization"))
	if credential == "" {
		common.AbortWithError(c, http.StatusUnauthorized, "Missing API key")
		return
	}

	normalized := models.Normalize(req.Model)
	base, err := upstream.ResolveEndpoint(req.ProxyEndpoint, h.cfg.AllowedHosts)
	if err != nil {
		// Endpoint problems are configuration errors: no upstream call was
		// made, and the message explains what was rejected.
		common.AbortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.UpstreamTimeout())
	defer cancel()
	ctx, span := tracing.StartSpan(ctx, "handlers", "generate")
	defer span.End()

	family := models.FamilyFor(normalized)
	logging.WithReq(c, log.Fields{
		"model":      req.Model,
		"normalized": normalized,
		"family":     family,
	}).Debug("dispatching generation request")

	var outcome *upstream.Outcome
	switch family {
	case models.FamilyOpenAI:
		client := upoai.New(h.http, base, credential)
		outcome, err = client.Generate(ctx, upoai.Request{
			Model:             normalized,
			SystemInstruction: req.SystemInstruction,
			UserPrompt:        req.UserPrompt,
		})
	default:
		client := upgem.New(h.http, base, credential, h.cfg.GeminiHost)
		outcome, err = client.Generate(ctx, upgem.Request{
			Model:             normalized,
			SystemInstruction: req.SystemInstruction,
			UserPrompt:        req.UserPrompt,
			EnableThinking:    req.EnableThinking,
		})
	}
	if err != nil {
		// Transport-level failure: no upstream verdict exists to forward.
		common.AbortWithError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if outcome.Failure != nil {
		res := outcome.Failure
		c.JSON(res.StatusCode, apperrors.Failure{
			Error:               res.Message(),
			UpstreamStatus:      res.StatusCode,
			UpstreamContentType: res.ContentType,
			Detail:              res.Detail(constants.ErrorDetailMaxLen),
			TriedModels:         outcome.Attempted,
		})
		return
	}

	c.Set("used_model", outcome.UsedModel)
	c.JSON(http.StatusOK, gin.H{
		"text":      outcome.Text,
		"usedModel": outcome.UsedModel,
	})
}
