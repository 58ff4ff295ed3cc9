package controllers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/backfireIBGM/RocketInfo/middleware"
	"github.com/backfireIBGM/RocketInfo/models"
	"github.com/backfireIBGM/RocketInfo/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// DefaultQuestion is used when the question parameter is absent or blank.
	DefaultQuestion = "Tell me about the upcoming rocket launches"

	failedMessage = "Failed to process your question"
)

type RocketInfoCtrl struct {
	svc service.RocketInfoSvc
	log *zap.Logger
}

func NewRocketInfoCtrl(s service.RocketInfoSvc, log *zap.Logger) *RocketInfoCtrl {
	if log == nil {
		log = zap.NewNop()
	}
	return &RocketInfoCtrl{svc: s, log: log}
}

// HandleRocketInfo answers GET /api/RocketInfo?question=...
func (ctrl *RocketInfoCtrl) HandleRocketInfo(c *gin.Context) {
	log := ctrl.log.With(zap.String("invocation_id", middleware.InvocationID(c)))
	log.Info("RocketInfo function processing a request")

	question := c.Query("question")
	if strings.TrimSpace(question) == "" {
		question = DefaultQuestion
	}
	log.Info("Processing question", zap.String("question", question))

	// Inbound cancellation is not propagated to the upstream calls.
	ctx := context.WithoutCancel(c.Request.Context())

	answer, err := ctrl.svc.Answer(ctx, question)
	if err != nil {
		logFailure(log, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   failedMessage,
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.RocketInfoResponse{
		Question: question,
		Response: answer,
	})
}

func logFailure(log *zap.Logger, err error) {
	var cfgErr *service.ConfigurationError
	var transportErr *service.TransportError
	switch {
	case errors.As(err, &cfgErr):
		log.Error("Chat client is not configured", zap.Error(err))
	case errors.As(err, &transportErr):
		log.Error("Upstream call failed", zap.String("op", transportErr.Op), zap.Error(transportErr.Err))
	default:
		log.Error("Error processing request", zap.Error(err))
	}
}
