package generate

import (
	"net/http"
	"time"

	"codeberg.org/randseq/server/internal/errors"
	"codeberg.org/randseq/server/internal/logger"
	"codeberg.org/randseq/server/internal/sequence"
	"github.com/gin-gonic/gin"
)

// Handler godoc
// @Summary Generate a random number sequence
// @Description Draws num_digits integers from [min_value, max_value], with or without duplicates
// @Tags generate
// @Accept json
// @Produce json
// @Param request body Request true "Generation parameters"
// @Success 200 {object} Response
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/generate [post]
func Handler(generator sequence.Generator, maxCount int64, delay time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Request

		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid request body", err)
			return
		}

		seqReq, err := sequence.ParseRequest(string(req.NumDigits), string(req.MinValue), string(req.MaxValue), req.mode())
		if err != nil {
			errors.Generation(c, err)
			return
		}

		if err := seqReq.Validate(); err != nil {
			errors.Generation(c, err)
			return
		}

		if err := seqReq.WithinLimit(maxCount); err != nil {
			errors.Generation(c, err)
			return
		}

		ctx := c.Request.Context()

		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				// client went away; nobody is left to read a response
				timer.Stop()
				logger.FromContext(ctx).Debug("generate request canceled during delay", "error", ctx.Err())
				c.Abort()
				return
			case <-timer.C:
			}
		}

		result, err := generator.Generate(ctx, seqReq)
		if err != nil {
			errors.Generation(c, err)
			return
		}

		logger.FromContext(ctx).Debug("numbers generated",
			"count", seqReq.Count,
			"min", seqReq.Min,
			"max", seqReq.Max,
			"mode", seqReq.Mode,
		)

		c.JSON(http.StatusOK, Response{
			GeneratedOutput: result.Display,
			Values:          result.Values,
			Count:           seqReq.Count,
			Min:             seqReq.Min,
			Max:             seqReq.Max,
			DuplicateOption: string(seqReq.Mode),
		})
	}
}
