package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/api/handler/v1/response"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/scoring"
)

// HandleWizardAdvance godoc
// @Summary      Move the event creation wizard forward
// @Description  Checks the current step for the chosen action category and returns the state at the next step.
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        request  body      scoring.WizardState  true  "wizard state"
// @Success      200      {object}  scoring.WizardState
// @Failure      400      {object}  response.Err
// @Failure      422      {object}  response.Err
// @Router       /wizard/advance [post]
func HandleWizardAdvance(ctx *gin.Context) {
	var state scoring.WizardState
	if err := ctx.ShouldBindJSON(&state); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	next, err := scoring.Advance(state)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleWizardAdvance -> scoring.Advance", err)
		return
	}

	ctx.JSON(http.StatusOK, next)
}

// HandleWizardBack godoc
// @Summary      Move the event creation wizard back
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        request  body      scoring.WizardState  true  "wizard state"
// @Success      200      {object}  scoring.WizardState
// @Failure      400      {object}  response.Err
// @Router       /wizard/back [post]
func HandleWizardBack(ctx *gin.Context) {
	var state scoring.WizardState
	if err := ctx.ShouldBindJSON(&state); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	ctx.JSON(http.StatusOK, scoring.Back(state))
}

// HandleWizardCheck godoc
// @Summary      Check that the wizard can be submitted
// @Tags         wizard
// @Accept       json
// @Param        request  body  scoring.WizardState  true  "wizard state"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      422  {object}  response.Err
// @Router       /wizard/check [post]
func HandleWizardCheck(ctx *gin.Context) {
	var state scoring.WizardState
	if err := ctx.ShouldBindJSON(&state); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := scoring.CanSubmit(state); err != nil {
		renderServiceErr(ctx, "v1.HandleWizardCheck -> scoring.CanSubmit", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
