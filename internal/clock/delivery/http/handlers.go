package http

import (
	"github.com/gin-gonic/gin"

	"language-assistant/pkg/response"
)

// Ask godoc
// @Summary     Ask the clock
// @Description Classifies the text with the CLU project and answers the time, day or date question locally.
// @Tags        Clock
// @Accept      json
// @Produce     json
// @Param       body body askReq true "User text"
// @Success     200  {object} askResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Failure     502  {object} response.Resp "Language service rejected the call"
// @Router      /api/v1/clock/ask [POST]
func (h *handler) Ask(c *gin.Context) {
	ctx := c.Request.Context()

	var req askReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Ask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Ask: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newAskResp(output))
}
