package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"pedidos-rapidisimos/internal/assistant"
	"pedidos-rapidisimos/pkg/response"
)

// Query godoc
// @Summary     Resolve a customer query
// @Description Sends the query to the language service, routes the detected intent and returns the formatted reply. Empty and "quit" queries are skipped.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body queryReq true "Customer query"
// @Success     200 {object} queryResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Language service error or malformed response"
// @Failure     503 {object} response.Resp "Language service not configured"
// @Router      /api/v1/queries [POST]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Ask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Ask: %v", err)
		response.Error(c, h.mapError(err), map[string]any{"kind": assistant.KindOf(err)})
		return
	}

	response.OK(c, h.newQueryResp(output))
}

// Page renders the empty query page.
func (h *handler) Page(c *gin.Context) {
	h.render(c, http.StatusOK, newPageData(""))
}

// Submit handles the form post of the query page.
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFormReq(c)
	if err != nil {
		data := newPageData("")
		data.Alert = &alertView{Kind: "bad_request", Title: "Invalid request", Message: err.Error()}
		h.render(c, http.StatusBadRequest, data)
		return
	}

	data := newPageData(req.Query)
	output, err := h.uc.Ask(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Ask: %v", err)
		data.Alert = newAlert(err)
		h.render(c, h.mapError(err).Status, data)
		return
	}

	if !output.Skipped {
		reply := output.Reply
		data.Reply = &reply
	}
	h.render(c, http.StatusOK, data)
}

func (h *handler) render(c *gin.Context, status int, data pageData) {
	c.Render(status, render.HTML{
		Template: h.page,
		Name:     pageTemplateName,
		Data:     data,
	})
}
