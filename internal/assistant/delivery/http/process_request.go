package http

import (
	"github.com/gin-gonic/gin"
)

// processQueryReq binds and validates the JSON query body.
func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processFormReq binds the query field from a form post.
func (h *handler) processFormReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
