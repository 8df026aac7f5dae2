package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"solarhub/internal/db"
	"solarhub/internal/logger"
	"solarhub/internal/types"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code   int               `json:"code"`
	Msg    string            `json:"msg"`
	Data   interface{}       `json:"data,omitempty"`
	Err    string            `json:"err,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

func respondOK(c *gin.Context, status int, msg string, data interface{}) {
	c.JSON(status, Response{Code: status, Msg: msg, Data: data})
}

func respondBadRequest(c *gin.Context, msg string, err error) {
	c.JSON(http.StatusBadRequest, Response{Code: http.StatusBadRequest, Msg: msg, Err: err.Error()})
}

// respondError maps service errors onto the response envelope.
func respondError(c *gin.Context, msg string, err error) {
	var verr *types.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, Response{
			Code:   http.StatusUnprocessableEntity,
			Msg:    msg,
			Err:    verr.Error(),
			Fields: verr.Fields,
		})
	case errors.Is(err, db.ErrNotFound):
		c.JSON(http.StatusNotFound, Response{Code: http.StatusNotFound, Msg: msg, Err: err.Error()})
	case errors.Is(err, db.ErrDuplicate):
		c.JSON(http.StatusConflict, Response{Code: http.StatusConflict, Msg: msg, Err: err.Error()})
	default:
		logger.Error("%s: %v", msg, err)
		c.JSON(http.StatusInternalServerError, Response{Code: http.StatusInternalServerError, Msg: msg, Err: err.Error()})
	}
}

// parseID reads the :id path parameter, answering 400 itself when it is malformed.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, Response{Code: http.StatusBadRequest, Msg: "invalid id", Err: "id must be a positive integer"})
		return 0, false
	}
	return uint(id), true
}
