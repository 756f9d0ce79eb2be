package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KhaledAshrafH/Task-Management-System/internal/core/domain"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func parsePageRequest(c *gin.Context) domain.PageRequest {
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}

	size, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultPageSize)))
	if err != nil || size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	return domain.PageRequest{Page: page, Size: size}
}
