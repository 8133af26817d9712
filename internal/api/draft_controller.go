package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mautops/medic-gin/internal/service"
)

// DraftController 草稿控制器
type DraftController struct {
	draftService service.DraftService
}

// NewDraftController 创建草稿控制器
func NewDraftController(draftService service.DraftService) *DraftController {
	return &DraftController{draftService: draftService}
}

// Save 保存草稿快照
// 请求体整体作为快照落库,orgId 字段参与机构解析
func (c *DraftController) Save(ctx *gin.Context) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		Error(ctx, http.StatusBadRequest, "无效的请求数据")
		return
	}
	if len(body) > 0 && !json.Valid(body) {
		Error(ctx, http.StatusBadRequest, "无效的草稿数据")
		return
	}

	result, err := c.draftService.Save(body)
	if err != nil {
		HandleServiceError(ctx, err)
		return
	}
	SuccessMsg(ctx, result, "草稿已保存")
}
