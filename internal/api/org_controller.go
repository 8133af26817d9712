package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mautops/medic-gin/internal/service"
)

// OrgController 机构控制器
type OrgController struct {
	orgService    service.OrgService
	reviewService service.ReviewService
}

// NewOrgController 创建机构控制器
func NewOrgController(orgService service.OrgService, reviewService service.ReviewService) *OrgController {
	return &OrgController{
		orgService:    orgService,
		reviewService: reviewService,
	}
}

// parseID 解析路径中的数字 ID,非法时返回 false 并写入错误响应
func parseID(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		Error(ctx, http.StatusBadRequest, "无效的 "+name)
		return 0, false
	}
	return uint(id), true
}

// Create 创建机构
func (c *OrgController) Create(ctx *gin.Context) {
	var req service.CreateOrgRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "无效的请求数据")
		return
	}

	org, err := c.orgService.Create(&req)
	if err != nil {
		HandleServiceError(ctx, err)
		return
	}
	SuccessMsg(ctx, org, "创建成功")
}

// Get 获取机构详情,含附件列表
func (c *OrgController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	org, err := c.orgService.Get(id)
	if err != nil {
		HandleServiceError(ctx, err)
		return
	}
	Success(ctx, org)
}

// Update 更新机构,仅草稿或退回状态允许
func (c *OrgController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req service.UpdateOrgRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "无效的请求数据")
		return
	}

	org, err := c.orgService.Update(id, &req)
	if err != nil {
		HandleServiceError(ctx, err)
		return
	}
	SuccessMsg(ctx, org, "更新成功")
}

// Delete 软删除机构
func (c *OrgController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.orgService.Delete(id); err != nil {
		HandleServiceError(ctx, err)
		return
	}
	SuccessMsg(ctx, nil, "删除成功")
}

// Employees 获取机构员工列表及统计
func (c *OrgController) Employees(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	view, err := c.orgService.Employees(id)
	if err != nil {
		HandleServiceError(ctx, err)
		return
	}
	Success(ctx, view)
}

// Submit 提交机构进入审核
func (c *OrgController) Submit(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	org, err := c.reviewService.Submit(id)
	if err != nil {
		HandleServiceError(ctx, err)
		return
	}
	SuccessMsg(ctx, org, "提交成功")
}

// Approve 审核通过
func (c *OrgController) Approve(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	org, err := c.reviewService.Approve(id)
	if err != nil {
		HandleServiceError(ctx, err)
		return
	}
	SuccessMsg(ctx, org, "审核通过")
}

// rejectRequest 退回请求体
type rejectRequest struct {
	Reason string `json:"reason"`
}

// Reject 审核退回
func (c *OrgController) Reject(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req rejectRequest
	_ = ctx.ShouldBindJSON(&req)

	org, err := c.reviewService.Reject(id, req.Reason)
	if err != nil {
		HandleServiceError(ctx, err)
		return
	}
	SuccessMsg(ctx, org, "已退回")
}
