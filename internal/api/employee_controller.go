package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mautops/medic-gin/internal/service"
)

// EmpController 员工控制器
type EmpController struct {
	empService service.EmpService
}

// NewEmpController 创建员工控制器
func NewEmpController(empService service.EmpService) *EmpController {
	return &EmpController{empService: empService}
}

// Create 创建员工
func (c *EmpController) Create(ctx *gin.Context) {
	var req service.CreateEmpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "无效的请求数据")
		return
	}

	emp, err := c.empService.Create(&req)
	if err != nil {
		HandleServiceError(ctx, err)
		return
	}
	SuccessMsg(ctx, emp, "创建成功")
}

// BatchCreate 批量创建员工,逐条返回结果
func (c *EmpController) BatchCreate(ctx *gin.Context) {
	var req service.BatchCreateEmpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "employees 必须为数组")
		return
	}

	results := c.empService.BatchCreate(&req)
	SuccessMsg(ctx, results, "批量创建完成")
}

// Get 获取员工详情,含附件列表
func (c *EmpController) Get(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	emp, err := c.empService.Get(id)
	if err != nil {
		HandleServiceError(ctx, err)
		return
	}
	Success(ctx, emp)
}

// Update 更新员工
func (c *EmpController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req service.UpdateEmpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "无效的请求数据")
		return
	}

	emp, err := c.empService.Update(id, &req)
	if err != nil {
		HandleServiceError(ctx, err)
		return
	}
	SuccessMsg(ctx, emp, "更新成功")
}

// Delete 软删除员工
func (c *EmpController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := c.empService.Delete(id); err != nil {
		HandleServiceError(ctx, err)
		return
	}
	SuccessMsg(ctx, nil, "删除成功")
}
