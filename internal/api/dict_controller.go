package api

import (
	"github.com/gin-gonic/gin"
	"github.com/mautops/medic-gin/internal/service"
)

// DictController 字典控制器,提供静态目录查询
type DictController struct {
	dictService service.DictService
}

// NewDictController 创建字典控制器
func NewDictController(dictService service.DictService) *DictController {
	return &DictController{dictService: dictService}
}

// OrgAttachTypes 机构附件类型目录
func (c *DictController) OrgAttachTypes(ctx *gin.Context) {
	types, err := c.dictService.OrgAttachTypes()
	if err != nil {
		HandleServiceError(ctx, err)
		return
	}
	Success(ctx, types)
}

// EmpAttachTypes 员工附件类型目录
func (c *DictController) EmpAttachTypes(ctx *gin.Context) {
	types, err := c.dictService.EmpAttachTypes()
	if err != nil {
		HandleServiceError(ctx, err)
		return
	}
	Success(ctx, types)
}

// EmpTypes 员工类型目录
func (c *DictController) EmpTypes(ctx *gin.Context) {
	Success(ctx, c.dictService.EmpTypes())
}
