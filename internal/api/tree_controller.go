package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mautops/medic-gin/internal/repository"
	"github.com/mautops/medic-gin/internal/service"
)

// TreeController 组织树控制器
type TreeController struct {
	treeService service.TreeService
	orgService  service.OrgService
}

// NewTreeController 创建组织树控制器
func NewTreeController(treeService service.TreeService, orgService service.OrgService) *TreeController {
	return &TreeController{
		treeService: treeService,
		orgService:  orgService,
	}
}

// Tree 获取带统计注解的组织树
// cityId、countyId、orgCode6 为可选过滤条件,不传时返回全量树
func (c *TreeController) Tree(ctx *gin.Context) {
	filter := &repository.OrgFilter{}
	if v, ok := ctx.GetQuery("cityId"); ok {
		filter.CityID = &v
	}
	if v, ok := ctx.GetQuery("countyId"); ok {
		filter.CountyID = &v
	}
	if v, ok := ctx.GetQuery("orgCode6"); ok {
		filter.OrgCode6 = &v
	}

	tree, err := c.treeService.Build(filter)
	if err != nil {
		HandleServiceError(ctx, err)
		return
	}
	Success(ctx, tree)
}

// CreateNode 创建组织树节点,同级重名时拒绝
func (c *TreeController) CreateNode(ctx *gin.Context) {
	var req service.CreateOrgRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		Error(ctx, http.StatusBadRequest, "无效的请求数据")
		return
	}

	org, err := c.orgService.CreateNode(&req)
	if err != nil {
		HandleServiceError(ctx, err)
		return
	}
	SuccessMsg(ctx, org, "机构节点已创建")
}
