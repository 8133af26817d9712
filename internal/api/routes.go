package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mautops/medic-gin/internal/config"
	"github.com/mautops/medic-gin/internal/metrics"
	"gorm.io/gorm"
)

// Controllers 路由挂载所需的全部控制器
type Controllers struct {
	Org        *OrgController
	Emp        *EmpController
	Attachment *AttachmentController
	Dict       *DictController
	Tree       *TreeController
	Draft      *DraftController
}

// SetupRoutes 配置路由
func SetupRoutes(cfg *config.Config, db *gorm.DB, ctrl *Controllers) *gin.Engine {
	if config.IsProduction(cfg) {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	// 中间件
	router.Use(RequestIDMiddleware())
	router.Use(RequestLogMiddleware())
	router.Use(SecurityHeadersMiddleware())
	router.Use(CORSMiddleware(&cfg.CORS))
	router.Use(RateLimitMiddleware(cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))

	// 健康检查
	healthController := NewHealthController(db)
	router.GET("/health", healthController.Check)

	// Prometheus 指标端点
	router.GET("/metrics", func(c *gin.Context) {
		metrics.UpdateDatabaseStats(db)
		metrics.Handler().ServeHTTP(c.Writer, c.Request)
	})

	// 上传文件静态访问
	router.Static(cfg.Storage.MediaURL, cfg.Storage.MediaRoot)

	// API v1 路由组
	v1 := router.Group("/api/v1")
	{
		// 字典
		v1.GET("/org-attach-type", ctrl.Dict.OrgAttachTypes)
		v1.GET("/emp-attach-type", ctrl.Dict.EmpAttachTypes)
		v1.GET("/emp-type", ctrl.Dict.EmpTypes)

		// 机构
		orgs := v1.Group("/org-info")
		{
			orgs.POST("", ctrl.Org.Create)
			orgs.GET("/:id", ctrl.Org.Get)
			orgs.PUT("/:id", ctrl.Org.Update)
			orgs.DELETE("/:id", ctrl.Org.Delete)
			orgs.GET("/:id/employees", ctrl.Org.Employees)
			orgs.POST("/:id/submit", ctrl.Org.Submit)
			orgs.POST("/:id/approve", ctrl.Org.Approve)
			orgs.POST("/:id/reject", ctrl.Org.Reject)
		}

		// 员工(batch 必须在 /:id 之前注册)
		emps := v1.Group("/emp-info")
		{
			emps.POST("/batch", ctrl.Emp.BatchCreate)
			emps.POST("", ctrl.Emp.Create)
			emps.GET("/:id", ctrl.Emp.Get)
			emps.PUT("/:id", ctrl.Emp.Update)
			emps.DELETE("/:id", ctrl.Emp.Delete)
		}

		// 附件
		v1.POST("/org-attach/upload", ctrl.Attachment.UploadOrgAttachment)
		v1.GET("/org-attach/:id", ctrl.Attachment.ListOrgAttachments)
		v1.DELETE("/org-attach/:id", ctrl.Attachment.DeleteOrgAttachment)
		v1.POST("/emp-attach/upload", ctrl.Attachment.UploadEmpAttachment)
		v1.GET("/emp-attach/:id", ctrl.Attachment.ListEmpAttachments)
		v1.DELETE("/emp-attach/:id", ctrl.Attachment.DeleteEmpAttachment)

		// 草稿
		v1.POST("/draft/save", ctrl.Draft.Save)

		// 组织树
		v1.GET("/org-tree", ctrl.Tree.Tree)
		v1.POST("/org-tree/institution", ctrl.Tree.CreateNode)
	}

	// 未匹配路由与方法返回 JSON 而不是 HTML
	router.NoRoute(func(c *gin.Context) {
		Error(c, http.StatusNotFound, "route not found")
	})
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		Error(c, http.StatusMethodNotAllowed, "不支持的请求方法")
	})

	return router
}
