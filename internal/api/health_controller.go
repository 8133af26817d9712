package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mautops/medic-gin/internal/database"
	"gorm.io/gorm"
)

// HealthController 健康检查控制器
type HealthController struct {
	db *gorm.DB
}

// NewHealthController 创建健康检查控制器
func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{db: db}
}

// Check 健康检查
// 数据库可达返回 200,否则返回 503
func (c *HealthController) Check(ctx *gin.Context) {
	dbOK := database.CheckHealth(c.db)

	status := http.StatusOK
	overall := "ok"
	if !dbOK {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}

	ctx.JSON(status, gin.H{
		"status": overall,
		"checks": gin.H{
			"database": dbOK,
		},
	})
}
